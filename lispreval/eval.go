//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of lispr.
//
// lispr is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Detlef Stern
//-----------------------------------------------------------------------------

package lispreval

import "t73f.de/r/lispr"

// Eval evaluates a value within the given environment. A symbol is looked
// up, an s-expression is reduced, everything else evaluates to itself.
// Eval consumes its argument.
func Eval(env *Env, v lispr.Value) lispr.Value {
	switch x := v.(type) {
	case lispr.Symbol:
		return env.Get(x)
	case *lispr.SExpr:
		return evalSExpr(env, x)
	default:
		return v
	}
}

// evalSExpr reduces an s-expression: evaluate all children left-to-right,
// then apply the first child to the remaining ones. An empty s-expression
// evaluates to itself; a single-element one evaluates to its only child,
// which is not applied, even if it is a function.
func evalSExpr(env *Env, x *lispr.SExpr) lispr.Value {
	for i := 0; i < x.Count(); i++ {
		res := Eval(env, x.Child(i))
		if lispr.IsError(res) {
			// The error preempts the whole expression; remaining
			// children stay unevaluated.
			return res
		}
		x.SetChild(i, res)
	}

	if x.Count() == 0 {
		return x
	}
	if x.Count() == 1 {
		return Eval(env, x.Pop(0))
	}

	f := x.Pop(0)
	fn, isFunction := GetFunction(f)
	if !isFunction {
		return lispr.MakeError(
			"S-expression starts with incorrect type. Got %s, expected %s.",
			f.TypeName(), "function")
	}
	return Apply(env, fn, x)
}
