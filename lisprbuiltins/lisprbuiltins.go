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

// Package lisprbuiltins contains the primitive operations of the language.
package lisprbuiltins

import (
	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
)

// The validation helpers return nil if the check passed, an Error value
// otherwise.

// checkCount checks the exact number of arguments.
func checkCount(name string, args *lispr.SExpr, want int) lispr.Value {
	if args.Count() != want {
		return lispr.MakeError("Function '%s' received %d arguments, expects %d.",
			name, args.Count(), want)
	}
	return nil
}

// checkMinCount checks the minimum number of arguments.
func checkMinCount(name string, args *lispr.SExpr, want int) lispr.Value {
	if args.Count() < want {
		return lispr.MakeError("Function '%s' received %d arguments, expects at least %d.",
			name, args.Count(), want)
	}
	return nil
}

// checkType checks the variant of a positional argument.
func checkType(name string, args *lispr.SExpr, idx int, want string) lispr.Value {
	if got := args.Child(idx).TypeName(); got != want {
		return lispr.MakeError("Function '%s' passed wrong argument type. "+
			"Expected argument %d to be %s, received %s.", name, idx, want, got)
	}
	return nil
}

// checkNotEmpty checks that the first argument, a q-expression, is not
// the empty list.
func checkNotEmpty(name string, args *lispr.SExpr) lispr.Value {
	if q, ok := lispr.GetQExpr(args.Child(0)); ok && q.Count() == 0 {
		return lispr.MakeError("Function '%s' passed {}!", name)
	}
	return nil
}

// BindAll binds all builtins into the given environment.
func BindAll(env *lispreval.Env) {
	for _, b := range []*lispreval.Builtin{
		&Add, &Sub, &Mul, &Div, &Mod, &Pow,

		&Head, &Tail, &List, &Eval, &Join, &Cons, &Len, &Init,

		&Equal, &NotEqual,
		&Greater, &Less, &LessEqual, &GreaterEqual,
		&If, &And, &Or, &Not,

		&Def, &Put, &Lambda,
		&Load, &Print, &Error,
	} {
		env.PutLocal(lispr.MakeSymbol(b.Name), b)
	}
}
