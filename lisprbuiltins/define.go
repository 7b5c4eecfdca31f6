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

package lisprbuiltins

// Contains the builtins that bind values to symbols, and lambda.

import (
	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
	"t73f.de/r/zero/set"
)

// Def is the builtin that implements (def {sym...} v...): it binds in the
// global environment.
var Def = lispreval.Builtin{
	Name: "def",
	Fn: func(env *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return defineVar(env, args, "def")
	},
}

// Put is the builtin that implements (= {sym...} v...): it binds in the
// current environment.
var Put = lispreval.Builtin{
	Name: "=",
	Fn: func(env *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return defineVar(env, args, "=")
	},
}

func defineVar(env *lispreval.Env, args *lispr.SExpr, name string) lispr.Value {
	if errv := checkMinCount(name, args, 1); errv != nil {
		return errv
	}
	if errv := checkType(name, args, 0, "q-expression"); errv != nil {
		return errv
	}

	syms, _ := lispr.GetQExpr(args.Child(0))
	names := make([]lispr.Symbol, syms.Count())
	for i := 0; i < syms.Count(); i++ {
		sym, isSymbol := lispr.GetSymbol(syms.Child(i))
		if !isSymbol {
			return lispr.MakeError("Function '%s' cannot define non-symbol. "+
				"Got %s, expected %s.", name, syms.Child(i).TypeName(), "symbol")
		}
		names[i] = sym
	}
	if set.New(names...).Length() != len(names) {
		return lispr.MakeError("Function '%s' defined the same symbol more than once.", name)
	}
	if syms.Count() != args.Count()-1 {
		return lispr.MakeError("Function '%s' received %d symbols and %d values. Mismatch.",
			name, syms.Count(), args.Count()-1)
	}

	// A name whose current binding resolves to a builtin function must not
	// be redefined, no matter where in the chain the binding lives.
	for _, sym := range names {
		if _, isBuiltin := lispreval.GetBuiltin(env.Get(sym)); isBuiltin {
			return lispr.MakeError("attempting to redefine builtin function.")
		}
	}

	for i, sym := range names {
		if name == "def" {
			env.PutGlobal(sym, args.Child(i+1))
		} else {
			env.PutLocal(sym, args.Child(i+1))
		}
	}
	return lispr.MakeSExpr()
}

// Lambda is the builtin that implements (\ {formals} {body}): it returns a
// user function with a fresh empty captured environment.
var Lambda = lispreval.Builtin{
	Name: "\\",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("\\", args, 2); errv != nil {
			return errv
		}
		if errv := checkType("\\", args, 0, "q-expression"); errv != nil {
			return errv
		}
		if errv := checkType("\\", args, 1, "q-expression"); errv != nil {
			return errv
		}

		formals, _ := lispr.GetQExpr(args.Child(0))
		names := make([]lispr.Symbol, formals.Count())
		for i := 0; i < formals.Count(); i++ {
			sym, isSymbol := lispr.GetSymbol(formals.Child(i))
			if !isSymbol {
				return lispr.MakeError("Cannot define non-symbol. Got %s, expected %s",
					formals.Child(i).TypeName(), "symbol")
			}
			names[i] = sym
		}
		for i, sym := range names {
			if sym == lispr.SymbolVariadic && i != len(names)-2 {
				return lispr.MakeError(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
		}
		if set.New(names...).Length() != len(names) {
			return lispr.MakeError("Cannot define the same symbol more than once.")
		}

		formals, _ = lispr.GetQExpr(args.Pop(0))
		body, _ := lispr.GetQExpr(args.Pop(0))
		return lispreval.MakeLambda(formals, body)
	},
}
