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

// Apply applies a function to an s-expression of already evaluated
// arguments. A builtin is dispatched directly; a user function binds its
// formals left-to-right, capturing remaining arguments behind the variadic
// marker, and either evaluates its body or returns a partially-applied
// clone of itself.
func Apply(env *Env, f Function, args *lispr.SExpr) lispr.Value {
	if b, isBuiltin := f.(*Builtin); isBuiltin {
		return b.Fn(env, args)
	}

	// Bindings go into a private copy; the original function value stays
	// untouched for further calls.
	lam := f.(*Lambda).Clone().(*Lambda)

	given, total := args.Count(), lam.Formals.Count()
	for args.Count() > 0 {
		if lam.Formals.Count() == 0 {
			return lispr.MakeError(
				"Function passed too many arguments. Got %d, expected %d.",
				given, total)
		}

		sym := lam.Formals.Pop(0).(lispr.Symbol)
		if sym == lispr.SymbolVariadic {
			if lam.Formals.Count() != 1 {
				return lispr.MakeError(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := lam.Formals.Pop(0).(lispr.Symbol)
			lam.Env.PutLocal(rest, args.AsQExpr())
			break
		}

		lam.Env.PutLocal(sym, args.Pop(0))
	}

	// A dangling variadic marker binds the rest symbol to an empty list.
	if lam.Formals.Count() > 0 && lispr.SymbolVariadic.IsEqual(lam.Formals.Child(0)) {
		if lam.Formals.Count() != 2 {
			return lispr.MakeError(
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		lam.Formals.Pop(0)
		rest := lam.Formals.Pop(0).(lispr.Symbol)
		lam.Env.PutLocal(rest, lispr.MakeQExpr())
	}

	if lam.Formals.Count() == 0 {
		lam.Env.SetParent(env)
		return Eval(lam.Env, lam.Body.Clone().(*lispr.QExpr).AsSExpr())
	}

	// Some formals remain unbound: curry.
	return lam
}
