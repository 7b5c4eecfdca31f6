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

// Contains the comparison builtins. == and != compare any two values
// structurally, the order relations require two numbers.

import (
	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
)

// Equal is the builtin that implements (== x y).
var Equal = lispreval.Builtin{
	Name: "==",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("==", args, 2); errv != nil {
			return errv
		}
		return lispr.MakeBoolean(args.Child(0).IsEqual(args.Child(1)))
	},
}

// NotEqual is the builtin that implements (!= x y).
var NotEqual = lispreval.Builtin{
	Name: "!=",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("!=", args, 2); errv != nil {
			return errv
		}
		return lispr.MakeBoolean(!args.Child(0).IsEqual(args.Child(1)))
	},
}

// numCompare builds an order relation builtin on two numbers.
func numCompare(name string, test func(cmp int) bool) lispreval.Builtin {
	return lispreval.Builtin{
		Name: name,
		Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
			if errv := checkCount(name, args, 2); errv != nil {
				return errv
			}
			if errv := checkType(name, args, 0, "number"); errv != nil {
				return errv
			}
			if errv := checkType(name, args, 1, "number"); errv != nil {
				return errv
			}
			x, _ := lispr.GetNumber(args.Child(0))
			y, _ := lispr.GetNumber(args.Child(1))
			return lispr.MakeBoolean(test(lispr.NumCmp(x, y)))
		},
	}
}

// Greater is the builtin that implements (> x y).
var Greater = numCompare(">", func(cmp int) bool { return cmp > 0 })

// Less is the builtin that implements (< x y).
var Less = numCompare("<", func(cmp int) bool { return cmp < 0 })

// LessEqual is the builtin that implements (<= x y).
var LessEqual = numCompare("<=", func(cmp int) bool { return cmp <= 0 })

// GreaterEqual is the builtin that implements (>= x y).
var GreaterEqual = numCompare(">=", func(cmp int) bool { return cmp >= 0 })
