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

// Contains the boolean builtins with short-circuit semantics: arguments
// after the deciding one are not even type-checked.

import (
	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
)

// And is the builtin that implements (&& b b...): false on the first false
// argument, true otherwise.
var And = lispreval.Builtin{
	Name: "&&",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkMinCount("&&", args, 2); errv != nil {
			return errv
		}
		for i := 0; i < args.Count(); i++ {
			if errv := checkType("&&", args, i, "boolean"); errv != nil {
				return errv
			}
			if b, _ := lispr.GetBoolean(args.Child(i)); !bool(b) {
				return lispr.MakeBoolean(false)
			}
		}
		return lispr.MakeBoolean(true)
	},
}

// Or is the builtin that implements (|| b b...): true on the first true
// argument, false otherwise.
var Or = lispreval.Builtin{
	Name: "||",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkMinCount("||", args, 2); errv != nil {
			return errv
		}
		for i := 0; i < args.Count(); i++ {
			if errv := checkType("||", args, i, "boolean"); errv != nil {
				return errv
			}
			if b, _ := lispr.GetBoolean(args.Child(i)); bool(b) {
				return lispr.MakeBoolean(true)
			}
		}
		return lispr.MakeBoolean(false)
	},
}

// Not is the builtin that implements (! b).
var Not = lispreval.Builtin{
	Name: "!",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("!", args, 1); errv != nil {
			return errv
		}
		if errv := checkType("!", args, 0, "boolean"); errv != nil {
			return errv
		}
		b, _ := lispr.GetBoolean(args.Child(0))
		return lispr.MakeBoolean(!bool(b))
	},
}
