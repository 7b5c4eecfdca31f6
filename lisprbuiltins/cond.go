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

import (
	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
)

// If is the builtin that implements (if cond then else). The selected
// branch is a q-expression, evaluated as an s-expression in the current
// environment.
var If = lispreval.Builtin{
	Name: "if",
	Fn: func(env *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("if", args, 3); errv != nil {
			return errv
		}
		if errv := checkType("if", args, 0, "boolean"); errv != nil {
			return errv
		}
		if errv := checkType("if", args, 1, "q-expression"); errv != nil {
			return errv
		}
		if errv := checkType("if", args, 2, "q-expression"); errv != nil {
			return errv
		}

		cond, _ := lispr.GetBoolean(args.Child(0))
		branch := 2
		if cond {
			branch = 1
		}
		q, _ := lispr.GetQExpr(args.Child(branch))
		return lispreval.Eval(env, q.AsSExpr())
	},
}
