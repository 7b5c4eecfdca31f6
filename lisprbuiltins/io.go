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

// Contains the printing, error raising, and file loading builtins.

import (
	"io"

	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
	"t73f.de/r/lispr/lisprreader"
)

// Print is the builtin that implements (print x...): every argument is
// printed followed by one space, then a newline.
var Print = lispreval.Builtin{
	Name: "print",
	Fn: func(env *lispreval.Env, args *lispr.SExpr) lispr.Value {
		w := env.Output()
		for i := 0; i < args.Count(); i++ {
			_, _ = lispr.Print(w, args.Child(i))
			_, _ = io.WriteString(w, " ")
		}
		_, _ = io.WriteString(w, "\n")
		return lispr.MakeSExpr()
	},
}

// Error is the builtin that implements (error s): it raises a user error
// with the given message.
var Error = lispreval.Builtin{
	Name: "error",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("error", args, 1); errv != nil {
			return errv
		}
		if errv := checkType("error", args, 0, "string"); errv != nil {
			return errv
		}
		s, _ := lispr.GetString(args.Child(0))
		return lispr.MakeError("%s", s.GetValue())
	},
}

// Load is the builtin that implements (load s): the named file is parsed
// and every top-level expression is evaluated. Errors are printed and do
// not stop loading.
var Load = lispreval.Builtin{
	Name: "load",
	Fn: func(env *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("load", args, 1); errv != nil {
			return errv
		}
		if errv := checkType("load", args, 0, "string"); errv != nil {
			return errv
		}

		s, _ := lispr.GetString(args.Child(0))
		root, err := lisprreader.ParseFile(s.GetValue())
		if err != nil {
			return lispr.MakeError("Could not load library %s", err.Error())
		}

		prog := lisprreader.ReadNode(root).(*lispr.SExpr)
		for prog.Count() > 0 {
			res := lispreval.Eval(env, prog.Pop(0))
			if lispr.IsError(res) {
				_, _ = lispr.Println(env.Output(), res)
			}
		}
		return lispr.MakeSExpr()
	},
}
