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

package conformance

import (
	"strings"

	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lisprbuiltins"
	"t73f.de/r/lispr/lispreval"
	"t73f.de/r/lispr/lisprreader"
)

// Result holds what a scenario actually produced.
type Result struct {
	Got      []string // printed result of each top-level expression
	Output   string   // side-effect output of the printing builtins
	ParseErr error
}

// Run evaluates the scenario input in a fresh global environment, the way
// the REPL would: one result per top-level expression.
func Run(tc *TestCase) Result {
	var out strings.Builder
	env := lispreval.MakeEnv()
	env.SetOutput(&out)
	lisprbuiltins.BindAll(env)

	root, err := lisprreader.ParseString(tc.Name, tc.Input)
	if err != nil {
		return Result{ParseErr: err}
	}

	var result Result
	prog := lisprreader.ReadNode(root).(*lispr.SExpr)
	for prog.Count() > 0 {
		res := lispreval.Eval(env, prog.Pop(0))
		result.Got = append(result.Got, res.String())
	}
	result.Output = out.String()
	return result
}
