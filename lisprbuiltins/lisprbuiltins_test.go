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

package lisprbuiltins_test

import (
	"strings"
	"testing"

	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lisprbuiltins"
	"t73f.de/r/lispr/lispreval"
	"t73f.de/r/lispr/lisprreader"
)

// Contains the test harness for all builtins: every test case is a source
// program, the expectation is the printed result of its top-level
// expressions, space-separated. Errors are values, so they appear in the
// expectation like any other result.

type (
	tTestCase struct {
		name string
		src  string
		exp  string
	}
	tTestCases []tTestCase
)

func (tcs tTestCases) Run(t *testing.T) {
	t.Helper()
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Helper()
			root, err := lisprreader.ParseString(tc.name, tc.src)
			if err != nil {
				t.Fatalf("Error %v while reading %s", err, tc.src)
			}

			env := lispreval.MakeEnv()
			env.SetOutput(&strings.Builder{})
			lisprbuiltins.BindAll(env)

			var sb strings.Builder
			prog := lisprreader.ReadNode(root).(*lispr.SExpr)
			for prog.Count() > 0 {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				_, _ = lispr.Print(&sb, lispreval.Eval(env, prog.Pop(0)))
			}
			if got := sb.String(); got != tc.exp {
				t.Errorf("%s should result in %q, but got %q", tc.src, tc.exp, got)
			}
		})
	}
}
