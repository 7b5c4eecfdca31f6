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

package lisprreader_test

import (
	"testing"

	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lisprreader"
)

// readProgram parses the source and converts it into the program
// s-expression.
func readProgram(t *testing.T, src string) *lispr.SExpr {
	t.Helper()
	root, err := lisprreader.ParseString("<test>", src)
	if err != nil {
		t.Fatalf("Error %v while parsing %q", err, src)
	}
	prog, ok := lisprreader.ReadNode(root).(*lispr.SExpr)
	if !ok {
		t.Fatal("the root must read as an s-expression")
	}
	return prog
}

func TestReadValues(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp lispr.Value
	}{
		{"42", lispr.Int64(42)},
		{"-7", lispr.Int64(-7)},
		{"2.5", lispr.Float(2.5)},
		{"3.", lispr.Float(3)},
		{"abc", lispr.MakeSymbol("abc")},
		{"&", lispr.MakeSymbol("&")},
		{"t", lispr.MakeSymbol("t")},
		{"nil", lispr.MakeSymbol("nil")},
		{`"ab"`, lispr.MakeString("ab")},
		{`""`, lispr.MakeString("")},
		{`"a\nb"`, lispr.MakeString("a\nb")},
		{`"a\"b"`, lispr.MakeString(`a"b`)},
		{`"a\\b"`, lispr.MakeString(`a\b`)},
		{"()", lispr.MakeSExpr()},
		{"(+ 1 2)", lispr.MakeSExpr(lispr.MakeSymbol("+"), lispr.Int64(1), lispr.Int64(2))},
		{"{}", lispr.MakeQExpr()},
		{
			"{1 (2 3)}",
			lispr.MakeQExpr(lispr.Int64(1),
				lispr.MakeSExpr(lispr.Int64(2), lispr.Int64(3))),
		},
	}
	for _, tc := range testcases {
		prog := readProgram(t, tc.src)
		if prog.Count() != 1 {
			t.Errorf("%q: expected one value, got %v", tc.src, prog)
			continue
		}
		if got := prog.Child(0); !got.IsEqual(tc.exp) {
			t.Errorf("%q: expected %v, but got %v", tc.src, tc.exp, got)
		}
	}
}

func TestReadSkipsComments(t *testing.T) {
	t.Parallel()
	prog := readProgram(t, "(+ 1 ; inline\n2) ; done")
	exp := lispr.MakeSExpr(lispr.MakeSymbol("+"), lispr.Int64(1), lispr.Int64(2))
	if prog.Count() != 1 || !prog.Child(0).IsEqual(exp) {
		t.Error("comments are not part of the value tree, got:", prog)
	}
}

func TestReadMultiple(t *testing.T) {
	t.Parallel()
	prog := readProgram(t, "(def {x} 42) x")
	if prog.Count() != 2 {
		t.Fatal("expected two top-level values, got:", prog)
	}
	if !prog.Child(1).IsEqual(lispr.MakeSymbol("x")) {
		t.Error("expected symbol x, got:", prog.Child(1))
	}
}

func TestReadHugeNumber(t *testing.T) {
	t.Parallel()
	prog := readProgram(t, "99999999999999999999")
	e, isError := lispr.GetError(prog.Child(0))
	if !isError {
		t.Fatal("expected an error value, got:", prog.Child(0))
	}
	if got := e.Message(); got != "invalid number 99999999999999999999" {
		t.Error("unexpected message:", got)
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	testcases := []struct{ in, exp string }{
		{"", ""},
		{"ab", "ab"},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
		{`\"`, `"`},
		{`\\`, `\`},
		{`\q`, "q"},
	}
	for _, tc := range testcases {
		if got := lisprreader.Unescape(tc.in); got != tc.exp {
			t.Errorf("%q: expected %q, but got %q", tc.in, tc.exp, got)
		}
	}
}
