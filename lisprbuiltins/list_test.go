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

import "testing"

func TestList(t *testing.T) {
	t.Parallel()
	tcsList.Run(t)
}

var tcsList = tTestCases{
	{name: "head", src: "(head {1 2 3})", exp: "{1}"},
	{name: "head-string", src: `(head "abc")`, exp: `"a"`},
	{name: "head-empty-string", src: `(head "")`, exp: `""`},
	{name: "err-head-empty", src: "(head {})", exp: "Error: Function 'head' passed {}!"},
	{
		name: "err-head-number",
		src:  "(head 1)",
		exp:  "Error: Function 'head' passed wrong argument type. Got a number, expected a q-expression or a string.",
	},
	{
		name: "err-head-2",
		src:  "(head {1} {2})",
		exp:  "Error: Function 'head' received 2 arguments, expects 1.",
	},

	{name: "tail", src: "(tail {1 2 3})", exp: "{2 3}"},
	{name: "tail-single", src: "(tail {1})", exp: "{}"},
	{name: "tail-string", src: `(tail "abc")`, exp: `"bc"`},
	{name: "tail-one-char-string", src: `(tail "a")`, exp: `""`},
	{name: "err-tail-empty", src: "(tail {})", exp: "Error: Function 'tail' passed {}!"},

	{name: "list", src: "(list 1 2 3)", exp: "{1 2 3}"},
	{name: "list-empty", src: "(list)", exp: "{}"},
	{name: "list-evaluated", src: "(list (+ 1 2) (+ 3 4))", exp: "{3 7}"},

	{name: "eval", src: "(eval {+ 1 2})", exp: "3"},
	{name: "eval-head", src: "(eval (head {(+ 1 2) (+ 10 20)}))", exp: "3"},
	{name: "eval-constructed", src: "(eval (list + 1 2))", exp: "3"},
	{
		name: "err-eval-number",
		src:  "(eval 1)",
		exp:  "Error: Function 'eval' passed wrong argument type. Expected argument 0 to be q-expression, received number.",
	},

	{name: "join", src: "(join {1 2} {3} {4 5})", exp: "{1 2 3 4 5}"},
	{name: "join-one", src: "(join {1})", exp: "{1}"},
	{name: "join-strings", src: `(join "ab" "cd" "e")`, exp: `"abcde"`},
	{
		name: "err-join-mixed",
		src:  `(join {1} "a")`,
		exp:  "Error: Function 'join' passed incompatible types. Got a q-expression as the first argument and a string.",
	},
	{
		name: "err-join-number",
		src:  "(join 1 2)",
		exp:  "Error: Function 'join' passed wrong argument type. Got a number, expected a q-expression or a string.",
	},

	{name: "cons", src: "(cons 1 {2 3})", exp: "{1 2 3}"},
	{name: "cons-empty", src: "(cons 1 {})", exp: "{1}"},
	{name: "cons-list", src: "(cons {1} {2})", exp: "{{1} 2}"},
	{
		name: "err-cons-second",
		src:  "(cons 1 2)",
		exp:  "Error: Function 'cons' passed wrong argument type. Expected argument 1 to be q-expression, received number.",
	},

	{name: "len", src: "(len {1 2 3})", exp: "3"},
	{name: "len-empty", src: "(len {})", exp: "0"},
	{
		name: "err-len-string",
		src:  `(len "abc")`,
		exp:  "Error: Function 'len' passed wrong argument type. Expected argument 0 to be q-expression, received string.",
	},

	{name: "init", src: "(init {1 2 3})", exp: "{1 2}"},
	{name: "init-single", src: "(init {1})", exp: "{}"},
	{name: "err-init-empty", src: "(init {})", exp: "Error: Function 'init' passed {}!"},
}
