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

// Contains the list primitives. head, tail, and join also operate on
// strings.

import (
	"strings"

	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
)

// checkListOrString checks that the first argument is a q-expression or a
// string, with the dedicated message of the list builtins.
func checkListOrString(name string, args *lispr.SExpr) lispr.Value {
	if got := args.Child(0).TypeName(); got != "q-expression" && got != "string" {
		return lispr.MakeError("Function '%s' passed wrong argument type. "+
			"Got a %s, expected a %s or a %s.", name, got, "q-expression", "string")
	}
	return nil
}

// Head is the builtin that implements (head l): the first element of a
// q-expression, or the first character of a string.
var Head = lispreval.Builtin{
	Name: "head",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("head", args, 1); errv != nil {
			return errv
		}
		if errv := checkListOrString("head", args); errv != nil {
			return errv
		}
		if q, isQExpr := lispr.GetQExpr(args.Child(0)); isQExpr {
			if errv := checkNotEmpty("head", args); errv != nil {
				return errv
			}
			return lispr.MakeQExpr(q.Pop(0))
		}
		s, _ := lispr.GetString(args.Child(0))
		val := s.GetValue()
		if val == "" {
			return s
		}
		return lispr.MakeString(val[:1])
	},
}

// Tail is the builtin that implements (tail l): everything but the first
// element of a q-expression, or of a string.
var Tail = lispreval.Builtin{
	Name: "tail",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("tail", args, 1); errv != nil {
			return errv
		}
		if errv := checkListOrString("tail", args); errv != nil {
			return errv
		}
		if q, isQExpr := lispr.GetQExpr(args.Child(0)); isQExpr {
			if errv := checkNotEmpty("tail", args); errv != nil {
				return errv
			}
			q.Pop(0)
			return q
		}
		s, _ := lispr.GetString(args.Child(0))
		val := s.GetValue()
		if val == "" {
			return s
		}
		return lispr.MakeString(val[1:])
	},
}

// List is the builtin that implements (list x...): it packages all
// arguments into a q-expression.
var List = lispreval.Builtin{
	Name: "list",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return args.AsQExpr()
	},
}

// Eval is the builtin that implements (eval q): the q-expression is
// retagged as an s-expression and evaluated.
var Eval = lispreval.Builtin{
	Name: "eval",
	Fn: func(env *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("eval", args, 1); errv != nil {
			return errv
		}
		if errv := checkType("eval", args, 0, "q-expression"); errv != nil {
			return errv
		}
		q, _ := lispr.GetQExpr(args.Pop(0))
		return lispreval.Eval(env, q.AsSExpr())
	},
}

// Join is the builtin that implements (join a...): q-expressions are
// concatenated element-wise, strings byte-wise. Mixed kinds are an error.
var Join = lispreval.Builtin{
	Name: "join",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkMinCount("join", args, 1); errv != nil {
			return errv
		}
		if errv := checkListOrString("join", args); errv != nil {
			return errv
		}
		firstType := args.Child(0).TypeName()
		for i := 1; i < args.Count(); i++ {
			if got := args.Child(i).TypeName(); got != firstType {
				return lispr.MakeError("Function 'join' passed incompatible types. "+
					"Got a %s as the first argument and a %s.", firstType, got)
			}
		}

		if firstType == "q-expression" {
			result, _ := lispr.GetQExpr(args.Pop(0))
			for args.Count() > 0 {
				next, _ := lispr.GetQExpr(args.Pop(0))
				for next.Count() > 0 {
					result.Append(next.Pop(0))
				}
			}
			return result
		}
		var sb strings.Builder
		for args.Count() > 0 {
			s, _ := lispr.GetString(args.Pop(0))
			sb.WriteString(s.GetValue())
		}
		return lispr.MakeString(sb.String())
	},
}

// Cons is the builtin that implements (cons v q): it prepends a value to a
// q-expression.
var Cons = lispreval.Builtin{
	Name: "cons",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("cons", args, 2); errv != nil {
			return errv
		}
		if errv := checkType("cons", args, 1, "q-expression"); errv != nil {
			return errv
		}
		v := args.Pop(0)
		q, _ := lispr.GetQExpr(args.Pop(0))
		result := lispr.MakeQExpr(v)
		for q.Count() > 0 {
			result.Append(q.Pop(0))
		}
		return result
	},
}

// Len is the builtin that implements (len q): the integer length of a
// q-expression.
var Len = lispreval.Builtin{
	Name: "len",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("len", args, 1); errv != nil {
			return errv
		}
		if errv := checkType("len", args, 0, "q-expression"); errv != nil {
			return errv
		}
		q, _ := lispr.GetQExpr(args.Child(0))
		return lispr.Int64(q.Count())
	},
}

// Init is the builtin that implements (init q): everything but the last
// element of a q-expression.
var Init = lispreval.Builtin{
	Name: "init",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkCount("init", args, 1); errv != nil {
			return errv
		}
		if errv := checkType("init", args, 0, "q-expression"); errv != nil {
			return errv
		}
		if errv := checkNotEmpty("init", args); errv != nil {
			return errv
		}
		q, _ := lispr.GetQExpr(args.Pop(0))
		q.Pop(q.Count() - 1)
		return q
	},
}
