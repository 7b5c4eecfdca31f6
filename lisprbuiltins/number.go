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

// Contains the arithmetic builtins.

import (
	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lispreval"
)

// checkAllNumbers checks that every argument is a number.
func checkAllNumbers(name string, args *lispr.SExpr) lispr.Value {
	if errv := checkMinCount(name, args, 1); errv != nil {
		return errv
	}
	for i := 0; i < args.Count(); i++ {
		if _, ok := lispr.GetNumber(args.Child(i)); !ok {
			return lispr.MakeError("'%s' requires all numerical inputs", name)
		}
	}
	return nil
}

// foldNumbers folds the step function over the arguments, with the first
// argument as the accumulator. Every step returns a fresh value, so type
// promotion never mutates in place.
func foldNumbers(name string, args *lispr.SExpr, step func(x, y lispr.Number) lispr.Value) lispr.Value {
	if errv := checkAllNumbers(name, args); errv != nil {
		return errv
	}
	acc := args.Pop(0)
	for args.Count() > 0 {
		y := args.Pop(0).(lispr.Number)
		acc = step(acc.(lispr.Number), y)
		if lispr.IsError(acc) {
			return acc
		}
	}
	return acc
}

// Add is the builtin that implements (+ n n...)
var Add = lispreval.Builtin{
	Name: "+",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return foldNumbers("+", args, func(x, y lispr.Number) lispr.Value {
			return lispr.NumAdd(x, y)
		})
	},
}

// Sub is the builtin that implements (- n n...); with a single argument it
// negates.
var Sub = lispreval.Builtin{
	Name: "-",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		if errv := checkAllNumbers("-", args); errv != nil {
			return errv
		}
		if args.Count() == 1 {
			return lispr.NumNeg(args.Pop(0).(lispr.Number))
		}
		return foldNumbers("-", args, func(x, y lispr.Number) lispr.Value {
			return lispr.NumSub(x, y)
		})
	},
}

// Mul is the builtin that implements (* n n...)
var Mul = lispreval.Builtin{
	Name: "*",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return foldNumbers("*", args, func(x, y lispr.Number) lispr.Value {
			return lispr.NumMul(x, y)
		})
	},
}

// Div is the builtin that implements (/ n n...)
var Div = lispreval.Builtin{
	Name: "/",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return foldNumbers("/", args, func(x, y lispr.Number) lispr.Value {
			res, err := lispr.NumDiv(x, y)
			if err != nil {
				return lispr.MakeError("%s", err.Error())
			}
			return res
		})
	},
}

// Mod is the builtin that implements (% n n...)
var Mod = lispreval.Builtin{
	Name: "%",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return foldNumbers("%", args, func(x, y lispr.Number) lispr.Value {
			res, err := lispr.NumMod(x, y)
			if err != nil {
				return lispr.MakeError("%s", err.Error())
			}
			return res
		})
	},
}

// Pow is the builtin that implements (^ n n...). The exponent must be a
// non-negative integer.
var Pow = lispreval.Builtin{
	Name: "^",
	Fn: func(_ *lispreval.Env, args *lispr.SExpr) lispr.Value {
		return foldNumbers("^", args, func(x, y lispr.Number) lispr.Value {
			exp, isInt := y.(lispr.Int64)
			if !isInt {
				return lispr.MakeError("exponentiation by non-integer not supported yet. "+
					"Got %s, of type double, as an exponent.", y.String())
			}
			if exp < 0 {
				return lispr.MakeError("exponentiation by negative exponent not supported yet. "+
					"Got %d as an exponent.", int64(exp))
			}
			return lispr.NumPow(x, int64(exp))
		})
	},
}
