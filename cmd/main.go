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

// Package main provides the interactive interpreter for the Lispr language.
package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"

	"t73f.de/r/lispr"
	"t73f.de/r/lispr/lisprbuiltins"
	"t73f.de/r/lispr/lispreval"
	"t73f.de/r/lispr/lisprreader"
)

func main() {
	env := lispreval.MakeEnv()
	env.SetOutput(os.Stdout)
	lisprbuiltins.BindAll(env)

	for _, path := range os.Args[1:] {
		loadArgs := lispr.MakeSExpr(lispr.MakeString(path))
		if res := lisprbuiltins.Load.Fn(env, loadArgs); lispr.IsError(res) {
			_, _ = lispr.Println(os.Stdout, res)
		}
	}

	fmt.Println("Lispr Version 0.0.0.0.1")
	fmt.Println("Press ctrl+c to Exit")
	fmt.Println()
	repl(env, bufio.NewScanner(os.Stdin))
}

func repl(env *lispreval.Env, sc *bufio.Scanner) {
	defer func() {
		if val := recover(); val != nil {
			fmt.Printf("RECOVER PANIC: %v\n\n%s\n", val, string(debug.Stack()))
			repl(env, sc)
		}
	}()

	for {
		fmt.Print("lispr> ")
		if !sc.Scan() {
			return
		}

		root, err := lisprreader.ParseString("<stdin>", sc.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}

		prog := lisprreader.ReadNode(root).(*lispr.SExpr)
		for prog.Count() > 0 {
			res := lispreval.Eval(env, prog.Pop(0))
			_, _ = lispr.Println(os.Stdout, res)
		}
	}
}
