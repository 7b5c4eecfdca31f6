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

// Package conformance runs the end-to-end scenario suite stored in
// testdata/*.yaml against the interpreter.
package conformance

// TestSuite represents a complete YAML test file.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single scenario within a suite. The input is a
// Lispr program; want holds the printed result of each top-level
// expression in order, output the side-effect output written by `print`.
type TestCase struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Input       string   `yaml:"input"`
	Want        []string `yaml:"want,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Skip        string   `yaml:"skip,omitempty"`
}
