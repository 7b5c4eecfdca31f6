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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedSuite is a suite together with its source file name.
type LoadedSuite struct {
	File  string
	Suite TestSuite
}

// LoadAllSuites reads every YAML file below the given directory.
func LoadAllSuites(dir string) ([]LoadedSuite, error) {
	var loaded []LoadedSuite
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		suite, err := loadSuiteFile(path)
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}
		loaded = append(loaded, LoadedSuite{File: relPath, Suite: suite})
		return nil
	})
	return loaded, err
}

// loadSuiteFile parses a single YAML suite file.
func loadSuiteFile(path string) (TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TestSuite{}, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, err
	}
	return suite, nil
}
