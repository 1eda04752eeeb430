// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const coverFile = "coverage.out"

// Test groups test targets (all, unit, cover).
type Test mg.Namespace

// All runs every test with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Unit runs the tests verbosely without the race detector.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Generated fails when units_gen.go or units_gen_test.go is stale against
// the unit table.
func (Test) Generated() error {
	return sh.RunV(binGo, "test", "-run", "TestGenerate(Test)?_MatchesCheckedInFile", "./internal/unitgen")
}

// Cover writes a coverage profile and prints the per-function summary.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	out, err := sh.Output(binGo, "tool", "cover", "-func="+coverFile)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
