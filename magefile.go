//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "recreator"

// Default target to run when none is specified
var Default = Build

// Build builds the binary
func Build() error {
	fmt.Println("Building...")
	return sh.Run("go", "build", "-o", binary, "./cmd/recreator")
}

// Install installs the binary
func Install() error {
	fmt.Println("Installing...")
	return sh.Run("go", "install", "./cmd/recreator")
}

// Test runs all tests with the race detector
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "-shuffle=on", "-coverprofile=coverage.out", "./...")
}

// Lint lints the codebase
func Lint() error {
	fmt.Println("Linting...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats the code
func Fmt() error {
	fmt.Println("Formatting code...")
	if err := sh.Run("gofmt", "-s", "-w", "."); err != nil {
		return err
	}
	return sh.Run("goimports", "-w", ".")
}

// Check formats, lints and tests
func Check() {
	mg.SerialDeps(Fmt, Lint, Test)
}

// Demo builds the binary and starts it with a debug log next to it
func Demo() error {
	mg.Deps(Build)

	cmd := exec.Command("./"+binary, "--log-file", binary+".log", "--sample-history")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	for _, name := range []string{binary, binary + ".log", "coverage.out"} {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
