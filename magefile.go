//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "i18nsync"

// Default target when running mage without arguments
var Default = Build

// Build compiles the i18nsync binary
func Build() error {
	fmt.Println("Building", binary)
	// go-sqlite3 needs cgo
	env := map[string]string{"CGO_ENABLED": "1"}
	return sh.RunWith(env, "go", "build", "-o", binary, "./cmd/i18nsync")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All vets, tests and builds
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Install copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return sh.Copy(home+"/go/bin/"+binary, binary)
}

// Clean removes the built binary
func Clean() error {
	return sh.Rm(binary)
}
