//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binPath = "bin/covplan"

// Build builds the covplan binary with version metadata.
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/dkoosis/covplan/internal/version.Version=%s "+
			"-X github.com/dkoosis/covplan/internal/version.CommitHash=%s "+
			"-X github.com/dkoosis/covplan/internal/version.BuildDate=%s",
		version, commit, time.Now().UTC().Format(time.RFC3339))

	return sh.Run("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/covplan")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover runs tests with coverage and writes the profile.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs go vet and gofmt checks.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return nil
}

// CI runs the full check suite the way the pipeline does.
func CI() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
