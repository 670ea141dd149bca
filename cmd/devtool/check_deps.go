package main

import (
	"fmt"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required dependencies"
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	hasError := false

	// Output: go version go1.24.0 linux/amd64
	if version, err := getCommandOutput("go", "version"); err == nil {
		PrintSuccess("Go installed: %s", versionField(version, 2))
	} else {
		PrintError("Go not found! Install from: https://go.dev/dl/")
		hasError = true
	}

	// Docker is only needed for the postgres driver and the integration tests
	if version, err := getCommandOutput("docker", "--version"); err == nil {
		PrintSuccess("Docker installed: %s", strings.TrimRight(versionField(version, 2), ","))
	} else {
		PrintWarning("Docker not found (needed for postgres and integration tests)")
	}

	if version, err := getCommandOutput("goose", "--version"); err == nil {
		fields := strings.Fields(version)
		PrintSuccess("Goose installed: %s", strings.TrimPrefix(fields[len(fields)-1], "version:"))
	} else {
		PrintWarning("Goose not found (only needed for 'migrate create')")
		PrintInfo("Install: go install github.com/pressly/goose/v3/cmd/goose@latest")
	}

	if hasError {
		return fmt.Errorf("missing required dependencies")
	}

	PrintSuccess("Environment check complete!")
	return nil
}

// versionField returns the n-th whitespace separated field, or the whole string
func versionField(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		return fields[n]
	}
	return s
}
