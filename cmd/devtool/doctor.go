package main

import (
	"context"
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (deps + config + store)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	depsCmd := &CheckDepsCommand{}
	if err := depsCmd.Run(nil); err != nil {
		PrintError("Dependencies check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dependencies OK")
	}

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		PrintWarning("%s", w)
	}
	if err != nil {
		PrintError("Environment check failed: %v", err)
		hasError = true
	}

	cfg, err := config.Load()
	if err != nil {
		PrintError("Config check failed: %v", err)
		return fmt.Errorf("doctor found issues")
	}
	PrintSuccess("Config OK (driver %s)", cfg.StorageDriver)

	if err := waitForStore(context.Background(), cfg, 1, 0); err != nil {
		PrintError("Store check failed: %v", err)
		hasError = true
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
