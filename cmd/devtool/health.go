package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
)

const slowHealthThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application health ([api-url], defaults to $API_URL)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	apiURL := getEnv("API_URL", defaultAPIURL)
	if len(args) > 0 {
		apiURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", apiURL))

	duration, err := checkHealth(context.Background(), apiclient.NewAPIClient(apiURL, ""))
	if err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}

	if duration > slowHealthThreshold {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}

// checkHealth hits /healthz once to warm up and returns the time of a second call
func checkHealth(ctx context.Context, client *apiclient.APIClient) (time.Duration, error) {
	if err := client.Healthz(ctx); err != nil {
		return 0, err
	}

	start := time.Now()
	if err := client.Healthz(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
