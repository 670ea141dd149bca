package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the environment variables the API server needs
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// DiscordRequiredEnvVars lists the additional variables the Discord bot needs
var DiscordRequiredEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
}

// ValidateEnv checks that the schema version matches and that RequiredEnvVars
// plus any extra variables are set.
func ValidateEnv(extra ...string) error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range append(append([]string{}, RequiredEnvVars...), extra...) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-critical issues
// such as example values left in place.
func ValidateEnvWithWarnings(extra ...string) ([]string, error) {
	if err := ValidateEnv(extra...); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv("RNG_SEED") != "" && os.Getenv("ENVIRONMENT") == "prod" {
		warnings = append(warnings, "RNG_SEED is set in prod - bonus drops will repeat across restarts")
	}

	return warnings, nil
}
