package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables: API_KEY")
}

func TestValidateEnv_ExtraVariables(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "key")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "")

	require.NoError(t, ValidateEnv())

	err := ValidateEnv(DiscordRequiredEnvVars...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_APP_ID")
	assert.NotContains(t, err.Error(), "DISCORD_TOKEN")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("RNG_SEED", "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_SeededProd(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "real-key")
	t.Setenv("DB_PASSWORD", "real-password")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("RNG_SEED", "42")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "RNG_SEED")
}
