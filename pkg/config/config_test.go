package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.APIPrefix)
	assert.Equal(t, "the create user", cfg.Audit.CreateActor)
	assert.Equal(t, "the update user", cfg.Audit.UpdateActor)
	assert.Nil(t, cfg.Clock.FixedAt)
	assert.True(t, cfg.Validation.Parallel)
	assert.True(t, cfg.Docs.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.EmployeeTTL)
}

func TestFixedClockOverride(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CLOCK_FIXED_AT", "2022-01-01T00:00:00Z")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	require.NotNil(t, cfg.Clock.FixedAt)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), *cfg.Clock.FixedAt)
}

func TestFixedClockOverrideRejectsGarbage(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CLOCK_FIXED_AT", "yesterday")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDocsDisabledInProduction(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ENV", EnvProduction)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.Docs.Enabled)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"http://a", "http://b"}, splitAndTrim(" http://a, ,http://b "))
}
