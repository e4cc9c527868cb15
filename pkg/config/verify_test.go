package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "missing server listen", mutate: func(c *Config) { c.Server.Listen = "" }, errMsg: "server.listen is required"},
		{name: "missing server timeout", mutate: func(c *Config) { c.Server.Timeout = 0 }, errMsg: "server.timeout is required"},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, errMsg: "database.dsn is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	def, ok := schema.Definitions["Config"]
	require.True(t, ok)
	for _, key := range []string{"server", "database", "ui", "gateway"} {
		_, ok := def.Properties.Get(key)
		assert.True(t, ok, key)
	}

	gw, ok := schema.Definitions["GatewayConfig"]
	require.True(t, ok)
	authMode, ok := gw.Properties.Get("auth_mode")
	require.True(t, ok)
	assert.Equal(t, []any{"none", "token", "oauth"}, authMode.Enum)
}
