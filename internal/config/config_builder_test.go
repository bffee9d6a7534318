package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempFile(t, data)
}

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestConfigBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		configs []*StructuredConfig
		err     error
		want    *StructuredConfig
	}{
		{name: "nothing loaded", want: &StructuredConfig{}},
		{
			name: "disjoint fields merge",
			configs: []*StructuredConfig{
				{App: App{TokenSignKey: "secret"}},
				{App: App{TokenIssuer: "credkeeper"}},
			},
			want: &StructuredConfig{App: App{TokenSignKey: "secret", TokenIssuer: "credkeeper"}},
		},
		{
			name: "later source wins, zero values do not erase",
			configs: []*StructuredConfig{
				{Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}},
				{Server: Server{HTTPAddress: "localhost:9999"}},
			},
			want: &StructuredConfig{Server: Server{HTTPAddress: "localhost:9999", RequestTimeout: time.Second}},
		},
		{name: "collected error", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.configs...)
			b.err = tt.err

			cfg, err := b.build()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfigBuilder_WithEnv(t *testing.T) {
	t.Run("reads variables", func(t *testing.T) {
		t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
		t.Setenv("STORAGE_DB_DATABASE_URI", "file:accounts.db")

		b := newConfigBuilder()
		assert.Same(t, b, b.withEnv())
		require.Len(t, b.configs, 1)
		assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
		assert.Equal(t, "file:accounts.db", b.configs[0].Storage.DB.DSN)
	})

	t.Run("bad duration is collected", func(t *testing.T) {
		t.Setenv("SERVER_REQUEST_TIMEOUT", "never")

		b := newConfigBuilder().withEnv()
		assert.Error(t, b.err)
		assert.Empty(t, b.configs)
	})
}

func TestConfigBuilder_WithFlags(t *testing.T) {
	t.Run("reads os.Args", func(t *testing.T) {
		withArgs(t, "-a", "localhost:8080", "-hash-key", "k")

		b := newConfigBuilder().withFlags()
		require.NoError(t, b.err)
		require.Len(t, b.configs, 1)
		assert.Equal(t, "localhost:8080", b.configs[0].Server.HTTPAddress)
		assert.Equal(t, "k", b.configs[0].App.HashKey)
	})

	t.Run("bad flag is collected", func(t *testing.T) {
		withArgs(t, "-a", "nonsense")

		b := newConfigBuilder().withFlags()
		assert.Error(t, b.err)
		assert.Empty(t, b.configs)
	})
}

func TestConfigBuilder_WithJSON(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.TokenIssuer = "first"
	last := StructuredJSONConfig{}
	last.App.TokenIssuer = "last"

	tests := []struct {
		name       string
		paths      []string
		wantErr    bool
		wantIssuer string
	}{
		{name: "no path is a no-op", paths: []string{""}},
		{name: "missing file", paths: []string{"/nonexistent/config.json"}, wantErr: true},
		{name: "malformed file", paths: []string{writeTempFile(t, []byte("{not json"))}, wantErr: true},
		{
			name:       "last path wins",
			paths:      []string{writeTempJSONConfig(t, first), writeTempJSONConfig(t, last)},
			wantIssuer: "last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			for _, p := range tt.paths {
				b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
			}

			b.withJSON()
			if tt.wantErr {
				assert.Error(t, b.err)
				return
			}
			require.NoError(t, b.err)
			if tt.wantIssuer == "" {
				assert.Len(t, b.configs, len(tt.paths))
				return
			}
			require.Len(t, b.configs, len(tt.paths)+1)
			assert.Equal(t, tt.wantIssuer, b.configs[len(b.configs)-1].App.TokenIssuer)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name       string
		dsn        string
		driver     string
		wantDriver string
	}{
		{name: "empty dsn selects memory", wantDriver: DriverMemory},
		{name: "postgres scheme", dsn: "postgres://u:p@localhost/db", wantDriver: DriverPostgres},
		{name: "postgresql scheme", dsn: "postgresql://u:p@localhost/db", wantDriver: DriverPostgres},
		{name: "file dsn selects sqlite", dsn: "file:accounts.db", wantDriver: DriverSQLite},
		{name: "explicit driver kept", dsn: "file:accounts.db", driver: DriverPostgres, wantDriver: DriverPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{Storage: Storage{DB: DB{Driver: tt.driver, DSN: tt.dsn}}}
			cfg.applyDefaults()

			assert.Equal(t, tt.wantDriver, cfg.Storage.DB.Driver)
			assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
			assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
			assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{TokenSignKey: "secret"},
			Storage: Storage{DB: DB{Driver: DriverMemory}},
			Server:  Server{HTTPAddress: "localhost:8080"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqlite without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "grpc only is enough",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = "localhost:9090"
			},
		},
		{
			name:    "no listen address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateClient(t *testing.T) {
	cfg := &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}
	assert.NoError(t, cfg.validateClient())

	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validateClient(), ErrInvalidAdapterConfigs)
}

func TestGetStructuredConfig_FromEnv(t *testing.T) {
	clearEnvVars(t)
	withArgs(t)
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
}

func TestGetStructuredConfig_MissingSecret(t *testing.T) {
	clearEnvVars(t)
	withArgs(t, "-a", "localhost:8080")

	cfg, err := GetStructuredConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "http://json:8080"
	path := writeTempJSONConfig(t, payload)
	withArgs(t, "-server-address", "http://flag:8080", "-c", path)

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://json:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}
