package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "arc-portal",
			TokenDuration: time.Hour,
			PasswordCost:  10,
		},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost/arc"},
			Mongo: Mongo{URI: "mongodb://localhost:27017", Database: "WebReporting", MaxPoolSize: 5},
			Files: Files{MaxUploadBytes: 1024},
		},
		Server: Server{HTTPAddress: ":8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── merge / build ─────────────────────────────────────────────────────────────

func TestMerge_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().merge()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestMerge_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestMerge_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.merge()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestMerge_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestMerge_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenIssuer: "env-issuer", TokenDuration: time.Hour},
			Storage: Storage{Mongo: Mongo{URI: "mongodb://env", Database: "WebReporting"}},
		},
		&StructuredConfig{
			App:     App{TokenIssuer: "flag-issuer"},
			Storage: Storage{Mongo: Mongo{URI: "mongodb://flag"}},
		},
	)

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "mongodb://flag", cfg.Storage.Mongo.URI)
	assert.Equal(t, "WebReporting", cfg.Storage.Mongo.Database)
}

func TestBuild_ValidConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestBuild_InvalidConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_ISSUER":  "env-issuer",
		"STORAGE_MONGO_URI": "mongodb://env:27017",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "mongodb://env:27017", b.configs[0].Storage.Mongo.URI)
}

func TestWithEnv_SetsErrorOnMalformedValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "never"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-mongo-db", "Flags"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "Flags", b.configs[0].Storage.Mongo.Database)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDotEnv("/nonexistent/.env"))
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.Storage.Mongo.Database = "JSONDB"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, "JSONDB", b.configs[1].Storage.Mongo.Database)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.TokenIssuer = "first"
	last := StructuredJSONConfig{}
	last.App.TokenIssuer = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
		&StructuredConfig{JSONFilePath: ""},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.TokenIssuer)
}

// TestWithJSON_OverridesFlags verifies the documented priority: the JSON
// file is merged on top of flags.
func TestWithJSON_OverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = "127.0.0.1:9000"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-a", "localhost:8081", "-c", path}).
		withJSON().
		merge()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// ── GetToolConfig ─────────────────────────────────────────────────────────────

func TestGetToolConfig_ReadsEnvAndJSON(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_MONGO_URI": "mongodb://env:27017"})
	payload := StructuredJSONConfig{}
	payload.Storage.Mongo.Database = "FromJSON"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetToolConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "mongodb://env:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "FromJSON", cfg.Storage.Mongo.Database)
}

func TestGetToolConfig_SkipsValidation(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := GetToolConfig("")

	require.NoError(t, err)
	assert.Empty(t, cfg.App.TokenSignKey)
}
