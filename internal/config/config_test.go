package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, AuditPolicyWrite, cfg.Audit.Policy)
	assert.Equal(t, 90, cfg.Audit.RetentionDays)
	assert.Equal(t, 60*time.Minute, cfg.JWT.Expiry())
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9000"
  base_path: /api/v2
database:
  type: postgres
  host: db.internal
  port: 5433
  user: pwb
  name: pwb
audit:
  policy: all
  retention_days: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/api/v2", cfg.Server.BasePath)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, AuditPolicyAll, cfg.Audit.Policy)
	assert.Equal(t, 30, cfg.Audit.RetentionDays)
	assert.Contains(t, cfg.Database.GetDSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.GetDSN(), "port=5433")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRE_MINUTES", "15")
	t.Setenv("AUDIT_POLICY", "all")
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "envhost", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiry())
	assert.Equal(t, AuditPolicyAll, cfg.Audit.Policy)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr())
}

func TestLoad_InvalidAuditPolicy(t *testing.T) {
	t.Setenv("AUDIT_POLICY", "everything")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	cfg := DatabaseConfig{Type: "sqlite", Path: "/tmp/pwb.db"}
	assert.Equal(t, "/tmp/pwb.db", cfg.GetDSN())
}
