package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_TYPE", "")
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "local", cfg.StorageType)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestSplitOrigins(t *testing.T) {
	origins := SplitOrigins("https://app.construapp.com, http://localhost:5173 ,")
	require.Len(t, origins, 2)
	assert.Equal(t, "https://app.construapp.com", origins[0])
	assert.Equal(t, "http://localhost:5173", origins[1])
}
