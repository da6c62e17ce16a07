package providers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevlog/internal/structures"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypeEnum(TypePost), GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("DELETE"))
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	// Should be able to log without error
	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypePost, "post message")

	for _, name := range []string{"app.log", "get.log", "post.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "verbose",
			Mode:  0644,
			Dir:   t.TempDir(),
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
