package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/nfrund/esperanca/internal/config"
)

// ConfigForTests loads the .env.test file at the module root into the test's
// environment and returns the resulting configuration. Commands that call
// config.New during the test see the same values.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
	// Point file storage at a directory the test owns.
	t.Setenv("STORAGE_DIR", t.TempDir())

	cfg, err := config.New()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}
