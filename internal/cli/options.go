package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/knobs/internal/logging"
)

// Store backends accepted by --store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Options contains the configuration shared by every command.
type Options struct {
	DefsPath string
	LogLevel string
	Store    string
	StoreDir string
	RedisURL string
	Output   string
	// EncryptionKey is a base64 encoded AES-256 key. When set, snapshots are
	// encrypted at rest.
	EncryptionKey string
	// Exclude lists name patterns of parameters that are never persisted.
	Exclude []string
	// LogOutput receives log records. Defaults to stderr.
	LogOutput io.Writer
}

// Logger builds the application logger from LogLevel.
func (o Options) Logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, err
	}
	if o.LogOutput != nil {
		return logging.NewWithWriter(o.LogOutput, level), nil
	}
	return logging.New(level), nil
}

// definitionCandidates are probed, in order, when --defs is not given.
var definitionCandidates = []string{"knobs.yaml", "knobs.yml", "knobs.json"}

// resolveDefinitions returns the definitions file to load.
// An explicit path must exist. Without one, the conventional file names are
// probed in dir and "" is returned when none is present.
func resolveDefinitions(explicit, dir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("definitions file: %w", err)
		}
		return explicit, nil
	}
	for _, name := range definitionCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
