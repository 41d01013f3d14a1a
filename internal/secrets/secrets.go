// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file is one secret: the filename is the name and the trimmed file
// contents are the value.
//
// The recipe API key is read from APIKeyFile.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// APIKeyFile holds the forkify API key used for uploads.
const APIKeyFile = "forkify-api-key"

// Secrets maps secret names to values.
type Secrets map[string]string

// APIKey returns the recipe API key, or "" when none is stored.
func (s Secrets) APIKey() string { return s[APIKeyFile] }

// Load reads every file in dir. A missing directory is not an error and
// yields an empty set. Unreadable files are logged and skipped.
func Load(dir string, logger *zap.Logger) (Secrets, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}

	logger.Debug("secrets loaded", zap.String("dir", dir), zap.Int("count", len(out)))
	return out, nil
}
