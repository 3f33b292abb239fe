package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/club-records/internal/domain/club"
)

const defaultOutputPath = "club.json"

// outputPath resolves the file a club is written to. With unique set, a
// random ID is inserted before the extension: club.json -> club-<uuid>.json.
func outputPath(path string, unique bool) string {
	if path == "" {
		path = defaultOutputPath
	}
	if !unique {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + uuid.NewString() + ext
}

func writeClub(path string, c *club.Club) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding club: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
