package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

const fileFormatVersion = "1.0"

// settingsFile is the on-disk layout shared by the file and git backends.
type settingsFile struct {
	Version    string     `json:"version"`
	ColorTheme string     `json:"color_theme"`
	Settings   string     `json:"settings"`
	SavedAt    *time.Time `json:"saved_at,omitempty"`
}

// FilePersister stores the latest snapshot in a JSON file.
type FilePersister struct {
	path string
	now  func() time.Time
}

// NewFilePersister creates a persister writing to path. The parent
// directory is created on first save.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path, now: time.Now}
}

// Name implements ports.Persister.
func (f *FilePersister) Name() string { return "file" }

// Path returns the file the persister writes to.
func (f *FilePersister) Path() string { return f.path }

// Load implements ports.Persister. A missing file is an empty snapshot.
func (f *FilePersister) Load(ctx context.Context) (ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return ports.Snapshot{}, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ports.Snapshot{}, nil
		}
		return ports.Snapshot{}, fmt.Errorf("read settings file: %w", err)
	}

	var file settingsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return ports.Snapshot{}, fmt.Errorf("parse settings file %s: %w", f.path, err)
	}
	return ports.Snapshot{ColorTheme: file.ColorTheme, Settings: file.Settings}, nil
}

// Save implements ports.Persister. The file is replaced atomically.
func (f *FilePersister) Save(ctx context.Context, snapshot ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	savedAt := f.now().UTC()
	return f.write(settingsFile{
		Version:    fileFormatVersion,
		ColorTheme: snapshot.ColorTheme,
		Settings:   snapshot.Settings,
		SavedAt:    &savedAt,
	})
}

func (f *FilePersister) write(file settingsFile) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings file: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}
