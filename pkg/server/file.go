package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file accepted by `serve --config`.
// Zero values leave the corresponding setting unchanged.
type FileConfig struct {
	Port           int      `yaml:"port"`
	Address        string   `yaml:"address"`
	RateLimit      float64  `yaml:"rateLimit"`
	RateLimitBurst int      `yaml:"rateLimitBurst"`
	MaxBodyBytes   int64    `yaml:"maxBodyBytes"`
	CORSOrigins    []string `yaml:"corsOrigins"`
	BatchWorkers   int      `yaml:"batchWorkers"`
}

// LoadFile reads and validates the YAML config file at path.
// Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := fc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &fc, nil
}

// Validate rejects out-of-range values.
func (fc *FileConfig) Validate() error {
	switch {
	case fc.Port < 0 || fc.Port > 65535:
		return fmt.Errorf("port %d out of range", fc.Port)
	case fc.RateLimit < 0:
		return fmt.Errorf("rateLimit must not be negative")
	case fc.RateLimitBurst < 0:
		return fmt.Errorf("rateLimitBurst must not be negative")
	case fc.MaxBodyBytes < 0:
		return fmt.Errorf("maxBodyBytes must not be negative")
	case fc.BatchWorkers < 0:
		return fmt.Errorf("batchWorkers must not be negative")
	}
	return nil
}

// Apply overlays the non-zero file settings onto cfg.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc.Port != 0 {
		cfg.Port = fc.Port
	}
	if fc.Address != "" {
		cfg.Address = fc.Address
	}
	if fc.RateLimit != 0 {
		cfg.RateLimit = rate.Limit(fc.RateLimit)
	}
	if fc.RateLimitBurst != 0 {
		cfg.RateLimitBurst = fc.RateLimitBurst
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = append([]string(nil), fc.CORSOrigins...)
	}
}

// WatchFile calls onChange with the reloaded config each time the file at
// path is written or replaced. It blocks until ctx is cancelled. A reload
// that fails to parse or validate is logged and skipped.
func WatchFile(ctx context.Context, path string, onChange func(*FileConfig)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (write temp file, rename) are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch config %q: %w", path, err)
	}
	target := filepath.Clean(path)

	slog.Info("watching config for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			fc, err := LoadFile(path)
			if err != nil {
				slog.Error("config reload failed, keeping previous config", "path", path, "error", err)
				continue
			}

			slog.Info("config reloaded", "path", path)
			onChange(fc)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error", "error", err)
		}
	}
}
