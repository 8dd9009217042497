package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lishuoqwq/MaltesePet/internal/model"
	"github.com/lishuoqwq/MaltesePet/internal/platform"
)

// Animation file constants
const (
	AnimationExt   = ".gif"
	ConfigFileName = "config.json"

	configFilePermissions = 0644
)

// persistedConfig is the on-disk shape of the config file. Only gif_order
// is recognized; unknown keys are ignored for forward compatibility.
type persistedConfig struct {
	GifOrder []string `json:"gif_order"`
}

// Store owns the two animation roots (built-in and user-writable) and the
// persisted custom display order. All paths it hands out are normalized to
// absolute slash-separated form.
type Store struct {
	builtinRoot string
	userRoot    string
	configPath  string
	order       []string
}

// New creates a Store, ensures both roots exist and loads the persisted
// order. Root creation is idempotent. A missing or malformed config file
// is never fatal; it just yields an empty order.
func New(builtinRoot, userRoot, configPath string) (*Store, error) {
	if err := platform.CreateDirectoryIfNotExists(builtinRoot); err != nil {
		return nil, fmt.Errorf("failed to create built-in animation root: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(userRoot); err != nil {
		return nil, fmt.Errorf("failed to create user animation root: %w", err)
	}

	s := &Store{
		builtinRoot: builtinRoot,
		userRoot:    userRoot,
		configPath:  configPath,
	}
	s.loadConfig()
	return s, nil
}

// BuiltinRoot returns the read-only animation root directory.
func (s *Store) BuiltinRoot() string {
	return s.builtinRoot
}

// UserRoot returns the user-writable animation root directory.
func (s *Store) UserRoot() string {
	return s.userRoot
}

// loadConfig reads the persisted order. Order entries that no longer
// resolve to an existing file are dropped here.
func (s *Store) loadConfig() {
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read config file %s: %v", s.configPath, err)
		}
		s.order = nil
		return
	}

	var cfg persistedConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse config file %s: %v", s.configPath, err)
		s.order = nil
		return
	}

	var order []string
	for _, p := range cfg.GifOrder {
		norm := platform.NormalizePath(p)
		if _, err := os.Stat(filepath.FromSlash(norm)); err != nil {
			continue
		}
		order = append(order, norm)
	}
	s.order = order
}

// Order returns a copy of the current custom display order.
func (s *Store) Order() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ListFiles globs both roots for animation files and returns them
// deduplicated by normalized path, built-in discoveries first.
func (s *Store) ListFiles() []model.AnimationEntry {
	roots := []struct {
		dir    string
		origin model.Origin
	}{
		{s.builtinRoot, model.OriginBuiltin},
		{s.userRoot, model.OriginUser},
	}

	seen := make(map[string]bool)
	var entries []model.AnimationEntry
	for _, root := range roots {
		matches, err := filepath.Glob(filepath.Join(root.dir, "*"+AnimationExt))
		if err != nil {
			log.Printf("Failed to glob animation root %s: %v", root.dir, err)
			continue
		}
		for _, m := range matches {
			norm := platform.NormalizePath(m)
			if seen[norm] {
				continue
			}
			seen[norm] = true
			entries = append(entries, model.AnimationEntry{Path: norm, Origin: root.origin})
		}
	}
	return entries
}

// ImportFile copies sourcePath into the user root, preserving metadata.
// Importing a file whose name already exists in the user root is
// idempotent: the existing entry is returned without copying.
func (s *Store) ImportFile(sourcePath string) (model.AnimationEntry, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return model.AnimationEntry{}, fmt.Errorf("%w: %s", model.ErrNotFound, sourcePath)
	}

	target := filepath.Join(s.userRoot, filepath.Base(sourcePath))
	entry := model.AnimationEntry{Path: platform.NormalizePath(target), Origin: model.OriginUser}

	if _, err := os.Stat(target); err == nil {
		return entry, nil
	}

	if err := platform.CopyFilePreservingMetadata(sourcePath, target); err != nil {
		return model.AnimationEntry{}, fmt.Errorf("failed to import animation: %w", err)
	}

	log.Printf("Imported animation %s -> %s", sourcePath, entry.Path)
	return entry, nil
}

// DeleteFile removes an animation from disk and from the persisted order.
// When the exact normalized path does not exist the lookup falls back to
// matching by file name across both roots, which covers order entries that
// refer to moved files. Returns false if nothing matched anywhere.
func (s *Store) DeleteFile(p string) bool {
	norm := platform.NormalizePath(p)

	if _, err := os.Stat(filepath.FromSlash(norm)); err == nil {
		s.removeFromOrder(norm)
		if err := os.Remove(filepath.FromSlash(norm)); err != nil {
			log.Printf("Failed to delete animation %s: %v", norm, err)
			return false
		}
		return true
	}

	name := path.Base(norm)
	for _, root := range []string{s.builtinRoot, s.userRoot} {
		target := filepath.Join(root, name)
		if _, err := os.Stat(target); err != nil {
			continue
		}
		s.removeFromOrder(platform.NormalizePath(target))
		if err := os.Remove(target); err != nil {
			log.Printf("Failed to delete animation %s: %v", target, err)
			return false
		}
		return true
	}

	return false
}

// removeFromOrder drops order entries matching the normalized path or its
// file name and persists the shrunken order.
func (s *Store) removeFromOrder(norm string) {
	name := path.Base(norm)
	var kept []string
	for _, p := range s.order {
		if p == norm || path.Base(p) == name {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(s.order) {
		return
	}
	s.order = kept
	s.persist()
}

// SetOrder replaces the custom display order and persists it. The
// in-memory order takes effect even when the write fails.
func (s *Store) SetOrder(paths []string) {
	order := make([]string, 0, len(paths))
	for _, p := range paths {
		order = append(order, platform.NormalizePath(p))
	}
	s.order = order
	s.persist()
}

// persist writes the current config to disk via a uniquely named temp file
// in the same directory, then renames it over the target. Any I/O error is
// logged and swallowed; persistence failures never block the user.
func (s *Store) persist() {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.configPath)); err != nil {
		log.Printf("Failed to create config directory: %v", err)
		return
	}

	data, err := json.MarshalIndent(persistedConfig{GifOrder: s.order}, "", "  ")
	if err != nil {
		log.Printf("Failed to encode config: %v", err)
		return
	}

	tmp := s.configPath + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, configFilePermissions); err != nil {
		log.Printf("Failed to write config file: %v", err)
		return
	}
	if err := os.Rename(tmp, s.configPath); err != nil {
		log.Printf("Failed to replace config file: %v", err)
		os.Remove(tmp)
	}
}
