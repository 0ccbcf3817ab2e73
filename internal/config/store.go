package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Keys recognized in the store and published to the environment.
const (
	KeyAPIKey        = "DASHSCOPE_API_KEY"
	KeyCompatBaseURL = "DASHSCOPE_API_BASE"
	KeyNativeBaseURL = "DASHSCOPE_BASE_HTTP_API_URL"
)

// DefaultPath returns the store location: SCOPEKEY_CONFIG if set, otherwise
// Key.json in the working directory.
func DefaultPath() string {
	if p := os.Getenv("SCOPEKEY_CONFIG"); p != "" {
		return p
	}
	return "Key.json"
}

// Store reads and writes the persisted configuration file.
type Store struct {
	Path string
	Warn io.Writer
}

// NewStore creates a Store for the given path, warning to stderr.
func NewStore(path string) *Store {
	return &Store{Path: path, Warn: os.Stderr}
}

// Load reads the store into a flat string map. A missing file yields an empty
// map; a file that cannot be parsed is discarded with a warning. Load never
// fails.
func (s *Store) Load() map[string]string {
	values := map[string]string{}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(s.warn(), "Warning: cannot read config file %s: %v\n", s.Path, err)
		}
		return values
	}
	if err := json.Unmarshal(data, &values); err != nil {
		fmt.Fprintf(s.warn(), "Warning: config file %s is corrupted; a new one will be created.\n", s.Path)
		return map[string]string{}
	}
	return values
}

// Save writes the full map back as pretty-printed JSON, creating parent
// directories as needed. The file holds a credential, hence 0600.
func (s *Store) Save(values map[string]string) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(values, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(s.Path, data, 0o600)
}

func (s *Store) warn() io.Writer {
	if s.Warn != nil {
		return s.Warn
	}
	return os.Stderr
}
