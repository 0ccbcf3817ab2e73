package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestStore_LoadMissing(t *testing.T) {
	var warn bytes.Buffer
	s := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: &warn}

	values := s.Load()
	if len(values) != 0 {
		t.Errorf("Load of missing file = %v, want empty map", values)
	}
	if warn.Len() != 0 {
		t.Errorf("missing file should not warn, got: %s", warn.String())
	}
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Key.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	var warn bytes.Buffer
	s := &Store{Path: path, Warn: &warn}

	values := s.Load()
	if len(values) != 0 {
		t.Errorf("Load of malformed file = %v, want empty map", values)
	}
	if !strings.Contains(warn.String(), "corrupted") {
		t.Errorf("expected corruption warning, got: %s", warn.String())
	}
}

func TestStore_LoadNonStringValues(t *testing.T) {
	// Valid JSON but not a flat string map is still unusable.
	path := filepath.Join(t.TempDir(), "Key.json")
	if err := os.WriteFile(path, []byte(`{"DASHSCOPE_API_KEY": 42}`), 0o600); err != nil {
		t.Fatal(err)
	}

	var warn bytes.Buffer
	s := &Store{Path: path, Warn: &warn}
	if values := s.Load(); len(values) != 0 {
		t.Errorf("Load = %v, want empty map", values)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: &bytes.Buffer{}}
	in := map[string]string{
		KeyAPIKey:        "sk-test1234",
		KeyCompatBaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		KeyNativeBaseURL: "https://dashscope-intl.aliyuncs.com/api/v1",
		"EXTRA_KEY":      "preserved",
	}

	if err := s.Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	out := s.Load()
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n  saved:  %v\n  loaded: %v", in, out)
	}
}

func TestStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "Key.json")
	s := &Store{Path: path, Warn: &bytes.Buffer{}}

	if err := s.Save(map[string]string{KeyAPIKey: "sk-x"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestStore_SavePrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Key.json")
	s := &Store{Path: path, Warn: &bytes.Buffer{}}
	if err := s.Save(map[string]string{KeyAPIKey: "sk-x"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Error("saved config is not pretty-printed")
	}
}

func TestDefaultPath(t *testing.T) {
	orig, had := os.LookupEnv("SCOPEKEY_CONFIG")
	defer func() {
		if had {
			os.Setenv("SCOPEKEY_CONFIG", orig)
		} else {
			os.Unsetenv("SCOPEKEY_CONFIG")
		}
	}()

	os.Unsetenv("SCOPEKEY_CONFIG")
	if got := DefaultPath(); got != "Key.json" {
		t.Errorf("DefaultPath = %q, want Key.json", got)
	}

	os.Setenv("SCOPEKEY_CONFIG", "/tmp/alt.json")
	if got := DefaultPath(); got != "/tmp/alt.json" {
		t.Errorf("DefaultPath with override = %q, want /tmp/alt.json", got)
	}
}
