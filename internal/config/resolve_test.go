package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakePrompter scripts prompt answers and records what was asked.
type fakePrompter struct {
	t           *testing.T
	secret      string
	secretErr   error
	yes         bool
	yesErr      error
	secretCalls int
	yesNoCalls  int
	failOnAny   bool
}

func (f *fakePrompter) Secret(label string) (string, error) {
	if f.failOnAny {
		f.t.Fatalf("unexpected Secret prompt: %s", label)
	}
	f.secretCalls++
	return f.secret, f.secretErr
}

func (f *fakePrompter) YesNo(question string) (bool, error) {
	if f.failOnAny {
		f.t.Fatalf("unexpected YesNo prompt: %s", question)
	}
	f.yesNoCalls++
	return f.yes, f.yesErr
}

// recordingConfigurator captures the native-client hand-off.
type recordingConfigurator struct {
	apiKey  string
	baseURL string
	calls   int
}

func (r *recordingConfigurator) Configure(apiKey, nativeBaseURL string) {
	r.apiKey = apiKey
	r.baseURL = nativeBaseURL
	r.calls++
}

func saveEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{KeyAPIKey, KeyCompatBaseURL, KeyNativeBaseURL} {
		orig, had := os.LookupEnv(k)
		key := k
		t.Cleanup(func() {
			if had {
				os.Setenv(key, orig)
			} else {
				os.Unsetenv(key)
			}
		})
		os.Unsetenv(k)
	}
}

func newTestResolver(t *testing.T, store *Store, p Prompter, n NativeConfigurator) *Resolver {
	t.Helper()
	return &Resolver{Store: store, Prompter: p, Native: n, Out: io.Discard, Warn: io.Discard}
}

func TestResolve_FullStoreNoPromptsNoWrite(t *testing.T) {
	saveEnv(t)
	path := filepath.Join(t.TempDir(), "Key.json")
	store := &Store{Path: path, Warn: io.Discard}
	full := map[string]string{
		KeyAPIKey:        "sk-full",
		KeyCompatBaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		KeyNativeBaseURL: "https://dashscope-intl.aliyuncs.com/api/v1",
	}
	if err := store.Save(full); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	native := &recordingConfigurator{}
	r := newTestResolver(t, store, &fakePrompter{t: t, failOnAny: true}, native)
	resolved := r.Resolve()

	if !resolved.Complete() {
		t.Fatal("expected complete resolution")
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if after.ModTime() != before.ModTime() || after.Size() != before.Size() {
		t.Error("store was rewritten without any new values")
	}
	for k, want := range full {
		if got := os.Getenv(k); got != want {
			t.Errorf("env %s = %q, want %q", k, got, want)
		}
	}
	if native.calls != 1 || native.apiKey != "sk-full" || native.baseURL != full[KeyNativeBaseURL] {
		t.Errorf("native configurator got (%q, %q) in %d calls", native.apiKey, native.baseURL, native.calls)
	}
}

func TestResolve_EmptyStoreInternational(t *testing.T) {
	saveEnv(t)
	store := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: io.Discard}

	p := &fakePrompter{t: t, secret: "sk-test1234", yes: true}
	r := newTestResolver(t, store, p, nil)
	resolved := r.Resolve()

	if !resolved.Complete() {
		t.Fatal("expected complete resolution")
	}
	values := store.Load()
	if values[KeyAPIKey] != "sk-test1234" {
		t.Errorf("stored key = %q", values[KeyAPIKey])
	}
	compat := values[KeyCompatBaseURL]
	if !strings.HasSuffix(compat, "/compatible-mode/v1") || !strings.Contains(compat, "dashscope-intl.aliyuncs.com") {
		t.Errorf("compat endpoint = %q", compat)
	}
	if values[KeyNativeBaseURL] != "https://dashscope-intl.aliyuncs.com/api/v1" {
		t.Errorf("native endpoint = %q", values[KeyNativeBaseURL])
	}
}

func TestResolve_MainlandEndpoints(t *testing.T) {
	saveEnv(t)
	store := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: io.Discard}

	p := &fakePrompter{t: t, secret: "sk-x", yes: false}
	r := newTestResolver(t, store, p, nil)
	resolved := r.Resolve()

	want := EndpointsFor(RegionMainland)
	if resolved.CompatBaseURL != want.Compatible || resolved.NativeBaseURL != want.Native {
		t.Errorf("endpoints = (%q, %q), want (%q, %q)",
			resolved.CompatBaseURL, resolved.NativeBaseURL, want.Compatible, want.Native)
	}
}

func TestResolve_PartialPairReprompted(t *testing.T) {
	saveEnv(t)
	store := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: io.Discard}
	// Key present, only one endpoint of the pair: the pair must be regenerated
	// and the key prompt skipped.
	if err := store.Save(map[string]string{
		KeyAPIKey:        "sk-x",
		KeyCompatBaseURL: "https://dashscope.aliyuncs.com/compatible-mode/v1",
	}); err != nil {
		t.Fatal(err)
	}

	p := &fakePrompter{t: t, yes: true}
	r := newTestResolver(t, store, p, nil)
	resolved := r.Resolve()

	if p.secretCalls != 0 {
		t.Errorf("key prompt calls = %d, want 0", p.secretCalls)
	}
	if p.yesNoCalls != 1 {
		t.Errorf("region prompt calls = %d, want 1", p.yesNoCalls)
	}
	want := EndpointsFor(RegionInternational)
	if resolved.CompatBaseURL != want.Compatible || resolved.NativeBaseURL != want.Native {
		t.Error("both endpoints should be regenerated from the new region answer")
	}
}

func TestResolve_KeyOnlyStoreAsksRegionOnly(t *testing.T) {
	saveEnv(t)
	store := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: io.Discard}
	if err := store.Save(map[string]string{KeyAPIKey: "sk-x"}); err != nil {
		t.Fatal(err)
	}

	p := &fakePrompter{t: t, yes: false}
	r := newTestResolver(t, store, p, nil)
	resolved := r.Resolve()

	if p.secretCalls != 0 {
		t.Errorf("key prompt calls = %d, want 0", p.secretCalls)
	}
	if p.yesNoCalls != 1 {
		t.Errorf("region prompt calls = %d, want 1", p.yesNoCalls)
	}
	if !resolved.Complete() {
		t.Error("expected complete resolution")
	}
}

func TestResolve_DeclinedKeyStaysIncomplete(t *testing.T) {
	saveEnv(t)
	store := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: io.Discard}

	var warn bytes.Buffer
	p := &fakePrompter{t: t, secret: "", yes: true}
	r := &Resolver{Store: store, Prompter: p, Out: io.Discard, Warn: &warn}
	resolved := r.Resolve()

	if resolved.Complete() {
		t.Error("resolution should be incomplete without a key")
	}
	if !strings.Contains(warn.String(), "incomplete") {
		t.Errorf("expected incomplete warning, got: %s", warn.String())
	}
	// Endpoints were still gathered and persisted for the next run.
	values := store.Load()
	if values[KeyCompatBaseURL] == "" || values[KeyNativeBaseURL] == "" {
		t.Error("endpoints should be persisted even when the key was declined")
	}
	if _, ok := values[KeyAPIKey]; ok {
		t.Error("declined key should stay absent from the store")
	}
	if got := os.Getenv(KeyAPIKey); got != "" {
		t.Errorf("incomplete config must not be published, env key = %q", got)
	}
}

func TestResolve_MalformedStoreRecovers(t *testing.T) {
	saveEnv(t)
	path := filepath.Join(t.TempDir(), "Key.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := &Store{Path: path, Warn: io.Discard}

	p := &fakePrompter{t: t, secret: "sk-recovered", yes: true}
	r := newTestResolver(t, store, p, nil)
	resolved := r.Resolve()

	if !resolved.Complete() {
		t.Error("expected recovery from malformed store")
	}
	if values := store.Load(); values[KeyAPIKey] != "sk-recovered" {
		t.Error("store was not rewritten after recovery")
	}
}

func TestResolve_WriteFailureNonFatal(t *testing.T) {
	saveEnv(t)
	// Parent "directory" is a regular file, so Save must fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := &Store{Path: filepath.Join(blocker, "Key.json"), Warn: io.Discard}

	var warn bytes.Buffer
	p := &fakePrompter{t: t, secret: "sk-x", yes: true}
	r := &Resolver{Store: store, Prompter: p, Out: io.Discard, Warn: &warn}
	resolved := r.Resolve()

	if !resolved.Complete() {
		t.Error("in-memory result should still be complete")
	}
	if !strings.Contains(warn.String(), "could not write") {
		t.Errorf("expected write warning, got: %s", warn.String())
	}
	if got := os.Getenv(KeyAPIKey); got != "sk-x" {
		t.Error("complete config should be published despite the write failure")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	saveEnv(t)
	store := &Store{Path: filepath.Join(t.TempDir(), "Key.json"), Warn: io.Discard}

	p := &fakePrompter{t: t, secret: "sk-x", yes: true}
	r := newTestResolver(t, store, p, nil)
	first := r.Resolve()

	// Second pass must not prompt and must yield identical values.
	r2 := newTestResolver(t, store, &fakePrompter{t: t, failOnAny: true}, nil)
	second := r2.Resolve()

	if first != second {
		t.Errorf("re-resolve mismatch:\n  first:  %+v\n  second: %+v", first, second)
	}
}

func TestEndpointsFor(t *testing.T) {
	intl := EndpointsFor(RegionInternational)
	if intl.Compatible != "https://dashscope-intl.aliyuncs.com/compatible-mode/v1" {
		t.Errorf("international compat = %q", intl.Compatible)
	}
	if intl.Native != "https://dashscope-intl.aliyuncs.com/api/v1" {
		t.Errorf("international native = %q", intl.Native)
	}

	cn := EndpointsFor(RegionMainland)
	if cn.Compatible != "https://dashscope.aliyuncs.com/compatible-mode/v1" {
		t.Errorf("mainland compat = %q", cn.Compatible)
	}
	if cn.Native != "https://dashscope.aliyuncs.com/api/v1" {
		t.Errorf("mainland native = %q", cn.Native)
	}
}

func TestSummarize(t *testing.T) {
	saveEnv(t)
	os.Setenv(KeyAPIKey, "abcdefghij")
	os.Setenv(KeyCompatBaseURL, "https://dashscope-intl.aliyuncs.com/compatible-mode/v1")
	os.Setenv(KeyNativeBaseURL, "https://dashscope-intl.aliyuncs.com/api/v1")

	s := Summarize()
	if s.MaskedKey != "abcd...ghij" {
		t.Errorf("MaskedKey = %q", s.MaskedKey)
	}
	if s.Environment != "International" {
		t.Errorf("Environment = %q", s.Environment)
	}
	if s.CompatBaseURL != "https://dashscope-intl.aliyuncs.com/compatible-mode/v1" {
		t.Errorf("CompatBaseURL = %q", s.CompatBaseURL)
	}
}

func TestSummarize_Unset(t *testing.T) {
	saveEnv(t)
	s := Summarize()
	if s.MaskedKey != "Not Set" {
		t.Errorf("MaskedKey = %q, want Not Set", s.MaskedKey)
	}
	if s.Environment != "Unknown" {
		t.Errorf("Environment = %q, want Unknown", s.Environment)
	}
	if s.CompatBaseURL != "Not Set" || s.NativeBaseURL != "Not Set" {
		t.Errorf("endpoints = (%q, %q), want Not Set", s.CompatBaseURL, s.NativeBaseURL)
	}
}
