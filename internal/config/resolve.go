package config

import (
	"fmt"
	"io"
	"os"
)

// Prompter is the console surface the resolver drives to fill gaps.
type Prompter interface {
	Secret(label string) (string, error)
	YesNo(question string) (bool, error)
}

// NativeConfigurator receives the credential and native-protocol endpoint
// once resolution completes. Callers without a native client use
// [NopConfigurator].
type NativeConfigurator interface {
	Configure(apiKey, nativeBaseURL string)
}

// NopConfigurator ignores the configuration hand-off.
type NopConfigurator struct{}

func (NopConfigurator) Configure(string, string) {}

// Resolved is the outcome of one resolution pass.
type Resolved struct {
	APIKey        string
	CompatBaseURL string
	NativeBaseURL string
}

// Complete reports whether all three values are present. Anything less is an
// intermediate state and must not be treated as usable.
func (r Resolved) Complete() bool {
	return r.APIKey != "" && r.CompatBaseURL != "" && r.NativeBaseURL != ""
}

// Resolver produces a fully-populated configuration with minimal user
// interruption, persisting anything newly gathered.
type Resolver struct {
	Store    *Store
	Prompter Prompter
	Native   NativeConfigurator
	Out      io.Writer // prompts/progress; defaults to stdout
	Warn     io.Writer // warnings; defaults to stderr
}

// Resolve loads the store, prompts for whatever is missing, persists changes,
// and publishes a complete configuration into the process environment. It
// never fails: corrupt stores, declined prompts, and write errors all degrade
// to warnings and a best-effort partial result.
func (r *Resolver) Resolve() Resolved {
	values := r.Store.Load()
	changed := false

	if values[KeyAPIKey] == "" {
		fmt.Fprintln(r.out(), "DashScope API key not found in config.")
		key, err := r.Prompter.Secret("Please enter your DashScope API key")
		if err != nil {
			fmt.Fprintf(r.warn(), "Warning: could not read API key: %v\n", err)
		} else if key != "" {
			values[KeyAPIKey] = key
			changed = true
		}
	}

	// A partial endpoint pair is never trusted: if either URL is missing the
	// region is asked again and both are regenerated from the one answer.
	if values[KeyCompatBaseURL] == "" || values[KeyNativeBaseURL] == "" {
		fmt.Fprintln(r.out(), "Complete environment setting not found in config.")
		intl, err := r.Prompter.YesNo("Are you using the Alibaba Cloud International site?")
		if err != nil {
			fmt.Fprintf(r.warn(), "Warning: could not read region choice: %v\n", err)
		} else {
			region := RegionMainland
			name := "Mainland China"
			if intl {
				region = RegionInternational
				name = "International"
			}
			fmt.Fprintf(r.out(), "-> Environment selected: Alibaba Cloud %s\n", name)
			ep := EndpointsFor(region)
			values[KeyCompatBaseURL] = ep.Compatible
			values[KeyNativeBaseURL] = ep.Native
			changed = true
		}
	}

	if changed {
		if err := r.Store.Save(values); err != nil {
			fmt.Fprintf(r.warn(), "Warning: could not write config file: %v\n", err)
		} else {
			fmt.Fprintf(r.out(), "-> Configuration saved to: %s\n", r.Store.Path)
		}
	}

	resolved := Resolved{
		APIKey:        values[KeyAPIKey],
		CompatBaseURL: values[KeyCompatBaseURL],
		NativeBaseURL: values[KeyNativeBaseURL],
	}

	if resolved.Complete() {
		os.Setenv(KeyAPIKey, resolved.APIKey)
		os.Setenv(KeyCompatBaseURL, resolved.CompatBaseURL)
		os.Setenv(KeyNativeBaseURL, resolved.NativeBaseURL)
		// The native client takes the native endpoint, not the compatible one.
		r.native().Configure(resolved.APIKey, resolved.NativeBaseURL)
	} else {
		fmt.Fprintln(r.warn(), "Warning: configuration is incomplete. Some features may not work correctly.")
	}

	return resolved
}

func (r *Resolver) native() NativeConfigurator {
	if r.Native != nil {
		return r.Native
	}
	return NopConfigurator{}
}

func (r *Resolver) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Resolver) warn() io.Writer {
	if r.Warn != nil {
		return r.Warn
	}
	return os.Stderr
}
