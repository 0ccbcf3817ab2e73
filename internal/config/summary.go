package config

import (
	"os"

	"github.com/dshills/scopekey/internal/mask"
)

// Summary describes the published configuration with the key masked.
type Summary struct {
	MaskedKey     string
	Environment   string
	CompatBaseURL string
	NativeBaseURL string
}

// Summarize reads the ambient environment and returns a display-safe summary.
func Summarize() Summary {
	compat := os.Getenv(KeyCompatBaseURL)
	return Summary{
		MaskedKey:     mask.Key(os.Getenv(KeyAPIKey)),
		Environment:   mask.Environment(compat),
		CompatBaseURL: orNotSet(compat),
		NativeBaseURL: orNotSet(os.Getenv(KeyNativeBaseURL)),
	}
}

func orNotSet(v string) string {
	if v == "" {
		return "Not Set"
	}
	return v
}
