package mask

import "strings"

const (
	placeholderPresent = "Valid"
	placeholderAbsent  = "Not Set"
)

// Key masks an API key for display. The full key never appears in output.
func Key(key string) string {
	if key == "" {
		return placeholderAbsent
	}
	if len(key) > 8 {
		return key[:4] + "..." + key[len(key)-4:]
	}
	// Too short to show a head/tail excerpt without leaking most of it.
	return placeholderPresent
}

// Environment infers a display name for the deployment region from the
// OpenAI-compatible base URL.
func Environment(compatBaseURL string) string {
	switch {
	case strings.Contains(compatBaseURL, "intl"):
		return "International"
	case strings.Contains(compatBaseURL, "aliyuncs.com"):
		return "Mainland China"
	default:
		return "Unknown"
	}
}
