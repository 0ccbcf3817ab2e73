// Package mask renders sensitive configuration values for display.
//
// API keys are never printed in full: keys longer than eight characters show
// the first and last four characters joined by an ellipsis, shorter keys show
// a fixed "Valid" placeholder, and missing keys show "Not Set".
//
// The package also infers a human-readable deployment name (International,
// Mainland China, Unknown) from the OpenAI-compatible base URL. This is a
// display heuristic only and is never used to drive endpoint selection.
package mask
