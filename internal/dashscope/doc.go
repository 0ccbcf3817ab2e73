// Package dashscope wraps DashScope's OpenAI-compatible API for embeddings
// and chat completions.
//
// Clients are built from an explicit base URL and API key, or from the
// environment published by the configuration resolver (DASHSCOPE_API_KEY and
// DASHSCOPE_API_BASE). An optional file cache short-circuits repeat embedding
// requests.
//
// All calls share a retry helper with exponential back-off for rate limits
// and server errors; authentication failures are never retried. The base URL
// is injectable so tests can redirect calls to local httptest servers.
//
// The package also holds the process-wide [Configurator] for the native
// DashScope protocol, filled in by the resolver once a complete configuration
// exists.
package dashscope
