// Package cache provides a file-based cache for embedding vectors.
//
// Entries are keyed by a SHA-256 hash of the embedding model name and the
// input text. Each entry stores the vector along with a creation timestamp
// and a TTL in seconds. Expired entries are skipped on read and counted
// during stats collection.
//
// The default cache directory is $XDG_CACHE_HOME/scopekey (or the
// OS-appropriate equivalent). A disabled cache is a cheap no-op, so callers
// can hold one unconditionally.
package cache
