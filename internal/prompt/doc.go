// Package prompt implements the interactive console surface: a no-echo secret
// prompt for the API key and a yes/no question for region selection.
//
// The yes/no prompt accepts y, yes, n, and no (case-insensitive, whitespace
// trimmed) and re-asks on anything else. The retry loop is intentionally
// unbounded; it only terminates early if the input stream ends, so piped or
// scripted runs fall through instead of spinning.
//
// Secret input uses terminal raw mode when stdin is a terminal and a plain
// line read otherwise, which keeps the prompts testable with an in-memory
// reader.
package prompt
