// Scopekey is a CLI that resolves DashScope credentials and region endpoints
// and scores retrieval-augmented answers against their ground truth.
//
// It merges a persisted Key.json store with interactive prompts (hidden key
// input, a yes/no region question), publishes the result into the process
// environment, and exposes DashScope's OpenAI-compatible embeddings and chat
// models for evaluation.
//
// Usage:
//
//	scopekey resolve                  # fill gaps interactively and publish
//	scopekey summary                  # show masked configuration
//	scopekey config show              # inspect the store (key masked)
//	scopekey eval -f sample.json      # score a RAG answer
//	scopekey embed "some text"        # embedding connectivity check
//	scopekey cache show               # embedding cache statistics
package main
