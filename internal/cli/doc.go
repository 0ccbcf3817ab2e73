// Package cli wires together the Cobra command tree for the scopekey binary.
//
// It defines the root command and all subcommands (resolve, summary, config,
// eval, embed, cache, version), drives the configuration resolver and the
// evaluation scorer, and returns deterministic exit codes so scripted callers
// can detect an incomplete configuration.
package cli
