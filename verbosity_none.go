//go:build serlog_none

package serlog

// Logging is compiled out entirely; every entry point folds to a no-op.
const Verbosity = NONE
