//go:build serlog_fatal && !serlog_none

package serlog

const Verbosity = FATAL
