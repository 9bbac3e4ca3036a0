//go:build serlog_error && !serlog_fatal && !serlog_none

package serlog

const Verbosity = ERROR
