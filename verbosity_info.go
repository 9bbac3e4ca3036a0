//go:build serlog_info && !serlog_warning && !serlog_error && !serlog_fatal && !serlog_none

package serlog

const Verbosity = INFO
