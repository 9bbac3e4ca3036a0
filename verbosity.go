//go:build !serlog_info && !serlog_warning && !serlog_error && !serlog_fatal && !serlog_none

package serlog

// Verbosity is the build-wide threshold: a statement at severity S is
// compiled in iff S <= Verbosity. Without a serlog_* build tag everything
// is enabled.
const Verbosity = DEBUG
