// Package serlog is a logging facility whose verbosity is fixed at build
// time. Call sites below the build's verbosity threshold are eliminated by
// the compiler: the threshold is a Level constant selected by build tags,
// every entry point gates on a constant comparison, and after
// constant folding and inlining the disabled call along with its format
// string literal is absent from the binary.
//
// The threshold is selected with one of the following build tags; without a
// tag every level is enabled:
//
//	serlog_none     NONE    logging compiled out entirely
//	serlog_fatal    FATAL
//	serlog_error    ERROR
//	serlog_warning  WARNING
//	serlog_info     INFO
//	(none)          DEBUG   default
//
// When several tags are set the least verbose one wins.
//
// The generic entry points Logf and Modf take the severity as a type
// parameter, so a call site cannot supply a severity computed at runtime;
// such call sites would defeat dead-code elimination and are unrepresentable
// by construction.
//
// The per-severity functions fold at every threshold. Logf folds fully only
// under serlog_none; at intermediate thresholds a disabled generic call is
// gated at run time and its format string stays in the binary. Modf call
// sites are always live, since module overrides outrank the build threshold.
//
// Per-module thresholds are expressed as ModuleSpec implementations,
// normally generated from a build config file by cmd/serlogen.
//
// Output goes to standard output as
//
//	[<file name, 30 columns><line, 4 columns>] <message>\n
//
// The emit path never fails, never blocks and holds no locks; callers that
// log from several goroutines must serialize access to the output sink
// themselves.
package serlog
