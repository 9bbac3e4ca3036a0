package serlog

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
)

var output io.Writer = os.Stdout

// SetOutput redirects emitted lines, mainly for tests. A nil writer restores
// standard output. Not synchronized; see the package doc.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	output = w
}

// Logf logs a formatted message at the severity named by the type parameter:
//
//	serlog.Logf[serlog.Info]("Log test!")
//
// The severity comparison below goes through the generics dictionary and
// does not constant-fold, so the NONE check must come first: it folds, and
// a serlog_none build keeps no trace of the call. At intermediate
// thresholds a disabled generic call is gated at run time.
func Logf[S Severity](format string, args ...any) {
	if Verbosity == NONE {
		return
	}
	var s S
	if s.level() <= Verbosity {
		emit(format, args...)
	}
}

// Modf logs through a module-scoped threshold instead of the build-wide one:
//
//	serlog.Modf[SmartSwitch, serlog.Debug]("relay state %d", state)
//
// The module gate is independent of Verbosity, so a module override can keep
// a subsystem chatty in an otherwise quiet build; its call sites therefore
// stay in the binary even under serlog_none.
func Modf[M ModuleSpec, S Severity](format string, args ...any) {
	var m M
	var s S
	if s.level() <= m.Threshold() {
		emit(format, args...)
	}
}

// Fatalf logs at FATAL. It does not terminate the process.
func Fatalf(format string, args ...any) {
	if FATAL <= Verbosity {
		emit(format, args...)
	}
}

func Errorf(format string, args ...any) {
	if ERROR <= Verbosity {
		emit(format, args...)
	}
}

func Warningf(format string, args ...any) {
	if WARNING <= Verbosity {
		emit(format, args...)
	}
}

func Infof(format string, args ...any) {
	if INFO <= Verbosity {
		emit(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if DEBUG <= Verbosity {
		emit(format, args...)
	}
}

// emit writes one line tagged with the call site two frames up.
func emit(format string, args ...any) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	}

	sb := strings.Builder{}
	_, _ = fmt.Fprintf(&sb, "[%-30.30s%-4d] ", path.Base(file), line)
	_, _ = fmt.Fprintf(&sb, format, args...)
	sb.WriteByte('\n')
	_, _ = io.WriteString(output, sb.String())
}
