package serlog

// ModuleSpec names a logical module and carries its verbosity override.
// Implementations are empty struct types whose Threshold returns a constant;
// cmd/serlogen generates them from a build config file. A Threshold that
// computes its result at runtime still gates correctly, but the call site
// survives in the binary, so it defeats the point.
type ModuleSpec interface {
	Threshold() Level
}

// Global is the module unscoped calls belong to; its threshold mirrors the
// build-wide Verbosity.
type Global struct{}

func (Global) Threshold() Level { return Verbosity }
