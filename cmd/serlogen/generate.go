package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strings"

	assert "github.com/arl/assertgo"

	"github.com/okvist/serlog"
	"github.com/okvist/serlog/internal/container"
)

// verbosityTag returns the build tag selecting the given threshold. DEBUG is
// the default build and needs no tag.
func verbosityTag(level serlog.Level) string {
	switch level {
	case serlog.NONE:
		return "serlog_none"
	case serlog.FATAL:
		return "serlog_fatal"
	case serlog.ERROR:
		return "serlog_error"
	case serlog.WARNING:
		return "serlog_warning"
	case serlog.INFO:
		return "serlog_info"
	default:
		return ""
	}
}

// Generate renders the module override types for cfg as formatted Go source.
func Generate(cfg *Config) ([]byte, error) {
	verbosity, err := serlog.ParseLevel(cfg.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("bad Verbosity: %w", err)
	}
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", cfg.Package)
	}

	modules := container.NewOrderedMap[string, serlog.Level]()
	for name, levelStr := range cfg.Modules {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return nil, fmt.Errorf("module name %q is not an exported Go identifier", name)
		}
		level, err := serlog.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("bad level for module %s: %w", name, err)
		}
		modules.Add(name, level)
	}

	sb := strings.Builder{}
	sb.WriteString("// Code generated by serlogen. DO NOT EDIT.\n\n")
	if tag := verbosityTag(verbosity); len(tag) != 0 {
		fmt.Fprintf(&sb, "// Build with: go build -tags %s\n", tag)
	} else {
		sb.WriteString("// Default build: all levels enabled, no tag required.\n")
	}
	fmt.Fprintf(&sb, "package %s\n\n", cfg.Package)
	sb.WriteString("import \"github.com/okvist/serlog\"\n\n")

	modules.ScanKV(func(name string, level serlog.Level) {
		fmt.Fprintf(&sb, "type %s struct{}\n\n", name)
		fmt.Fprintf(&sb, "func (%s) Threshold() serlog.Level { return serlog.%s }\n\n", name, level)
	})

	out, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}

	assert.True(bytes.HasPrefix(out, []byte("// Code generated")))
	return out, nil
}

// WriteGenerated renders cfg and writes the result to outPath.
func WriteGenerated(cfg *Config, outPath string) error {
	out, err := Generate(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
