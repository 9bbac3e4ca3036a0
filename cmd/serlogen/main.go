// serlogen turns a build config file into serlog module override types.
//
// Usage, typically under go:generate:
//
//	serlogen -config serlog.jsonc -o serlog_modules.go
//
// With -watch it keeps running and regenerates on every config change.
package main

import (
	"flag"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/okvist/serlog"
)

var (
	configPath = flag.String("config", "serlog.jsonc", "path of the build config file")
	outPath    = flag.String("o", "serlog_modules.go", "path of the generated Go file")
	watch      = flag.Bool("watch", false, "regenerate whenever the config file changes")
	dump       = flag.Bool("print", false, "print the resolved config as JSON to stdout")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "serlogen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}

	if *dump {
		resolved, err := jsoniter.MarshalIndent(resolve(cfg), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resolved config: %w", err)
		}
		fmt.Println(string(resolved))
	}

	if err := WriteGenerated(cfg, *outPath); err != nil {
		return err
	}
	serlog.Debugf("generated %s from %s", *outPath, *configPath)

	if *watch {
		return watchConfig(*configPath, *outPath)
	}
	return nil
}

type resolvedConfig struct {
	Package   string            `json:"Package"`
	Verbosity string            `json:"Verbosity"`
	BuildTag  string            `json:"BuildTag,omitempty"`
	Modules   map[string]string `json:"Modules,omitempty"`
}

// resolve normalizes level spellings and adds the derived build tag.
func resolve(cfg *Config) *resolvedConfig {
	verbosity, _ := serlog.ParseLevel(cfg.Verbosity)
	out := &resolvedConfig{
		Package:   cfg.Package,
		Verbosity: verbosity.String(),
		BuildTag:  verbosityTag(verbosity),
	}
	if len(cfg.Modules) > 0 {
		out.Modules = make(map[string]string, len(cfg.Modules))
		for name, levelStr := range cfg.Modules {
			level, _ := serlog.ParseLevel(levelStr)
			out.Modules[name] = level.String()
		}
	}
	return out
}
