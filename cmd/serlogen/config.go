package main

import (
	"fmt"
	"os"

	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"

	"github.com/okvist/serlog"
)

// Config is the build config file, JSON with comments allowed.
type Config struct {
	Package   string            `koanf:"Package"`
	Verbosity string            `koanf:"Verbosity"`
	Modules   map[string]string `koanf:"Modules"`
}

func LoadConfig(filePath string) (*Config, error) {
	rawBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file(%v): %w", filePath, err)
	}
	return ParseConfig(rawBytes)
}

func ParseConfig(rawBytes []byte) (*Config, error) {
	jsonWithoutComments := stripjsoncomments.Strip(string(rawBytes))

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(jsonWithoutComments)), jsonparser.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Package) == 0 {
		cfg.Package = "main"
	}
	if len(cfg.Verbosity) == 0 {
		cfg.Verbosity = serlog.DEBUG.String()
	}
	if _, err := serlog.ParseLevel(cfg.Verbosity); err != nil {
		return nil, fmt.Errorf("bad Verbosity: %w", err)
	}
	for name, level := range cfg.Modules {
		if _, err := serlog.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("bad level for module %s: %w", name, err)
		}
	}
	return cfg, nil
}
