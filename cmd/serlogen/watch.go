package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/okvist/serlog"
	"github.com/okvist/serlog/internal/task"
)

// watchConfig blocks, regenerating outPath whenever the config file changes.
// The watch is on the parent directory so editors that replace the file do
// not break it.
func watchConfig(configPath, outPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %v: %w", dir, err)
	}

	serlog.Infof("watching %s", configPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !pathEquals(event.Name, configPath) {
				continue
			}
			if event.Has(fsnotify.Write | fsnotify.Create) {
				serlog.Debugf("config changed: %v", event.Name)
				task.Execute(func() { regenerate(configPath, outPath) })
			} else if event.Has(fsnotify.Rename | fsnotify.Remove) {
				serlog.Warningf("config file removed: %v", event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			serlog.Errorf("watch error: %v", err)
		}
	}
}

func regenerate(configPath, outPath string) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		serlog.Errorf("reload config: %v", err)
		return
	}
	if err := WriteGenerated(cfg, outPath); err != nil {
		serlog.Errorf("regenerate: %v", err)
		return
	}
	serlog.Infof("regenerated %s", outPath)
}

func pathEquals(path1, path2 string) bool {
	p1, err1 := filepath.Abs(path1)
	p2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return filepath.Clean(path1) == filepath.Clean(path2)
	}
	return p1 == p2
}
