package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads file whenever it changes and streams the result until ctx
// is cancelled. Unreadable intermediate states (editors often truncate
// before writing) are reported on stderr and skipped.
func Watch(ctx context.Context, file string) (<-chan *Config, error) {
	if file == "" {
		return nil, errors.New("config: no config file to watch")
	}
	file = filepath.Clean(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	// Watch the directory so atomic renames over the file are seen.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", file, err)
	}

	updates := make(chan *Config, 1)

	go func() {
		defer close(updates)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "config: watcher close: %v\n", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != file {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(file)
				if err != nil {
					fmt.Fprintf(os.Stderr, "config: reload %s: %v\n", file, err)
					continue
				}
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "config: watch error: %v\n", err)
			}
		}
	}()

	return updates, nil
}
