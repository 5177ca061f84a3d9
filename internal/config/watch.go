package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it changes and passes the
// result to fn. It blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are still picked up.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fn(Load(path))
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			fn(nil, err)
		}
	}
}
