// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before invalidating. Editors often save in several steps.
const DefaultDebounce = 100 * time.Millisecond

// SourceWatcher invalidates routes whenever files under a source directory
// change, so lazily loaded views pick up edited templates.
type SourceWatcher struct {
	dir         string
	routes      []string
	invalidator Invalidator
	debounce    time.Duration
	logger      *logger.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewSourceWatcher watches dir recursively and invalidates routes on change.
func NewSourceWatcher(dir string, invalidator Invalidator, logger *logger.Logger, routes ...string) *SourceWatcher {
	return &SourceWatcher{
		dir:         dir,
		routes:      routes,
		invalidator: invalidator,
		debounce:    DefaultDebounce,
		logger:      logger.WithComponent("watcher"),
		done:        make(chan struct{}),
	}
}

// Run implements [Worker]. Start errors are logged.
func (s *SourceWatcher) Run(ctx context.Context) {
	if err := s.Start(ctx); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("failed to start source watcher")
	}
}

// Start begins watching and returns once the directory tree is registered.
// Watching stops when ctx is cancelled; Done is closed afterwards.
func (s *SourceWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err = s.addTree(watcher, s.dir); err != nil {
		_ = watcher.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	s.logger.Info().Str("dir", s.dir).Strs("routes", s.routes).Msg("watching sources")

	go s.loop(ctx, watcher)
	return nil
}

// Done is closed when the watcher has stopped.
func (s *SourceWatcher) Done() <-chan struct{} {
	return s.done
}

func (s *SourceWatcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err = watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (s *SourceWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
		close(s.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Remove and Rename show up in atomic saves
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err = s.addTree(watcher, event.Name); err != nil {
						s.logger.Warn().Err(err).Msg("failed to watch new directory")
					}
				}
			}

			s.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("source changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(s.debounce, s.invalidate)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (s *SourceWatcher) invalidate() {
	for _, route := range s.routes {
		if err := s.invalidator.Invalidate(route); err != nil {
			s.logger.Error().Err(err).Str("route", route).Msg("failed to invalidate route")
			continue
		}
		s.logger.Info().Str("route", route).Msg("route reloaded")
	}
}
