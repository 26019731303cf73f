// Package watch turns an inbox directory into a pipeline trigger: every
// image file dropped into it is handed to the pack builder once its writes
// settle.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/imaginarium/internal/imaging"
)

// settleDelay is how long a file must stay quiet before it is processed.
// Image files often arrive as a burst of partial writes.
const settleDelay = 400 * time.Millisecond

// Handler processes one settled image file.
type Handler func(path string) error

// Watch starts an fsnotify watcher on the inbox root and invokes handle for
// each image file after its write events settle, until ctx is cancelled.
// New directories created at runtime are added to the watch list; files
// already present at startup are processed immediately.
func Watch(ctx context.Context, root string, logger *slog.Logger, handle Handler) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watch: started", slog.String("root", root))

	// Backlog: images sitting in the inbox before the watcher came up.
	if err := handleExisting(root, logger, handle); err != nil {
		return err
	}

	pending := make(map[string]struct{})
	var settleTimer *time.Timer
	var settleCh <-chan time.Time

	schedule := func() {
		if settleTimer == nil {
			settleTimer = time.NewTimer(settleDelay)
			settleCh = settleTimer.C
		} else {
			settleTimer.Reset(settleDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if settleTimer != nil {
				settleTimer.Stop()
			}
			logger.Info("watch: stopped")
			return nil

		case <-settleCh:
			for p := range pending {
				delete(pending, p)
				if err := handle(p); err != nil {
					logger.Warn("watch: handle failed",
						slog.String("path", p),
						slog.String("error", err.Error()))
					continue
				}
				logger.Info("watch: pack built", slog.String("image", p))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watch: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					continue
				}
			}

			if !imaging.Supported(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				pending[ev.Name] = struct{}{}
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch: error", slog.String("error", watchErr.Error()))
		}
	}
}

// handleExisting processes image files already present under root.
func handleExisting(root string, logger *slog.Logger, handle Handler) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !imaging.Supported(path) {
			return err
		}
		if hErr := handle(path); hErr != nil {
			logger.Warn("watch: backlog handle failed",
				slog.String("path", path),
				slog.String("error", hErr.Error()))
		}
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
