package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long to wait after the last write before reloading.
const reloadDebounce = 500 * time.Millisecond

// Reloader watches the credentials file and swaps the table on change.
type Reloader struct {
	watcher *fsnotify.Watcher
	server  *Server
	logger  *slog.Logger
	path    string
}

// NewReloader creates a file watcher for the server's credentials file.
func NewReloader(server *Server, logger *slog.Logger) (*Reloader, error) {
	path := server.cfg.CredentialsPath
	if path == "" {
		return nil, fmt.Errorf("no credentials file configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("credentials file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", path, err)
	}

	return &Reloader{
		watcher: watcher,
		server:  server,
		logger:  logger,
		path:    path,
	}, nil
}

// Run watches for file changes and reloads credentials. Blocks until ctx is cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()

	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(reloadDebounce, r.reload)
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (r *Reloader) reload() {
	if err := r.server.ReloadCredentials(); err != nil {
		r.logger.Error("hot-reload failed", "path", r.path, "error", err)
		return
	}
	r.logger.Info("hot-reload: credentials reloaded", "path", r.path, "users", r.server.registry.Len())
}
