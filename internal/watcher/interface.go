package watcher

import "context"

// Watcher monitors a directory for new subtitle sources.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called for each new file.
type EventHandler func(ctx context.Context, filePath string) error
