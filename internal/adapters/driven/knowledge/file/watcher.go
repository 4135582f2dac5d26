package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/logger"
)

// debounceInterval coalesces the event bursts editors emit when saving.
const debounceInterval = 200 * time.Millisecond

// Watcher reloads the knowledge file when it changes on disk and hands
// each successfully parsed knowledge base to a callback. A reload that
// fails to parse is logged and dropped; the previous knowledge base
// stays in effect.
type Watcher struct {
	source *Source
	fsw    *fsnotify.Watcher
	apply  func(*domain.KnowledgeBase)
	done   chan struct{}
}

// Watch starts watching the source's file. The containing directory is
// watched rather than the file itself so that editors which save via
// rename keep triggering reloads. The watcher stops when ctx is
// cancelled or Close is called.
func Watch(ctx context.Context, source *Source, apply func(*domain.KnowledgeBase)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(source.Path())
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		source: source,
		fsw:    fsw,
		apply:  apply,
		done:   make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	target := filepath.Clean(w.source.Path())
	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceInterval)
			} else {
				debounce.Reset(debounceInterval)
			}
			pending = debounce.C
		case <-pending:
			pending = nil
			w.reload(ctx)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("knowledge watcher: %v", err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	kb, err := w.source.Load(ctx)
	if err != nil {
		logger.Warn("knowledge reload failed, keeping previous: %v", err)
		return
	}
	logger.Info("knowledge base reloaded: %d entries", kb.Len())
	w.apply(kb)
}
