package application

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"noted/internal/domain"
	"noted/internal/ports"
)

// snapshot is the full state handed to the writer after a commit
type snapshot struct {
	notes    []domain.Note
	folders  []domain.Folder
	settings map[string]string
}

// writer mirrors snapshots to the gateway on a single goroutine. A pending
// snapshot is replaced by a newer one, so the last commit always wins.
type writer struct {
	gateway ports.Gateway
	log     zerolog.Logger

	mu      sync.Mutex
	idle    *sync.Cond
	pending *snapshot
	busy    bool
	closed  bool

	kick chan struct{}
	done chan struct{}
}

func newWriter(gateway ports.Gateway, log zerolog.Logger) *writer {
	w := &writer{
		gateway: gateway,
		log:     log,
		kick:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.idle = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// schedule queues a snapshot without waiting for it to be written
func (w *writer) schedule(s *snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.log.Warn().Msg("write scheduled after close, dropped")
		return
	}
	if s.settings == nil && w.pending != nil {
		s.settings = w.pending.settings
	}
	w.pending = s

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)

	for range w.kick {
		for {
			w.mu.Lock()
			s := w.pending
			w.pending = nil
			if s == nil {
				w.busy = false
				w.idle.Broadcast()
				w.mu.Unlock()
				break
			}
			w.busy = true
			w.mu.Unlock()

			w.write(s)
		}
	}
}

func (w *writer) write(s *snapshot) {
	ctx := context.Background()

	if err := w.gateway.ReplaceNotes(ctx, s.notes); err != nil {
		w.log.Error().Err(err).Int("count", len(s.notes)).Msg("failed to persist notes")
	}
	if err := w.gateway.ReplaceFolders(ctx, s.folders); err != nil {
		w.log.Error().Err(err).Int("count", len(s.folders)).Msg("failed to persist folders")
	}
	for key, value := range s.settings {
		if err := w.gateway.SetSetting(ctx, key, value); err != nil {
			w.log.Error().Err(err).Str("key", key).Msg("failed to persist setting")
		}
	}

	w.log.Debug().
		Int("notes", len(s.notes)).
		Int("folders", len(s.folders)).
		Msg("persisted snapshot")
}

// flush blocks until every scheduled snapshot has been written
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending != nil || w.busy {
		w.idle.Wait()
	}
}

// close drains the queue and stops the goroutine
func (w *writer) close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	close(w.kick)
	w.mu.Unlock()

	<-w.done
}
