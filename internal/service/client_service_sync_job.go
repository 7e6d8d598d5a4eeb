package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

// DefaultDebounceInterval is the quiet period the scheduler waits for after a
// local change before firing a sync.
const DefaultDebounceInterval = 15 * time.Second

// syncScheduler observes the local store's watermark and turns edit bursts
// into debounced sync cycles. The very first change it sees fires a sync
// immediately; every later change restarts the debounce timer, so only the
// trailing edge of a burst reaches the drive.
type syncScheduler struct {
	service  ClientSyncService
	cache    store.LocalStore
	logger   *logger.Logger
	debounce time.Duration

	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	timer       *time.Timer
	unsubscribe func()
	sawFirst    bool

	wg sync.WaitGroup
}

// NewSyncScheduler wires a scheduler around the sync service and the local
// store it watches. A zero debounce falls back to DefaultDebounceInterval.
func NewSyncScheduler(service ClientSyncService, cache store.LocalStore, debounce time.Duration, log *logger.Logger) SyncScheduler {
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}
	return &syncScheduler{
		service:  service,
		cache:    cache,
		logger:   log,
		debounce: debounce,
	}
}

// Start implements SyncScheduler.
func (s *syncScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.ctx != nil {
		s.mu.Unlock()
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.sawFirst = false
	s.unsubscribe = s.cache.OnWatermarkChange(func(int64) {
		s.NoteLocalChange()
	})
	done := s.ctx.Done()
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-done
		s.shutdown()
	}()

	s.logger.Debug().Dur("debounce", s.debounce).Msg("sync scheduler started")
}

// NoteLocalChange implements SyncScheduler.
func (s *syncScheduler) NoteLocalChange() {
	s.mu.Lock()
	if s.ctx == nil || s.ctx.Err() != nil {
		s.mu.Unlock()
		return
	}

	if !s.sawFirst {
		s.sawFirst = true
		s.mu.Unlock()
		s.fire()
		return
	}

	// Unsynced changes exist again; the engine should not report "synced"
	// while the timer is pending.
	s.service.NoteLocalChange()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
	s.mu.Unlock()
}

// Stop implements SyncScheduler. It cancels the debounce timer, detaches from
// the store and waits for an in-flight cycle to finish, so a sync can never
// fire against a store that has just been cleared.
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// fire launches one sync cycle off the caller's goroutine. Watermark
// callbacks run on the mutating goroutine, which must not block on network
// I/O.
func (s *syncScheduler) fire() {
	s.mu.Lock()
	ctx := s.ctx
	if ctx == nil || ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		err := s.service.PerformSync(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrSyncInProgress):
			// Another trigger won the race; its cycle covers our changes or
			// the watermark will advance again and reschedule.
		case errors.Is(err, ErrConflictsPending):
			s.logger.Warn().Msg("scheduled sync halted on conflicts")
		default:
			s.logger.Error().Err(err).Msg("scheduled sync failed")
		}
	}()
}

func (s *syncScheduler) shutdown() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.ctx = nil
	s.cancel = nil
	s.sawFirst = false
	s.mu.Unlock()

	s.logger.Debug().Msg("sync scheduler stopped")
}
