package lock

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Guard reports whether a seat is unavailable for a reason outside
// the lock table, such as an already confirmed booking.  A guard
// passed to LockSeats is evaluated inside the show's exclusive
// section, so the availability check and the lock acquisition form a
// single atomic step.  Guards must not call back into the provider.
type Guard func(seatID uint64) bool

// Provider is the seat reservation contract consumed by the booking
// layer.  All operations are keyed by show; a lock table entry for a
// show is created on demand.
type Provider interface {
	// LockSeats atomically acquires a time-bounded lock on every listed
	// seat for the user.  If any seat is already live-locked, or the
	// optional guard rejects it, no seat is locked and a *ConflictError
	// identifying the seat is returned.
	LockSeats(showID uint64, seatIDs []uint64, userID uint64, guard Guard) error
	// UnlockSeats releases the listed seats, skipping any seat not
	// currently locked by the user.  It is idempotent.
	UnlockSeats(showID uint64, seatIDs []uint64, userID uint64)
	// ValidateLock reports whether the user holds a live lock on the seat.
	ValidateLock(showID, seatID, userID uint64) bool
	// LockedSeats returns a snapshot of the seats with a live lock for
	// the show.  The returned slice is an independent copy.
	LockedSeats(showID uint64) []uint64
}

// showLockManager holds the lock table for a single show: the map of
// active seat locks and the reader/writer lock guarding it.  Batch
// acquisition, release and sweeping take the write lock; validation
// and listing take the read lock.  One manager is created lazily per
// show and lives for the rest of the process.
type showLockManager struct {
	mu    sync.RWMutex
	locks map[uint64]*model.SeatLock // seat ID -> active lock
}

// SeatLockProvider is the in-memory implementation of Provider.  It
// maintains one showLockManager per show and runs a background
// sweeper that evicts expired locks.  The lock TTL and sweep interval
// are fixed at construction for the process lifetime.
type SeatLockProvider struct {
	ttl           time.Duration
	sweepInterval time.Duration

	mu    sync.Mutex // guards creation of per-show managers
	shows map[uint64]*showLockManager

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSeatLockProvider builds a provider whose locks expire after ttl
// and whose sweeper runs every sweepInterval.  The sweep interval
// should be small relative to the TTL so abandoned seats are
// reclaimed promptly.
func NewSeatLockProvider(ttl, sweepInterval time.Duration) *SeatLockProvider {
	return &SeatLockProvider{
		ttl:           ttl,
		sweepInterval: sweepInterval,
		shows:         make(map[uint64]*showLockManager),
	}
}

// manager returns the lock manager for a show, creating it on first
// use.  The double-checked creation under the provider mutex
// guarantees exactly one manager per show even when callers race.
func (p *SeatLockProvider) manager(showID uint64) *showLockManager {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.shows[showID]
	if !ok {
		m = &showLockManager{locks: make(map[uint64]*model.SeatLock)}
		p.shows[showID] = m
	}
	return m
}

// lookup returns the manager for a show without creating one.
func (p *SeatLockProvider) lookup(showID uint64) *showLockManager {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shows[showID]
}

// LockSeats acquires a lock on every seat in seatIDs for userID, all
// or nothing.  The availability check and the lock writes happen
// under the show's write lock, so two concurrent batches can never
// both partially succeed.  Seats whose previous lock has expired are
// treated as free and overwritten.
func (p *SeatLockProvider) LockSeats(showID uint64, seatIDs []uint64, userID uint64, guard Guard) error {
	m := p.manager(showID)
	now := time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, sid := range seatIDs {
		if l, ok := m.locks[sid]; ok && !l.Expired(now) {
			return &ConflictError{SeatID: sid}
		}
		if guard != nil && guard(sid) {
			return &ConflictError{SeatID: sid}
		}
	}
	expiresAt := now.Add(p.ttl)
	for _, sid := range seatIDs {
		m.locks[sid] = &model.SeatLock{
			SeatID:    sid,
			ShowID:    showID,
			UserID:    userID,
			LockedAt:  now,
			ExpiresAt: expiresAt,
		}
	}
	return nil
}

// UnlockSeats removes the lock on each listed seat if, and only if,
// it is currently held by userID.  Seats locked by another user or
// not locked at all are skipped silently, which makes release
// idempotent and prevents one user from releasing another's locks.
func (p *SeatLockProvider) UnlockSeats(showID uint64, seatIDs []uint64, userID uint64) {
	m := p.lookup(showID)
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sid := range seatIDs {
		if l, ok := m.locks[sid]; ok && l.UserID == userID {
			delete(m.locks, sid)
		}
	}
}

// ValidateLock reports whether userID holds a live, non-expired lock
// on the seat.  It only takes the show's read lock and never mutates
// the table; expired locks simply validate false until the sweeper
// removes them.
func (p *SeatLockProvider) ValidateLock(showID, seatID, userID uint64) bool {
	m := p.lookup(showID)
	if m == nil {
		return false
	}
	now := time.Now().UTC()
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.locks[seatID]
	return ok && !l.Expired(now) && l.UserID == userID
}

// LockedSeats returns the IDs of all seats with a live lock for the
// show.  The result is a fresh slice so the caller's view cannot race
// with concurrent mutation of the table.
func (p *SeatLockProvider) LockedSeats(showID uint64) []uint64 {
	m := p.lookup(showID)
	if m == nil {
		return nil
	}
	now := time.Now().UTC()
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]uint64, 0, len(m.locks))
	for sid, l := range m.locks {
		if !l.Expired(now) {
			out = append(out, sid)
		}
	}
	return out
}

// StartSweeper launches the background goroutine that periodically
// evicts expired locks from every show's table.  It may be called at
// most once; StopSweeper cancels and joins the goroutine.
func (p *SeatLockProvider) StartSweeper() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.sweepLoop(ctx)
	}()
	log.Printf("seat lock sweeper started (interval=%s, ttl=%s)", p.sweepInterval, p.ttl)
}

// StopSweeper stops the background sweeper and waits for it to exit.
// It is safe to call when the sweeper was never started.
func (p *SeatLockProvider) StopSweeper() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.wg.Wait()
	log.Printf("seat lock sweeper stopped")
}

// sweepLoop runs until the context is cancelled, performing one sweep
// per tick.
func (p *SeatLockProvider) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(p.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweepExpired()
		}
	}
}

// sweepExpired evicts expired locks from every show's table.  Each
// show is swept independently under its own write lock so a sweep
// never races with a concurrent acquire or release on that show, and
// an anomaly in one show cannot halt sweeping for the others.
func (p *SeatLockProvider) sweepExpired() {
	p.mu.Lock()
	managers := make([]*showLockManager, 0, len(p.shows))
	for _, m := range p.shows {
		managers = append(managers, m)
	}
	p.mu.Unlock()

	now := time.Now().UTC()
	for _, m := range managers {
		p.sweepShow(m, now)
	}
}

// sweepShow removes the expired locks of a single show.  The recover
// guard keeps the sweeper loop alive if a sweep panics.
func (p *SeatLockProvider) sweepShow(m *showLockManager, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("seat lock sweeper: recovered from panic: %v", r)
		}
	}()
	m.mu.Lock()
	defer m.mu.Unlock()
	for sid, l := range m.locks {
		if l.Expired(now) {
			delete(m.locks, sid)
		}
	}
}
