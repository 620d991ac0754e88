package lock

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testShow  = uint64(1)
	userAlice = uint64(10)
	userBob   = uint64(20)
)

func newTestProvider() *SeatLockProvider {
	return NewSeatLockProvider(time.Minute, 10*time.Millisecond)
}

func TestLockSeatsAndValidate(t *testing.T) {
	p := newTestProvider()

	require.NoError(t, p.LockSeats(testShow, []uint64{1, 2, 3}, userAlice, nil))

	assert.True(t, p.ValidateLock(testShow, 1, userAlice))
	assert.True(t, p.ValidateLock(testShow, 3, userAlice))
	assert.False(t, p.ValidateLock(testShow, 1, userBob), "other users hold nothing")
	assert.False(t, p.ValidateLock(testShow, 4, userAlice), "unlocked seat")
	assert.False(t, p.ValidateLock(99, 1, userAlice), "unknown show")

	assert.ElementsMatch(t, []uint64{1, 2, 3}, p.LockedSeats(testShow))
}

func TestLockSeatsConflict(t *testing.T) {
	p := newTestProvider()

	require.NoError(t, p.LockSeats(testShow, []uint64{1, 2}, userAlice, nil))

	err := p.LockSeats(testShow, []uint64{3, 2, 4}, userBob, nil)
	require.Error(t, err)
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(2), conflict.SeatID)

	// All-or-nothing: the non-conflicting seats of the failed batch
	// must not have been locked.
	assert.False(t, p.ValidateLock(testShow, 3, userBob))
	assert.False(t, p.ValidateLock(testShow, 4, userBob))
	assert.ElementsMatch(t, []uint64{1, 2}, p.LockedSeats(testShow))
}

func TestLockSeatsGuardRejects(t *testing.T) {
	p := newTestProvider()

	guard := func(seatID uint64) bool { return seatID == 7 }
	err := p.LockSeats(testShow, []uint64{5, 6, 7}, userAlice, guard)
	require.Error(t, err)
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(7), conflict.SeatID)
	assert.Empty(t, p.LockedSeats(testShow))
}

func TestLockSeatsSameShowDifferentSeats(t *testing.T) {
	p := newTestProvider()

	require.NoError(t, p.LockSeats(testShow, []uint64{1, 2}, userAlice, nil))
	require.NoError(t, p.LockSeats(testShow, []uint64{3, 4}, userBob, nil))
	assert.ElementsMatch(t, []uint64{1, 2, 3, 4}, p.LockedSeats(testShow))
}

func TestLockSeatsIndependentShows(t *testing.T) {
	p := newTestProvider()

	require.NoError(t, p.LockSeats(1, []uint64{1}, userAlice, nil))
	require.NoError(t, p.LockSeats(2, []uint64{1}, userBob, nil), "same seat id in another show is a different seat")
}

func TestUnlockSeatsOwnershipScoped(t *testing.T) {
	p := newTestProvider()

	require.NoError(t, p.LockSeats(testShow, []uint64{1, 2}, userAlice, nil))

	p.UnlockSeats(testShow, []uint64{1, 2}, userBob)
	assert.True(t, p.ValidateLock(testShow, 1, userAlice), "another user cannot release the lock")

	p.UnlockSeats(testShow, []uint64{1}, userAlice)
	assert.False(t, p.ValidateLock(testShow, 1, userAlice))
	assert.True(t, p.ValidateLock(testShow, 2, userAlice))

	// Idempotent: releasing again or releasing unknown seats is a no-op.
	p.UnlockSeats(testShow, []uint64{1, 99}, userAlice)
	p.UnlockSeats(42, []uint64{1}, userAlice)
}

func TestExpiredLockIsInvisibleAndReclaimable(t *testing.T) {
	p := NewSeatLockProvider(20*time.Millisecond, time.Hour) // sweeper never fires
	require.NoError(t, p.LockSeats(testShow, []uint64{1}, userAlice, nil))

	time.Sleep(40 * time.Millisecond)

	assert.False(t, p.ValidateLock(testShow, 1, userAlice), "expired lock validates false")
	assert.Empty(t, p.LockedSeats(testShow), "expired lock is not listed")

	// Another user can take the seat even before the sweeper runs.
	require.NoError(t, p.LockSeats(testShow, []uint64{1}, userBob, nil))
	assert.True(t, p.ValidateLock(testShow, 1, userBob))
}

func TestSweeperEvictsExpiredLocks(t *testing.T) {
	p := NewSeatLockProvider(20*time.Millisecond, 10*time.Millisecond)
	p.StartSweeper()
	defer p.StopSweeper()

	require.NoError(t, p.LockSeats(testShow, []uint64{1, 2}, userAlice, nil))

	assert.Eventually(t, func() bool {
		m := p.lookup(testShow)
		m.mu.RLock()
		defer m.mu.RUnlock()
		return len(m.locks) == 0
	}, time.Second, 10*time.Millisecond, "sweeper should remove expired locks from the table")
}

func TestStopSweeperWithoutStart(t *testing.T) {
	p := newTestProvider()
	p.StopSweeper() // must not panic
}

func TestConcurrentLockSeatsSingleWinner(t *testing.T) {
	p := newTestProvider()
	seats := []uint64{1, 2, 3}

	const workers = 32
	var wg sync.WaitGroup
	var winsMu sync.Mutex
	wins := make([]uint64, 0, 1)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		uid := uint64(100 + i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if err := p.LockSeats(testShow, seats, uid, nil); err == nil {
				winsMu.Lock()
				wins = append(wins, uid)
				winsMu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, wins, 1, "exactly one worker may acquire the batch")
	for _, sid := range seats {
		assert.True(t, p.ValidateLock(testShow, sid, wins[0]))
	}
}

func TestConcurrentManagerCreation(t *testing.T) {
	p := newTestProvider()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		sid := uint64(i + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, p.LockSeats(testShow, []uint64{sid}, sid, nil))
		}()
	}
	wg.Wait()

	assert.Len(t, p.LockedSeats(testShow), workers)
}

func TestLockedSeatsSnapshotIsIndependent(t *testing.T) {
	p := newTestProvider()
	require.NoError(t, p.LockSeats(testShow, []uint64{1, 2}, userAlice, nil))

	snap := p.LockedSeats(testShow)
	p.UnlockSeats(testShow, []uint64{1, 2}, userAlice)

	assert.Len(t, snap, 2, "snapshot survives later mutation")
	assert.Empty(t, p.LockedSeats(testShow))
}
