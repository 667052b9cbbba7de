// Package testutils provides deterministic generators for termfolio testing.
// In test mode history IDs and timestamps are predictable so batch transcripts can be
// compared against golden output; in production they come from uuid and the wall clock.
package testutils

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// Thread-safe counter for deterministic ID generation
	idCounter uint64
	idMutex   sync.Mutex

	// Thread-safe counter for deterministic timestamp generation
	timeCounter int64
	timeMutex   sync.Mutex
)

// BaseTime is the first deterministic timestamp minus one second.
var BaseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// GenerateUUID generates a UUID that is deterministic in test mode but random in production.
// In test mode, returns UUIDs in format: 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, etc.
func GenerateUUID(testMode bool) string {
	if testMode {
		return getDeterministicUUID()
	}
	return uuid.New().String()
}

// GetCurrentTime returns the current time, deterministic in test mode but real in production.
// In test mode, returns incrementing time starting from 2025-01-01T00:00:01Z.
func GetCurrentTime(testMode bool) time.Time {
	if testMode {
		return getDeterministicTime()
	}
	return time.Now()
}

// IDGenerator returns a generator bound to the given mode, suitable for history stores.
func IDGenerator(testMode bool) func() string {
	return func() string { return GenerateUUID(testMode) }
}

// Clock returns a time source bound to the given mode.
func Clock(testMode bool) func() time.Time {
	return func() time.Time { return GetCurrentTime(testMode) }
}

// getDeterministicUUID keeps the UUID v4 layout so consumers that validate the format still work.
func getDeterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
}

// getDeterministicTime returns BaseTime plus one second per call.
func getDeterministicTime() time.Time {
	timeMutex.Lock()
	defer timeMutex.Unlock()

	timeCounter++
	return BaseTime.Add(time.Duration(timeCounter) * time.Second)
}

// ResetTestCounters resets the deterministic counters for testing.
// This should only be called from test code to ensure consistent test runs.
func ResetTestCounters() {
	idMutex.Lock()
	timeMutex.Lock()
	defer idMutex.Unlock()
	defer timeMutex.Unlock()

	idCounter = 0
	timeCounter = 0
}
