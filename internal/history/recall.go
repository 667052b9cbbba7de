// Package history holds the two append-only records of a console session:
// the recall buffer of submitted lines browsed with the arrow keys, and the
// store of rendered output entries.
package history

import "sync"

// DefaultRecallCapacity is the number of submitted lines kept for arrow-key recall.
const DefaultRecallCapacity = 50

// Recall is a bounded list of previously submitted lines with a browsing cursor.
// The cursor is -1 while the user is not browsing; otherwise it indexes the line
// currently shown in the input field. Browsing never changes the stored lines.
type Recall struct {
	mu       sync.Mutex
	lines    []string
	capacity int
	cursor   int
}

// NewRecall creates an empty recall buffer. A non-positive capacity selects
// DefaultRecallCapacity.
func NewRecall(capacity int) *Recall {
	if capacity <= 0 {
		capacity = DefaultRecallCapacity
	}
	return &Recall{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
		cursor:   -1,
	}
}

// Push records a submitted line and ends browsing.
// A line identical to the most recent one is not stored again; the oldest line is
// dropped once the buffer is full.
func (r *Recall) Push(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor = -1
	if line == "" {
		return
	}
	if n := len(r.lines); n > 0 && r.lines[n-1] == line {
		return
	}

	r.lines = append(r.lines, line)
	if over := len(r.lines) - r.capacity; over > 0 {
		r.lines = append(r.lines[:0:0], r.lines[over:]...)
	}
}

// Older moves the cursor one step toward the oldest line and returns the line
// the input field should now show. It stays on the oldest line once reached.
// The second result is false when the buffer is empty.
func (r *Recall) Older() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) == 0 {
		return "", false
	}

	switch {
	case r.cursor == -1:
		r.cursor = len(r.lines) - 1
	case r.cursor > 0:
		r.cursor--
	}
	return r.lines[r.cursor], true
}

// Newer moves the cursor one step toward the newest line and returns the line the
// input field should now show. Stepping past the newest line ends browsing and
// returns "" so the input is cleared. The second result is false when the user
// was not browsing, in which case the input should be left alone.
func (r *Recall) Newer() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cursor == -1 {
		return "", false
	}

	if r.cursor < len(r.lines)-1 {
		r.cursor++
		return r.lines[r.cursor], true
	}

	r.cursor = -1
	return "", true
}

// Reset ends browsing without changing the stored lines.
func (r *Recall) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = -1
}

// Cursor returns the browsing position, -1 when not browsing.
func (r *Recall) Cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// Entries returns a copy of the stored lines, oldest first.
func (r *Recall) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of stored lines.
func (r *Recall) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// Capacity returns the maximum number of stored lines.
func (r *Recall) Capacity() int {
	return r.capacity
}
