package alloc

import "unsafe"

// Arena is a bump allocator for short-lived byte strings, sized for the
// small flattened-path keys produced during a single flatten pass (§3.4,
// §4.10). It is not safe for concurrent use; callers give one arena per
// goroutine/task.
type Arena struct {
	buf []byte
}

// NewArena preallocates a backing buffer of the given capacity.
func NewArena(capacity int) *Arena {
	return &Arena{buf: make([]byte, 0, capacity)}
}

// AllocString copies s's bytes into the arena and returns a string
// aliasing that copy via unsafe.String, so the caller's one copy lands
// in arena-owned memory instead of a fresh per-key heap allocation. If
// the arena lacks room the string is returned as-is (heap fallback,
// §4.10). The returned string is valid only until the arena's next
// Reset.
func (a *Arena) AllocString(s string) string {
	if len(s) == 0 {
		return ""
	}
	if cap(a.buf)-len(a.buf) < len(s) {
		return s
	}
	start := len(a.buf)
	a.buf = append(a.buf, s...)
	return unsafe.String(&a.buf[start], len(s))
}

// Reset releases the arena's contents wholesale, as happens when a
// flatten call returns (§4.10).
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
}

// Len reports how many bytes are currently live in the arena.
func (a *Arena) Len() int { return len(a.buf) }
