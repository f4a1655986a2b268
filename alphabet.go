package bestgram

import (
	"errors"
	"math"
	"sync"
)

// ExcludedCode is the code emitted for characters that are not vectorized.
// Real alphabet codes start at 1.
const ExcludedCode uint8 = 0

var ErrAlphabetFull = errors.New("alphabet table is full: more than 255 distinct characters")

// Alphabet is the shared character to code table built incrementally during
// vectorization. It is safe for concurrent use by the per-file workers; the
// map and the code counter are guarded together so an insert and its counter
// advance are one atomic step.
type Alphabet struct {
	mu    sync.RWMutex
	codes map[rune]uint8
	next  uint16
}

func NewAlphabet() *Alphabet {
	return &Alphabet{
		codes: make(map[rune]uint8),
		next:  1,
	}
}

// Assign returns the code for ch, allocating the next free code when ch has
// not been seen yet. Once assigned a mapping never changes.
func (a *Alphabet) Assign(ch rune) (uint8, error) {
	a.mu.RLock()
	code, ok := a.codes[ch]
	a.mu.RUnlock()
	if ok {
		return code, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	// Another worker may have inserted ch between the two lock acquisitions.
	if code, ok := a.codes[ch]; ok {
		return code, nil
	}
	if a.next > math.MaxUint8 {
		return 0, ErrAlphabetFull
	}
	code = uint8(a.next)
	a.codes[ch] = code
	a.next++
	return code, nil
}

// Code returns the assigned code for ch without allocating.
func (a *Alphabet) Code(ch rune) (uint8, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	code, ok := a.codes[ch]
	return code, ok
}

// Size returns the number of distinct characters assigned so far.
func (a *Alphabet) Size() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.codes)
}
