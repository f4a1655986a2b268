package bestgram

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
)

var (
	ErrGramNonPositive = errors.New("gram length must be greater than zero")
	ErrGramTooLong     = errors.New("gram length exceeds sequence length")
)

// DistinctGramIndices counts the distinct contiguous windows of length gram
// in codes. It materializes the windows, sorts them lexicographically and
// returns the indices into the sorted window array at which a new distinct
// value begins; the length of the result is the distinct gram count.
//
// Windows start at offsets [0, len(codes)-gram): the window at the final
// possible offset is deliberately not materialized, so the window count is
// exactly len(codes)-gram.
func DistinctGramIndices(gram int, codes []uint8) ([]int, error) {
	if gram <= 0 {
		return nil, ErrGramNonPositive
	}
	if gram >= len(codes) {
		return nil, fmt.Errorf("%w: gram %d, sequence length %d", ErrGramTooLong, gram, len(codes))
	}

	windows := materializeWindows(gram, codes)
	sort.Slice(windows, func(i, j int) bool {
		return bytes.Compare(windows[i], windows[j]) < 0
	})

	unique := []int{0}
	for k := 0; k+1 < len(windows); k++ {
		if !bytes.Equal(windows[k], windows[k+1]) {
			unique = append(unique, k+1)
		}
	}
	return unique, nil
}

// materializeWindows copies one window per start offset out of codes, the
// offsets split into chunks across workers. Each worker writes a disjoint
// range of the pre-sized result, so no locking is needed.
func materializeWindows(gram int, codes []uint8) [][]byte {
	count := len(codes) - gram
	windows := make([][]byte, count)

	workers := runtime.NumCPU()
	if workers > count {
		workers = count
	}
	chunk := (count + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < count; lo += chunk {
		hi := lo + chunk
		if hi > count {
			hi = count
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				w := make([]byte, gram)
				copy(w, codes[i:i+gram])
				windows[i] = w
			}
		}(lo, hi)
	}
	wg.Wait()
	return windows
}
