package cargo

import (
	"fmt"
	"sync"
)

// serialPrefix is the fixed leading segment of every container serial.
const serialPrefix = "KON"

// Sequence issues serial numbers of the form "KON-{code}-{n}". Each type
// code has its own counter starting at 1, so liquid, gas and refrigerated
// containers are numbered independently.
//
// Construction is single-threaded in the CLI, but the counters are still
// guarded by a mutex so a Sequence can be shared safely.
type Sequence struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewSequence creates a Sequence with all counters at zero.
func NewSequence() *Sequence {
	return &Sequence{counters: make(map[string]int)}
}

// Next increments the counter for code and returns the formatted serial.
func (s *Sequence) Next(code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[code]++
	return fmt.Sprintf("%s-%s-%d", serialPrefix, code, s.counters[code])
}

// Issued returns how many serials have been handed out for code.
func (s *Sequence) Issued(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[code]
}
