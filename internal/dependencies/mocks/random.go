package mocks

import (
	"github.com/mcoot/connectgame-go/internal/dependencies/random"
)

// MockRandom replays queued results instead of generating them
type MockRandom struct {
	intn    []int
	strings []string
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued value reduced into [0, n), or 0 if none remain
func (r *MockRandom) Intn(n int) int {
	if len(r.intn) == 0 || n <= 0 {
		return 0
	}
	v := r.intn[0]
	r.intn = r.intn[1:]
	return v % n
}

// String returns the next queued string, or "" if none remain
func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.strings) == 0 {
		return ""
	}
	v := r.strings[0]
	r.strings = r.strings[1:]
	return v
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.intn = append(r.intn, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.strings = append(r.strings, values...)
}
