package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/1ShivamPandey/apnafinance/internal/quote"
)

// StubSource is a deterministic quote.Source for testing. It returns
// predefined prices instead of making actual API calls and records every
// fetch so tests can assert on call counts.
type StubSource struct {
	mu sync.Mutex

	// prices maps stock codes to the price the stub reports.
	prices map[string]float64
	// failing holds codes whose fetch always misses.
	failing map[string]bool
	// calls counts FetchPrice invocations per code.
	calls map[string]int
	// delay simulates upstream latency on every fetch.
	delay time.Duration
}

// NewStubSource creates a stub with no prices configured; every fetch
// misses until WithPrice is used.
func NewStubSource() *StubSource {
	return &StubSource{
		prices:  make(map[string]float64),
		failing: make(map[string]bool),
		calls:   make(map[string]int),
	}
}

// WithPrice configures the stub to return the given price for a code.
func (s *StubSource) WithPrice(code string, price float64) *StubSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[code] = price
	return s
}

// WithFailure configures every fetch for the code to miss, simulating an
// unreachable upstream or an unknown symbol.
func (s *StubSource) WithFailure(code string) *StubSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[code] = true
	return s
}

// WithDelay makes every fetch sleep first, for exercising concurrent paths.
func (s *StubSource) WithDelay(d time.Duration) *StubSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// FetchPrice implements quote.Source.
func (s *StubSource) FetchPrice(ctx context.Context, code string) (float64, bool) {
	s.mu.Lock()
	delay := s.delay
	s.calls[code]++
	failing := s.failing[code]
	price, ok := s.prices[code]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return 0, false
		}
	}

	if failing || !ok {
		return 0, false
	}
	return price, true
}

// CallCount reports how many times FetchPrice was invoked for a code.
func (s *StubSource) CallCount(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[code]
}

// TotalCalls reports how many times FetchPrice was invoked across all codes.
func (s *StubSource) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// Ensure StubSource implements quote.Source
var _ quote.Source = (*StubSource)(nil)
