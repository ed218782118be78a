package usecase

import (
	"context"
	"sync"
	"time"

	"lark/internal/core/domain"
)

// SearchDebounce is how long a query must stay unchanged before it runs.
const SearchDebounce = 500 * time.Millisecond

// SearchResult is delivered for the latest query only.
type SearchResult struct {
	Query string
	Users []domain.User
	Err   error
}

type searchFunc func(ctx context.Context, query string) ([]domain.User, error)

// Searcher debounces user searches typed one key at a time. Every Search
// call cancels the pending or running search of the previous query, so
// results are delivered in query order and stale ones are dropped.
type Searcher struct {
	search  searchFunc
	delay   time.Duration
	deliver func(SearchResult)

	deliverMu sync.Mutex

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewSearcher returns a searcher that runs search after delay and passes
// the result to deliver. deliver is called from a background goroutine.
func NewSearcher(search searchFunc, delay time.Duration, deliver func(SearchResult)) *Searcher {
	return &Searcher{search: search, delay: delay, deliver: deliver}
}

// Search schedules query, replacing any earlier one.
func (s *Searcher) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx, seq, query)
}

func (s *Searcher) run(ctx context.Context, seq uint64, query string) {
	defer s.wg.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	users, err := s.search(ctx, query)

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	s.mu.Lock()
	latest := seq == s.seq && ctx.Err() == nil
	s.mu.Unlock()
	if latest {
		s.deliver(SearchResult{Query: query, Users: users, Err: err})
	}
}

// Wait blocks until the latest search has been delivered or dropped. It does
// not cancel anything and must not run concurrently with Search.
func (s *Searcher) Wait() {
	s.wg.Wait()
}

// Close cancels the current search and waits for it to return.
func (s *Searcher) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}
