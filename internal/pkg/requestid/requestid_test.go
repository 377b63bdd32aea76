package requestid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/pkg/requestid"
)

type TrackerTestSuite struct {
	suite.Suite
	tracker *requestid.Tracker
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) SetupTest() {
	s.tracker = requestid.New()
}

func (s *TrackerTestSuite) TestNothingIssued() {
	s.Equal(uint64(0), s.tracker.Current())
	s.False(s.tracker.IsCurrent(0))
}

func (s *TrackerTestSuite) TestLatestWins() {
	first := s.tracker.Next()
	s.True(s.tracker.IsCurrent(first))

	second := s.tracker.Next()
	s.Greater(second, first)
	s.False(s.tracker.IsCurrent(first))
	s.True(s.tracker.IsCurrent(second))
	s.Equal(second, s.tracker.Current())
}

func (s *TrackerTestSuite) TestConcurrentIdsAreUnique() {
	const workers = 16
	const perWorker = 100

	var (
		mu   sync.Mutex
		seen = make(map[uint64]bool)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := s.tracker.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Len(seen, workers*perWorker)
	s.Equal(uint64(workers*perWorker), s.tracker.Current())
}
