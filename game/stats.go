package game

import (
	"sort"
	"sync"
	"time"
)

// GameRecord describes one finished game.
type GameRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Length    int       `json:"length"`
	Won       bool      `json:"won"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary aggregates the games of a session.
type Summary struct {
	Games           int     `json:"games"`
	Wins            int     `json:"wins"`
	BestLength      int     `json:"bestLength"`
	AverageLength   float64 `json:"averageLength"`
	MedianLength    float64 `json:"medianLength"`
	AverageDuration float64 `json:"averageDuration"`
}

// Stats keeps the finished games of a session in memory.
type Stats struct {
	mutex sync.RWMutex
	games []GameRecord
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) AddGame(r GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.games = append(s.games, r)
}

func (s *Stats) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.games)
}

// Best is the longest snake of the session, 0 before the first game ends.
func (s *Stats) Best() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, g := range s.games {
		if g.Length > best {
			best = g.Length
		}
	}
	return best
}

func (s *Stats) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sum := Summary{Games: len(s.games)}
	if len(s.games) == 0 {
		return sum
	}

	lengths := make([]float64, 0, len(s.games))
	var totalLength, totalDuration float64
	for _, g := range s.games {
		if g.Won {
			sum.Wins++
		}
		if g.Length > sum.BestLength {
			sum.BestLength = g.Length
		}
		totalLength += float64(g.Length)
		totalDuration += g.Duration().Seconds()
		lengths = append(lengths, float64(g.Length))
	}

	sort.Float64s(lengths)
	if n := len(lengths); n%2 == 0 {
		sum.MedianLength = (lengths[n/2-1] + lengths[n/2]) / 2
	} else {
		sum.MedianLength = lengths[n/2]
	}
	sum.AverageLength = totalLength / float64(len(s.games))
	sum.AverageDuration = totalDuration / float64(len(s.games))
	return sum
}
