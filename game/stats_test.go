package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Summary(t *testing.T) {
	s := NewStats()
	assert.Equal(t, Summary{}, s.Summary())
	assert.Zero(t, s.Best())

	t0 := time.Unix(0, 0)
	s.AddGame(GameRecord{StartTime: t0, EndTime: t0.Add(10 * time.Second), Length: 4})
	s.AddGame(GameRecord{StartTime: t0, EndTime: t0.Add(20 * time.Second), Length: 9})
	s.AddGame(GameRecord{StartTime: t0, EndTime: t0.Add(30 * time.Second), Length: 5, Won: true})

	sum := s.Summary()
	assert.Equal(t, 3, sum.Games)
	assert.Equal(t, 1, sum.Wins)
	assert.Equal(t, 9, sum.BestLength)
	assert.InDelta(t, 6.0, sum.AverageLength, 1e-9)
	assert.InDelta(t, 5.0, sum.MedianLength, 1e-9)
	assert.InDelta(t, 20.0, sum.AverageDuration, 1e-9)
	assert.Equal(t, 9, s.Best())

	s.AddGame(GameRecord{StartTime: t0, EndTime: t0, Length: 7})
	assert.InDelta(t, 6.0, s.Summary().MedianLength, 1e-9)
	assert.Equal(t, 4, s.Count())
}
