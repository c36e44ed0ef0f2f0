package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is one step of a jingle.
type note struct {
	freq     float64
	duration time.Duration
}

var (
	rewardNotes = []note{{880, 40 * time.Millisecond}, {1320, 60 * time.Millisecond}}
	lostNotes   = []note{{392, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {262, 240 * time.Millisecond}}
	wonNotes    = []note{{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 90 * time.Millisecond}, {1047, 260 * time.Millisecond}}
)

// RewardSound is the short chirp played when the snake eats.
func RewardSound(sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	return jingle(sr, rewardNotes, volume)
}

// LostSound is a falling phrase.
func LostSound(sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	return jingle(sr, lostNotes, volume)
}

// WonSound is a rising arpeggio.
func WonSound(sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	return jingle(sr, wonNotes, volume)
}

func jingle(sr beep.SampleRate, notes []note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, newFade(beep.Take(sr.N(n.duration), tone), sr.N(n.duration), sr.N(5*time.Millisecond)))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// Duration is the total length of samples streamed from s. It drains s.
func Duration(sr beep.SampleRate, s beep.Streamer) time.Duration {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return sr.D(total)
}

// fade ramps the edges of a note so it does not click.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func newFade(s beep.Streamer, total, ramp int) beep.Streamer {
	return &fade{streamer: s, total: total, ramp: ramp}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.ramp > 0 {
			if f.pos < f.ramp {
				gain = float64(f.pos) / float64(f.ramp)
			} else if left := f.total - f.pos; left < f.ramp {
				gain = math.Max(float64(left)/float64(f.ramp), 0)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
