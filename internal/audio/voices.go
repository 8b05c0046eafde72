// internal/audio/voices.go
package audio

import (
	"math"
	"time"
)

// SampleRate is shared by both backends.
const SampleRate = 44100

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Voice is a synthesized sound effect: a tone sweeping from Freq to
// EndFreq with a short attack and a linear release.
type Voice struct {
	Freq     float64
	EndFreq  float64 // 0 keeps Freq
	Duration time.Duration
	Wave     WaveType
	Gain     float64
}

// Track is a looping note pattern used as music.
type Track struct {
	Notes []float64
	Beat  time.Duration
	Wave  WaveType
	Gain  float64
}

// Effects maps the names the simulation plays to voices.
var Effects = map[string]Voice{
	"fire":         {Freq: 950, EndFreq: 700, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.18},
	"enemy_fire":   {Freq: 520, EndFreq: 380, Duration: 70 * time.Millisecond, Wave: WaveSquare, Gain: 0.15},
	"hit":          {Freq: 240, Duration: 50 * time.Millisecond, Wave: WaveSine, Gain: 0.35},
	"enemy_death":  {Freq: 300, EndFreq: 90, Duration: 160 * time.Millisecond, Wave: WaveSaw, Gain: 0.3},
	"player_hit":   {Freq: 140, Duration: 120 * time.Millisecond, Wave: WaveSaw, Gain: 0.4},
	"player_death": {Freq: 400, EndFreq: 40, Duration: 700 * time.Millisecond, Wave: WaveSaw, Gain: 0.45},
	"explosion":    {Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: 0.4},
	"toxic_burst":  {Freq: 180, EndFreq: 600, Duration: 200 * time.Millisecond, Wave: WaveSquare, Gain: 0.3},
	"shriek":       {Freq: 900, EndFreq: 1800, Duration: 350 * time.Millisecond, Wave: WaveSaw, Gain: 0.25},
}

// Tracks maps music names to patterns.
var Tracks = map[string]Track{
	"boss": {Notes: []float64{55, 55, 65.41, 49, 55, 55, 73.42, 61.74}, Beat: 220 * time.Millisecond, Wave: WaveSaw, Gain: 0.12},
}

// samples returns the number of samples d spans at SampleRate.
func samples(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// Render synthesizes v into mono samples in [-1, 1].
func Render(v Voice) []float64 {
	n := samples(v.Duration)
	out := make([]float64, n)
	end := v.EndFreq
	if end == 0 {
		end = v.Freq
	}
	attack := samples(5 * time.Millisecond)
	phase := 0.0
	seed := uint32(0x2545F491)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := v.Freq + (end-v.Freq)*t

		var val float64
		switch v.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * phase)
		case WaveSquare:
			if phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (phase - 0.5)
		case WaveNoise:
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			val = float64(seed)/float64(math.MaxUint32)*2 - 1
		}

		env := 1 - t
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		out[i] = val * env * v.Gain

		phase += freq / SampleRate
		phase -= math.Floor(phase)
	}
	return out
}

// RenderTrack synthesizes one full pass of the pattern.
func RenderTrack(tr Track) []float64 {
	var out []float64
	for _, f := range tr.Notes {
		note := Render(Voice{Freq: f, Duration: tr.Beat, Wave: tr.Wave, Gain: tr.Gain})
		out = append(out, note...)
	}
	return out
}

// PCM16Stereo converts mono samples to little-endian signed 16-bit
// interleaved stereo, scaled by volume.
func PCM16Stereo(mono []float64, volume float64) []byte {
	buf := make([]byte, len(mono)*4)
	for i, v := range mono {
		v *= volume
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * 32767)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}
	return buf
}
