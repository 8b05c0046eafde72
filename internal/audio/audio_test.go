package audio

import (
	"math"
	"testing"
	"time"
)

func TestRenderLengthAndRange(t *testing.T) {
	for name, v := range Effects {
		out := Render(v)
		if want := samples(v.Duration); len(out) != want {
			t.Errorf("%s: %d samples, want %d", name, len(out), want)
		}
		for i, s := range out {
			if math.Abs(s) > 1 {
				t.Fatalf("%s: sample %d out of range: %f", name, i, s)
			}
		}
	}
}

func TestRenderEnvelopeFades(t *testing.T) {
	out := Render(Voice{Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSquare, Gain: 1})
	if out[0] != 0 {
		t.Errorf("attack should start silent, got %f", out[0])
	}
	if tail := math.Abs(out[len(out)-1]); tail > 0.01 {
		t.Errorf("release should end near silence, got %f", tail)
	}
}

func TestRenderTrackLength(t *testing.T) {
	tr := Tracks["boss"]
	if got, want := len(RenderTrack(tr)), len(tr.Notes)*samples(tr.Beat); got != want {
		t.Fatalf("track has %d samples, want %d", got, want)
	}
}

func TestPCM16Stereo(t *testing.T) {
	buf := PCM16Stereo([]float64{1, -1, 0.5, 3}, 1)
	if len(buf) != 16 {
		t.Fatalf("len = %d", len(buf))
	}
	sample := func(i int) int16 { return int16(uint16(buf[4*i]) | uint16(buf[4*i+1])<<8) }
	if sample(0) != 32767 || sample(1) != -32767 || sample(3) != 32767 {
		t.Errorf("unexpected samples %d %d %d", sample(0), sample(1), sample(3))
	}
	if buf[8] != buf[10] || buf[9] != buf[11] {
		t.Error("channels differ")
	}
}

func TestMonoStreamer(t *testing.T) {
	m := &monoStreamer{data: []float64{0.1, 0.2, 0.3}}
	buf := make([][2]float64, 2)
	if n, ok := m.Stream(buf); n != 2 || !ok || buf[1][1] != 0.2 {
		t.Fatalf("first read n=%d ok=%v buf=%v", n, ok, buf)
	}
	if n, ok := m.Stream(buf); n != 1 || !ok || buf[0][0] != 0.3 {
		t.Fatalf("second read n=%d ok=%v", n, ok)
	}
	if n, ok := m.Stream(buf); n != 0 || ok {
		t.Fatalf("drained read n=%d ok=%v", n, ok)
	}
}

func TestTrackStreamerLoops(t *testing.T) {
	tr := Track{Notes: []float64{220, 330}, Beat: 10 * time.Millisecond, Gain: 0.5}
	s := trackStreamer(tr)
	buf := make([][2]float64, 4*beepRate.N(tr.Beat))
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("track stopped early: n=%d ok=%v", n, ok)
	}
}

func TestBeepPlayerSilentUntilInitialized(t *testing.T) {
	bp := NewBeepPlayer()
	bp.PlaySound("fire", 1)
	bp.PlayMusic("boss")
	bp.StopMusic()
	bp.Close()
	if bp.music != nil {
		t.Fatal("music started without a speaker")
	}
}
