// internal/audio/beep_player.go
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const beepRate = beep.SampleRate(SampleRate)

// BeepPlayer plays effects and music through the gopxl/beep speaker.
// It is used by front-ends that do not run an ebiten loop.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       string
	initialized bool
	Volume      float64
}

func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{mixer: &beep.Mixer{}, Volume: 1}
}

// Initialize opens the speaker. A player that failed to initialize stays
// silent; the game can run without sound.
func (bp *BeepPlayer) Initialize() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.initialized {
		return nil
	}
	if err := speaker.Init(beepRate, beepRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(bp.mixer)
	bp.initialized = true
	return nil
}

// Close stops every sound and releases the speaker.
func (bp *BeepPlayer) Close() {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if !bp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	bp.initialized = false
}

func (bp *BeepPlayer) PlaySound(name string, volume float64) {
	v, ok := Effects[name]
	if !ok {
		return
	}

	bp.mu.Lock()
	defer bp.mu.Unlock()
	if !bp.initialized {
		return
	}
	s := newVolume(&monoStreamer{data: Render(v)}, volume*bp.Volume)
	speaker.Lock()
	bp.mixer.Add(s)
	speaker.Unlock()
}

func (bp *BeepPlayer) PlayMusic(track string) {
	tr, ok := Tracks[track]
	if !ok {
		log.Printf("audio: no track named %q", track)
		return
	}

	bp.mu.Lock()
	defer bp.mu.Unlock()
	if !bp.initialized || (bp.track == track && bp.music != nil) {
		return
	}
	bp.stopMusicLocked()

	ctrl := &beep.Ctrl{Streamer: newVolume(trackStreamer(tr), bp.Volume)}
	speaker.Lock()
	bp.mixer.Add(ctrl)
	speaker.Unlock()
	bp.music = ctrl
	bp.track = track
}

func (bp *BeepPlayer) StopMusic() {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	bp.stopMusicLocked()
}

func (bp *BeepPlayer) stopMusicLocked() {
	if bp.music == nil {
		return
	}
	speaker.Lock()
	bp.music.Paused = true
	bp.music.Streamer = nil
	speaker.Unlock()
	bp.music = nil
	bp.track = ""
}

// trackStreamer loops the pattern forever, one sine tone per beat.
func trackStreamer(tr Track) beep.Streamer {
	i := 0
	return beep.Iterate(func() beep.Streamer {
		f := tr.Notes[i%len(tr.Notes)]
		i++
		tone, err := generators.SineTone(beepRate, f)
		if err != nil {
			log.Printf("audio: bad note %.1f Hz: %v", f, err)
			return nil
		}
		return beep.Take(beepRate.N(tr.Beat), newVolume(tone, tr.Gain))
	})
}

// newVolume wraps s at linear volume vol; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// monoStreamer plays pre-rendered mono samples on both channels.
type monoStreamer struct {
	data []float64
	pos  int
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.data) {
		return 0, false
	}
	for n = range samples {
		if m.pos >= len(m.data) {
			return n, true
		}
		samples[n][0] = m.data[m.pos]
		samples[n][1] = m.data[m.pos]
		m.pos++
	}
	return len(samples), true
}

func (m *monoStreamer) Err() error { return nil }
