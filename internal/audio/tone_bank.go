// internal/audio/tone_bank.go
package audio

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// maxVoices caps the effect players kept alive at once.
const maxVoices = 16

// ToneBank plays synthesized effects and music through ebiten's audio
// context. PCM is rendered once per effect and reused.
type ToneBank struct {
	ctx     *audio.Context
	pcm     map[string][]byte
	voices  []*audio.Player
	music   *audio.Player
	track   string
	Volume  float64
	missing map[string]bool
}

// NewToneBank renders every effect. ebiten allows a single audio context
// per process, so an existing one is reused.
func NewToneBank() *ToneBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	tb := &ToneBank{
		ctx:     ctx,
		pcm:     make(map[string][]byte, len(Effects)),
		Volume:  1,
		missing: make(map[string]bool),
	}
	for name, v := range Effects {
		tb.pcm[name] = PCM16Stereo(Render(v), 1)
	}
	return tb
}

func (tb *ToneBank) PlaySound(name string, volume float64) {
	pcm, ok := tb.pcm[name]
	if !ok {
		if !tb.missing[name] {
			tb.missing[name] = true
			log.Printf("audio: no effect named %q", name)
		}
		return
	}

	// drop finished players before adding another
	live := tb.voices[:0]
	for _, p := range tb.voices {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			p.Close()
		}
	}
	tb.voices = live
	if len(tb.voices) >= maxVoices {
		return
	}

	p := tb.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume * tb.Volume)
	p.Play()
	tb.voices = append(tb.voices, p)
}

func (tb *ToneBank) PlayMusic(track string) {
	if track == tb.track && tb.music != nil {
		return
	}
	tr, ok := Tracks[track]
	if !ok {
		log.Printf("audio: no track named %q", track)
		return
	}
	tb.StopMusic()

	pcm := PCM16Stereo(RenderTrack(tr), 1)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := tb.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("audio: failed to start track %q: %v", track, err)
		return
	}
	p.SetVolume(tb.Volume)
	p.Play()
	tb.music = p
	tb.track = track
}

func (tb *ToneBank) StopMusic() {
	if tb.music == nil {
		return
	}
	tb.music.Pause()
	tb.music.Close()
	tb.music = nil
	tb.track = ""
}
