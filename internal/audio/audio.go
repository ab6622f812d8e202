// Package audio plays procedurally generated effects for session events.
package audio

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"gridsnake/internal/session"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = ChannelCount * 4 // float32 samples
)

type Sound int

const (
	SoundEat Sound = iota
	SoundDefeat
	SoundVictory
	SoundReset
	SoundReject
	soundCount
)

// DefaultVolume is the effects volume in [0,1].
const DefaultVolume = 0.58

// Player owns the output device. A nil *Player is a valid muted player.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	sounds [soundCount][]byte
	eat    [EatSteps][]byte
}

// New opens the default output device and renders every effect up front.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	p := &Player{ctx: ctx, ready: ready, volume: volume}
	for k := Sound(0); k < soundCount; k++ {
		p.sounds[k] = Generate(k)
	}
	for step := range p.eat {
		p.eat[step] = GenerateEat(step)
	}
	return p, nil
}

// Play starts kind in the background. Effects requested before the device
// is ready are dropped.
func (p *Player) Play(kind Sound) {
	if p == nil || kind < 0 || kind >= soundCount {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	p.start(p.sounds[kind])
}

// PlayEat plays the eat chirp pitched for score, the score after the meal.
func (p *Player) PlayEat(score int) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	p.start(p.eat[EatStep(score)])
}

// EatStep is the step of the eat climb played at score.
func EatStep(score int) int {
	if score < 1 {
		return 0
	}
	return (score - 1) % EatSteps
}

func (p *Player) start(samples []byte) {
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// SoundFor maps a session event to its effect.
func SoundFor(t session.EventType) (Sound, bool) {
	switch t {
	case session.EventFoodEaten:
		return SoundEat, true
	case session.EventDefeat:
		return SoundDefeat, true
	case session.EventVictory:
		return SoundVictory, true
	case session.EventReset:
		return SoundReset, true
	case session.EventSettingsRejected:
		return SoundReject, true
	}
	return 0, false
}

// Subscribe plays the matching effect for every event on bus.
func (p *Player) Subscribe(bus *session.EventBus) {
	bus.SubscribeAll(func(e session.Event) {
		if e.Type == session.EventFoodEaten {
			p.PlayEat(e.Score)
			return
		}
		if kind, ok := SoundFor(e.Type); ok {
			p.Play(kind)
		}
	})
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
