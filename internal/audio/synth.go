package audio

import (
	"encoding/binary"
	"math"
)

// voice is one FM note inside an effect. Times are in seconds.
type voice struct {
	onset, length float64
	freq          float64
	glide         float64 // frequency multiplier reached at the end of the note
	ratio, depth  float64 // modulator/carrier ratio and modulation index
	attack        float64 // fraction of length spent rising
	decay         float64 // exponential decay rate after the attack
	gain          float64
	sub           float64 // gain of a sine one octave below
}

func (v voice) at(t float64) float64 {
	p := t / v.length
	freq := v.freq * (1 + (v.glide-1)*p)

	var env float64
	if p < v.attack {
		env = p / v.attack
	} else {
		env = math.Exp(-v.decay * (p - v.attack))
	}
	// Fade the last 5% so notes never end on a click.
	if p > 0.95 {
		env *= (1 - p) / 0.05
	}

	phase := 2 * math.Pi * freq * t
	s := math.Sin(phase + v.depth*env*math.Sin(phase*v.ratio))
	s += v.sub * math.Sin(phase/2)
	return s * env * v.gain
}

// render mixes voices into an interleaved stereo float32 buffer long enough
// for the last voice to finish.
func render(voices []voice) []byte {
	var end float64
	for _, v := range voices {
		end = math.Max(end, v.onset+v.length)
	}
	frames := int(end * SampleRate)

	mix := make([]float64, frames)
	for _, v := range voices {
		start := int(v.onset * SampleRate)
		n := int(v.length * SampleRate)
		for j := 0; j < n && start+j < frames; j++ {
			mix[start+j] += v.at(float64(j) / SampleRate)
		}
	}

	buf := make([]byte, frames*BytesPerFrame)
	for i, s := range mix {
		bits := math.Float32bits(float32(math.Tanh(s)))
		binary.LittleEndian.PutUint32(buf[i*BytesPerFrame:], bits)
		binary.LittleEndian.PutUint32(buf[i*BytesPerFrame+4:], bits)
	}
	return buf
}

// pentatonic is the major pentatonic scale over A4, in semitones.
var pentatonic = [...]int{0, 2, 4, 7, 9}

// EatSteps is how many pitches the eat chirp climbs through before wrapping.
const EatSteps = 10

func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

// eatVoices is a short rising chirp whose pitch climbs the pentatonic scale
// with step, so a run of meals plays an ascending melody.
func eatVoices(step int) []voice {
	step = ((step % EatSteps) + EatSteps) % EatSteps
	n := pentatonic[step%len(pentatonic)] + 12*(step/len(pentatonic))
	freq := semitone(440, n)
	return []voice{
		{length: 0.08, freq: freq, glide: 1.5, ratio: 2, depth: 2.5, attack: 0.05, decay: 4, gain: 0.45},
	}
}

func defeatVoices() []voice {
	// Falling tritone then a low thud.
	return []voice{
		{onset: 0, length: 0.3, freq: 392, glide: 0.9, ratio: 1.5, depth: 1.8, attack: 0.02, decay: 3, gain: 0.3, sub: 0.2},
		{onset: 0.18, length: 0.4, freq: 277.18, glide: 0.85, ratio: 1.5, depth: 1.8, attack: 0.02, decay: 3, gain: 0.3, sub: 0.2},
		{onset: 0.4, length: 0.3, freq: 110, glide: 0.7, ratio: 1, depth: 0.5, attack: 0.01, decay: 6, gain: 0.5},
	}
}

func victoryVoices() []voice {
	// Pentatonic run over two octaves, ending on a held chord.
	var vs []voice
	for i := 0; i < 2*len(pentatonic); i++ {
		n := pentatonic[i%len(pentatonic)] + 12*(i/len(pentatonic))
		vs = append(vs, voice{
			onset: float64(i) * 0.06, length: 0.2, freq: semitone(440, n), glide: 1,
			ratio: 3, depth: 3, attack: 0.02, decay: 5, gain: 0.22,
		})
	}
	chord := 0.06 * float64(2*len(pentatonic))
	for _, n := range []int{24, 28, 31} {
		vs = append(vs, voice{
			onset: chord, length: 0.5, freq: semitone(440, n), glide: 1,
			ratio: 2, depth: 1.2, attack: 0.03, decay: 2.5, gain: 0.18,
		})
	}
	return vs
}

func resetVoices() []voice {
	return []voice{
		{length: 0.06, freq: 1320, glide: 0.5, ratio: 1, depth: 0.6, attack: 0.05, decay: 5, gain: 0.35},
	}
}

func rejectVoices() []voice {
	// Two low buzzes, like a "no".
	return []voice{
		{onset: 0, length: 0.08, freq: 180, glide: 0.95, ratio: 1.5, depth: 3, attack: 0.05, decay: 2, gain: 0.45},
		{onset: 0.1, length: 0.1, freq: 150, glide: 0.9, ratio: 1.5, depth: 3, attack: 0.05, decay: 2, gain: 0.45},
	}
}

// Generate renders the effect for kind. SoundEat renders the first eat
// step. Unknown kinds render nothing.
func Generate(kind Sound) []byte {
	switch kind {
	case SoundEat:
		return GenerateEat(0)
	case SoundDefeat:
		return render(defeatVoices())
	case SoundVictory:
		return render(victoryVoices())
	case SoundReset:
		return render(resetVoices())
	case SoundReject:
		return render(rejectVoices())
	}
	return nil
}

// GenerateEat renders the eat chirp for a step of the climb.
func GenerateEat(step int) []byte {
	return render(eatVoices(step))
}
