package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound identifies a feedback sound
type Sound int

const (
	SoundDetent Sound = iota // a line size was committed
	SoundClamp               // the committed size hit the minimum
	SoundCancel              // a gesture was aborted
)

func (s Sound) String() string {
	switch s {
	case SoundDetent:
		return "detent"
	case SoundClamp:
		return "clamp"
	case SoundCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

const (
	detentDuration = 30 * time.Millisecond
	detentAttack   = 2 * time.Millisecond
	detentRelease  = 20 * time.Millisecond

	clampGap = 25 * time.Millisecond

	cancelDuration = 80 * time.Millisecond
	cancelAttack   = 5 * time.Millisecond
	cancelRelease  = 60 * time.Millisecond
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of one wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, zero means silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateDetentSound is a short click, the notch of a drag settling
func CreateDetentSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := NewOscillator(1200.0, detentDuration, WaveSquare, rate)
	shaped := NewEnvelope(click, detentDuration, detentAttack, detentRelease, rate)
	return newVolume(shaped, 0.6*cfg.MasterVolume)
}

// CreateClampSound is two low ticks for a size stopped at the minimum
func CreateClampSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tick := func() beep.Streamer {
		osc := NewOscillator(330.0, detentDuration, WaveSaw, rate)
		return NewEnvelope(osc, detentDuration, detentAttack, detentRelease, rate)
	}
	gap := beep.Silence(rate.N(clampGap))
	return newVolume(beep.Seq(tick(), gap, tick()), 0.7*cfg.MasterVolume)
}

// CreateCancelSound is a soft noise burst for an aborted gesture
func CreateCancelSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, cancelDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, cancelDuration, cancelAttack, cancelRelease, rate)
	return newVolume(shaped, 0.3*cfg.MasterVolume)
}

// SoundEffect returns the streamer for s, nil for unknown sounds
func SoundEffect(s Sound, cfg Config) beep.Streamer {
	switch s {
	case SoundDetent:
		return CreateDetentSound(cfg)
	case SoundClamp:
		return CreateClampSound(cfg)
	case SoundCancel:
		return CreateCancelSound(cfg)
	default:
		return nil
	}
}

// Duration returns how long s plays
func Duration(s Sound) time.Duration {
	switch s {
	case SoundDetent:
		return detentDuration
	case SoundClamp:
		return 2*detentDuration + clampGap
	case SoundCancel:
		return cancelDuration
	default:
		return 0
	}
}
