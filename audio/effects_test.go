package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the number of samples and the peak
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate)
		total, peak := drain(osc)
		if total != rate.N(10*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(10*time.Millisecond), total)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: sample out of range: %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("Wave %d: expected no error, got %v", wave, osc.Err())
		}
	}
}

func TestOscillatorPartialBuffer(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 150*time.Millisecond, WaveSquare, rate)

	buf := make([][2]float64, 100)
	if n, ok := osc.Stream(buf); n != 100 || !ok {
		t.Errorf("Expected full first buffer, got n=%d ok=%v", n, ok)
	}
	if n, ok := osc.Stream(buf); n != 50 || !ok {
		t.Errorf("Expected 50 remaining samples, got n=%d ok=%v", n, ok)
	}
	if n, ok := osc.Stream(buf); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("Expected release to fall, got %f then %f", buf[90][0], buf[99][0])
	}
}

func TestSoundEffects(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for _, s := range []Sound{SoundDetent, SoundClamp, SoundCancel} {
		streamer := SoundEffect(s, cfg)
		if streamer == nil {
			t.Fatalf("Expected streamer for %s", s)
		}
		total, peak := drain(streamer)
		if want := rate.N(Duration(s)); total != want {
			t.Errorf("%s: expected %d samples, got %d", s, want, total)
		}
		if peak == 0 {
			t.Errorf("%s: expected audible output", s)
		}
	}

	if SoundEffect(Sound(99), cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	_, peak := drain(CreateDetentSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
