package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes feedback sounds into the speaker
// Every method is safe to call before Initialize or after Cleanup
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	played      map[Sound]int
}

// NewPlayer creates a player for cfg, the speaker is not touched yet
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		played: make(map[Sound]int),
	}
}

// Initialize opens the speaker, a disabled player stays silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker at %d Hz, volume %.2f", p.cfg.SampleRate, p.cfg.MasterVolume)
	return nil
}

// Cleanup drops pending sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}

// Play queues s, ignored while the speaker is closed
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer := SoundEffect(s, p.cfg)
	if streamer == nil {
		return
	}
	p.played[s]++

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Played returns how many times s was queued
func (p *Player) Played(s Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
