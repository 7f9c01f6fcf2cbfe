package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	numChannels = 4

	WaveSquare   = 0
	WaveTriangle = 1
	WaveNoise    = 2
)

// Synth is a generative Device: SPLAY synthesizes a square, triangle,
// or noise waveform from the SF/SV/SW registers and plays it through
// the system speaker, rather than decoding a fixed asset file (there is
// no on-disk sound asset in a headless emulator). Grounded on the
// chippy driver's speaker.Init/speaker.Play plumbing.
type Synth struct {
	mu         sync.Mutex
	initOnce   sync.Once
	streamers  [numChannels]*toneStreamer
}

// NewSynth returns a Synth device, initializing the speaker backend on
// first use.
func NewSynth() *Synth {
	return &Synth{}
}

func (s *Synth) ensureInit() {
	s.initOnce.Do(func() {
		speaker.Init(sampleRate, sampleRate.N(sampleRate.D(1)/20))
	})
}

func (s *Synth) Play(channel int, waveform byte, freq, vol byte, loop bool) {
	if channel < 0 || channel >= numChannels {
		return
	}
	s.ensureInit()

	s.mu.Lock()
	t := newToneStreamer(waveform, freq, vol, loop)
	s.streamers[channel] = t
	s.mu.Unlock()

	speaker.Play(t)
}

func (s *Synth) Stop(channel int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if channel < 0 {
		for i := range s.streamers {
			if s.streamers[i] != nil {
				s.streamers[i].stop()
			}
		}
		return
	}
	if channel < numChannels && s.streamers[channel] != nil {
		s.streamers[channel].stop()
	}
}

// Trig plays a short, fixed-shape effect tone, ignoring the channel
// bank; effectID only selects pitch, a reasonable headless stand-in for
// the original's sample-based trigger effects.
func (s *Synth) Trig(effectID byte) {
	s.ensureInit()
	freq := 220 + byte(int(effectID)%8)*40
	t := newToneStreamer(WaveSquare, freq, 160, false)
	t.oneShotSamples = int(sampleRate) / 8
	speaker.Play(t)
}

// toneStreamer is a beep.Streamer synthesizing one of three simple
// waveforms from the SF (frequency, Hz-ish scale)/SV (volume)/SW
// (waveform select) register values.
type toneStreamer struct {
	mu       sync.Mutex
	waveform byte
	freq     float64
	vol      float64
	loop     bool
	phase    float64
	stopped  bool

	oneShotSamples int
	played         int

	rngState uint32
}

func newToneStreamer(waveform byte, freq, vol byte, loop bool) *toneStreamer {
	return &toneStreamer{
		waveform: waveform,
		freq:     20 + float64(freq)*8,
		vol:      float64(vol) / 255,
		loop:     loop,
		rngState: 0x1234,
	}
}

func (t *toneStreamer) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *toneStreamer) sample() float64 {
	switch t.waveform {
	case WaveTriangle:
		frac := t.phase - math.Floor(t.phase)
		return t.vol * (4*math.Abs(frac-0.5) - 1)
	case WaveNoise:
		t.rngState = t.rngState*1664525 + 1013904223
		return t.vol * (2*(float64(t.rngState>>16&0xFFFF)/65535) - 1)
	default: // WaveSquare
		frac := t.phase - math.Floor(t.phase)
		if frac < 0.5 {
			return t.vol
		}
		return -t.vol
	}
}

// Stream implements beep.Streamer.
func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return 0, false
	}

	for i := range samples {
		if t.oneShotSamples > 0 && t.played >= t.oneShotSamples {
			return i, i > 0
		}
		v := t.sample()
		samples[i][0], samples[i][1] = v, v
		t.phase += t.freq / float64(sampleRate)
		t.played++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }
