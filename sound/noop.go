package sound

// Noop is a Device that discards every call; the default for headless
// or test use.
type Noop struct{}

func (Noop) Play(channel int, waveform byte, freq, vol byte, loop bool) {}
func (Noop) Stop(channel int)                                          {}
func (Noop) Trig(effectID byte)                                        {}
