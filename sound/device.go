// Package sound implements the opaque audio collaborator the CPU's
// SPLAY/SSTOP/STRIG opcodes call into (§6's sound/audio collaborator
// contract). The CPU depends only on the Device interface; DSP fidelity
// is explicitly a Non-goal, so implementations are free to be no-ops or
// simple procedural waveform generators.
package sound

// Device is the entry-point surface the CPU calls. Implementations may
// be no-ops in a headless build.
type Device interface {
	// Play starts channel playing waveform at freq/vol, looping if
	// loop is true. waveform follows the SW register's low nibble:
	// 0=square, 1=triangle, 2=noise.
	Play(channel int, waveform byte, freq, vol byte, loop bool)
	// Stop silences channel, or every channel if channel < 0.
	Stop(channel int)
	// Trig fires a one-shot sound effect identified by effectID.
	Trig(effectID byte)
}
