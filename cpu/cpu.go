// Package cpu implements the Nova-16 execution engine: the register
// file, the prefixed-operand fetch/decode/dispatch loop, the timer and
// keyboard banks, and the ~113 instruction handlers that make up the
// instruction catalogue.
package cpu

import (
	"fmt"

	"github.com/starfighterlily/nova16/gfx"
	"github.com/starfighterlily/nova16/memory"
	"github.com/starfighterlily/nova16/sound"
)

// NumGeneralRegisters is the count of R* and P* registers.
const NumGeneralRegisters = 10

// CPU holds all Nova-16 processor state: the register file, flags,
// timer bank, keyboard bank, sound register shadow, and pointers to the
// collaborating subsystems (memory and graphics are mutated directly by
// instruction handlers; sound is an opaque collaborator per its
// contract).
type CPU struct {
	R [NumGeneralRegisters]uint8
	P [NumGeneralRegisters]uint16
	PC uint16

	flags uint16

	timer    timerBank
	irqMask  uint8 // one enable bit per vector, 0..7
	keyboard keyboardBank
	sound    soundShadow
	prngSeed uint16

	pendingVector int
	hasPending    bool

	halted bool
	fault  error

	// tickAccum batches executed-instruction ticks before folding them
	// into TT; see §4.6. batchSize is set by New but not read: tick folds
	// ticks by the TS prescale divisor alone.
	tickAccum int
	batchSize int
	// instrSincePoll counts instructions since the last interrupt poll.
	instrSincePoll int
	pollInterval   int

	prefetchBase  uint16
	prefetchValid bool
	prefetch      [16]byte

	mem *memory.Memory
	gfx *gfx.Graphics
	snd sound.Device
}

// Fault describes a fatal CPU error: stack abuse, division or modulo by
// zero, an unknown opcode or register code, an invalid operand class, or
// a write to an immediate operand.
type Fault struct {
	Kind string
	PC   uint16
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault at pc=0x%04x: %s", f.Kind, f.PC, f.Msg)
}

// New returns a CPU wired to mem, gfx, and snd, already reset.
func New(mem *memory.Memory, g *gfx.Graphics, snd sound.Device) *CPU {
	c := &CPU{
		mem:          mem,
		gfx:          g,
		snd:          snd,
		batchSize:    4,
		pollInterval: 8,
	}
	c.Reset()
	return c
}

// Reset zeroes the register file and flags and re-initializes SP/FP to
// 0xFFFF, per the data model's reset invariant.
func (c *CPU) Reset() {
	for i := range c.R {
		c.R[i] = 0
	}
	for i := range c.P {
		c.P[i] = 0
	}
	c.P[8] = 0xFFFF
	c.P[9] = 0xFFFF
	c.PC = 0
	c.flags = 0
	c.timer = timerBank{}
	c.irqMask = 0xFF
	c.keyboard = keyboardBank{}
	c.sound = soundShadow{}
	c.prngSeed = 0
	c.halted = false
	c.fault = nil
	c.tickAccum = 0
	c.instrSincePoll = 0
	c.prefetchValid = false
}

// SP returns the stack pointer (P8).
func (c *CPU) SP() uint16 { return c.P[8] }

// SetSP sets the stack pointer (P8); FP is untouched.
func (c *CPU) SetSP(v uint16) { c.P[8] = v }

// FP returns the frame pointer (P9).
func (c *CPU) FP() uint16 { return c.P[9] }

// SetFP sets the frame pointer (P9).
func (c *CPU) SetFP(v uint16) { c.P[9] = v }

// Halted reports whether HLT or a fault has stopped execution.
func (c *CPU) Halted() bool { return c.halted }

// Fault returns the fault that halted execution, if any.
func (c *CPU) Fault() error { return c.fault }

// Memory exposes the wired memory subsystem to callers embedding the CPU.
func (c *CPU) Memory() *memory.Memory { return c.mem }

// Graphics exposes the wired graphics coprocessor.
func (c *CPU) Graphics() *gfx.Graphics { return c.gfx }

func (c *CPU) raiseFault(kind, msg string) {
	if c.fault == nil {
		c.fault = &Fault{Kind: kind, PC: c.PC, Msg: msg}
	}
	c.halted = true
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=0x%04x SP=0x%04x FP=0x%04x flags=0x%03x halted=%v",
		c.PC, c.SP(), c.FP(), c.flags, c.halted)
}

func (c *CPU) fetchByte() byte {
	b := c.mem.ReadByte(c.PC)
	c.PC++
	c.invalidatePrefetchIfNeeded(c.PC - 1)
	return b
}

func (c *CPU) fetchWord() uint16 {
	w := c.mem.ReadWord(c.PC)
	c.PC += 2
	return w
}

func (c *CPU) invalidatePrefetchIfNeeded(addr uint16) {
	// Placeholder hook for the optional prefetch buffer (§4.2); it does
	// nothing. writeByte below clears prefetchValid itself for a write
	// inside the cached window.
	_ = addr
}

func (c *CPU) writeByte(addr uint16, val byte) {
	c.mem.WriteByte(addr, val)
	if c.prefetchValid && addr >= c.prefetchBase && addr < c.prefetchBase+uint16(len(c.prefetch)) {
		c.prefetchValid = false
	}
}

func (c *CPU) writeWord(addr uint16, val uint16) {
	c.writeByte(addr, byte(val>>8))
	c.writeByte(addr+1, byte(val))
}

func (c *CPU) readWord(addr uint16) uint16 {
	return c.mem.ReadWord(addr)
}

func (c *CPU) push16(v uint16) bool {
	sp := c.SP()
	if sp < 2 {
		c.raiseFault("stack", "stack pointer underflow")
		return false
	}
	sp -= 2
	if sp >= memory.VectorTableStart && sp < memory.VectorTableEnd {
		c.raiseFault("stack", "push would clobber the interrupt vector table")
		return false
	}
	c.SetSP(sp)
	c.writeWord(sp, v)
	return true
}

func (c *CPU) pop16() (uint16, bool) {
	sp := c.SP()
	if sp >= 0xFFFF {
		c.raiseFault("stack", "pop underflow")
		return 0, false
	}
	v := c.readWord(sp)
	c.SetSP(sp + 2)
	return v, true
}

// push8 and pop8 back PUSH/POP's single-byte stack slot (§4.2: "PUSH
// (1 byte, decrementing SP)"), distinct from the word-wide slot used by
// PUSHF/POPF/PUSHA/POPA/CALL/INT.
func (c *CPU) push8(v byte) bool {
	sp := c.SP()
	if sp < 1 {
		c.raiseFault("stack", "stack pointer underflow")
		return false
	}
	sp--
	if sp >= memory.VectorTableStart && sp < memory.VectorTableEnd {
		c.raiseFault("stack", "push would clobber the interrupt vector table")
		return false
	}
	c.SetSP(sp)
	c.writeByte(sp, v)
	return true
}

func (c *CPU) pop8() (byte, bool) {
	sp := c.SP()
	if sp >= 0xFFFF {
		c.raiseFault("stack", "pop underflow")
		return 0, false
	}
	v := c.mem.ReadByte(sp)
	c.SetSP(sp + 1)
	return v, true
}
