// Package machine assembles the CPU, memory, graphics coprocessor, and
// sound collaborator into the single-owner aggregate the hosting
// program drives: reset, step, run to completion, load a program
// image, inject a keypress, and read the composited screen (§9's
// hosting-program operation list). Grounded on the teacher's
// console.machine/console.Bus wiring, generalized from its NES-specific
// CPU/PPU/mapper trio to Nova-16's CPU/memory/graphics/sound one.
package machine

import (
	"context"

	"github.com/starfighterlily/nova16/cpu"
	"github.com/starfighterlily/nova16/gfx"
	"github.com/starfighterlily/nova16/memory"
	"github.com/starfighterlily/nova16/sound"
)

// Machine owns every Nova-16 subsystem and is the single entry point a
// hosting program (the CLI, a future GUI front end) drives.
type Machine struct {
	mem *memory.Memory
	gfx *gfx.Graphics
	cpu *cpu.CPU
	snd sound.Device
}

// New returns a Machine wired to snd, already reset. Pass sound.Noop{}
// for a headless build.
func New(snd sound.Device) *Machine {
	mem := memory.New()
	g := gfx.New(mem)
	m := &Machine{mem: mem, gfx: g, snd: snd}
	m.cpu = cpu.New(mem, g, snd)
	return m
}

// Reset zeroes registers, memory, and graphics state and re-initializes
// SP/FP to 0xFFFF (§9).
func (m *Machine) Reset() {
	m.mem.Reset()
	m.gfx.Reset()
	m.cpu.Reset()
}

// Step executes one instruction, including the timer tick and
// interrupt poll folded into the CPU's fetch/decode/dispatch loop.
func (m *Machine) Step() {
	m.cpu.Step()
}

// Run steps the machine until it halts, faults, or ctx is done,
// whichever comes first.
func (m *Machine) Run(ctx context.Context) error {
	for {
		if m.cpu.Halted() {
			return m.cpu.Fault()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			m.cpu.Step()
		}
	}
}

// Load loads a .bin image (and its sibling .org file, if present) and
// positions PC at the resulting entry point (§4.3).
func (m *Machine) Load(path string) error {
	entry, err := m.mem.Load(path)
	if err != nil {
		return err
	}
	m.cpu.PC = entry
	return nil
}

// PressKey delivers one keypress to the keyboard controller, raising
// vector 2 at the next interrupt poll if the keyboard IRQ is enabled
// (§9).
func (m *Machine) PressKey(code byte) {
	m.cpu.PressKey(code)
}

// Screen returns the composited 256x256 indexed-color framebuffer,
// recompositing first if any layer is dirty.
func (m *Machine) Screen() [gfx.Dim][gfx.Dim]byte {
	return m.gfx.Screen()
}

// Halted reports whether the CPU has stopped via HLT or a fault.
func (m *Machine) Halted() bool { return m.cpu.Halted() }

// Fault returns the fault that halted the CPU, if any.
func (m *Machine) Fault() error { return m.cpu.Fault() }

// CPU exposes the underlying execution core for callers that need
// direct register/flag inspection (tests, a future debugger).
func (m *Machine) CPU() *cpu.CPU { return m.cpu }

// Memory exposes the underlying address space.
func (m *Machine) Memory() *memory.Memory { return m.mem }

// Graphics exposes the underlying graphics coprocessor.
func (m *Machine) Graphics() *gfx.Graphics { return m.gfx }
