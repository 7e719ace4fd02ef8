// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/hardware/cpu/registers"
	"github.com/gophernes/gophernes/hardware/cpubus"
	"github.com/gophernes/gophernes/logger"
)

// RAMSize is the amount of work RAM inside the console, addressed from
// 0x0000 and mirrored through 0x1fff.
const RAMSize = 2048

// initial register state after a reset. the stack pointer value is what the
// hardware leaves behind after the reset sequence has run.
const (
	initialSP     = 0xfd
	initialCycles = 7
)

// Trace is the information passed to the trace function once per decoded
// instruction.
type Trace struct {
	// address the instruction was read from
	Address uint16

	// the instruction definition
	Defn *instructions.Definition

	// the operand bytes. only the first Defn.Bytes-1 entries are meaningful
	Operand [2]uint8
}

func (tr Trace) String() string {
	switch tr.Defn.Bytes {
	case 2:
		return fmt.Sprintf("$%04x %s $%02x", tr.Address, tr.Defn.Mnemonic(), tr.Operand[0])
	case 3:
		return fmt.Sprintf("$%04x %s $%04x", tr.Address, tr.Defn.Mnemonic(),
			uint16(tr.Operand[1])<<8|uint16(tr.Operand[0]))
	}
	return fmt.Sprintf("$%04x %s", tr.Address, tr.Defn.Mnemonic())
}

// CPU implements the 6502 as found in the NES console. Register logic is
// implemented by the types in the registers sub-package.
//
// The CPU owns the console's work RAM. All other memory accesses are
// forwarded through the cpubus.Bus interface supplied on construction.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	bus          cpubus.Bus
	instructions []*instructions.Definition

	ram []uint8

	// the CPU is disabled by a breakpoint or by an undocumented opcode.
	// a disabled CPU ignores Step()
	enabled bool

	// number of cycles the CPU has run since the last reset
	cycles uint64

	// cycles remaining for the instruction currently being executed. no new
	// instruction is decoded until this reaches one or zero
	cyclesRemaining int

	// whether an NMI is waiting to be serviced. raised by the PPU at the
	// start of the vertical blank
	pendingNMI bool

	// OAM DMA state. while a transfer is active normal instruction
	// processing is suspended
	dma      bool
	dmaPage  uint8
	dmaIndex int

	breakpoints map[uint16]bool

	// called once per decoded instruction. may be nil
	trace func(Trace)
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// returned CPU requires a Reset() before it is useful.
func NewCPU(bus cpubus.Bus) *CPU {
	return &CPU{
		bus:          bus,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
		ram:          make([]uint8, RAMSize),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s A=%s X=%s Y=%s SP=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises registers, RAM, cycle counters and the DMA state, and
// seeds the program counter from the reset vector. Subsystem identity is
// preserved - the bus reference survives the reset.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(initialSP)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	// note: RAM state is considered unreliable after a reset on the real
	// hardware. zero is as good a state as any
	for i := range mc.ram {
		mc.ram[i] = 0
	}

	mc.cycles = initialCycles
	mc.cyclesRemaining = 0
	mc.pendingNMI = false
	mc.dma = false
	mc.dmaPage = 0
	mc.dmaIndex = 0
	mc.breakpoints = make(map[uint16]bool)
	mc.enabled = true

	// seed the program counter from the reset vector
	lo := mc.Read(uint32(cpubus.Reset))
	hi := mc.Read(uint32(cpubus.Reset) + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// Step the CPU by one cycle. Exactly one of the following happens, in this
// priority order: one half-step of an active DMA transfer; the bus-idle tail
// of a multi-cycle instruction; servicing of a pending NMI; the decode and
// execution of a new instruction. The elapsed cycle count increments by one
// whichever branch ran.
func (mc *CPU) Step() {
	if !mc.enabled {
		return
	}

	switch {
	case mc.dma:
		mc.stepDMA()
	case mc.cyclesRemaining > 1:
		mc.cyclesRemaining--
	case mc.pendingNMI:
		mc.serviceNMI()
	default:
		mc.executeInstruction()
	}

	mc.cycles++
}

// RaiseNMI flags a non-maskable interrupt. The interrupt is serviced once
// the current instruction (if any) has completed.
func (mc *CPU) RaiseNMI() {
	mc.pendingNMI = true
}

// PendingNMI returns whether an NMI is waiting to be serviced.
func (mc *CPU) PendingNMI() bool {
	return mc.pendingNMI
}

// serviceNMI pushes the program counter (high byte then low byte) and the
// packed status onto the stack and loads the program counter from the NMI
// vector.
func (mc *CPU) serviceNMI() {
	pc := mc.PC.Address()
	mc.PushStack(uint8(pc >> 8))
	mc.PushStack(uint8(pc))
	mc.PushStack(mc.Status.Value())

	lo := mc.Read(uint32(cpubus.NMI))
	hi := mc.Read(uint32(cpubus.NMI) + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	mc.pendingNMI = false
	mc.cyclesRemaining = 8
}

// StartDMA begins an OAM DMA transfer from the 256 byte page given. Normal
// instruction processing is suspended until the transfer completes.
func (mc *CPU) StartDMA(page uint8) {
	mc.dma = true
	mc.dmaPage = page
	mc.dmaIndex = 0
}

// DMAActive returns whether an OAM DMA transfer is in progress.
func (mc *CPU) DMAActive() bool {
	return mc.dma
}

// stepDMA runs one half-step of the active DMA transfer. The transfer
// doesn't begin until the elapsed cycle count is even. After that, every
// second half-step reads one byte from the source page and forwards it to
// the OAM write port. The transfer is 512 half-steps long and moves 256
// bytes in ascending offset order.
func (mc *CPU) stepDMA() {
	if mc.dmaIndex == 0 {
		if mc.cycles&1 == 0 {
			mc.dmaIndex++
		}
		return
	}

	if mc.dmaIndex&1 == 0 {
		v := mc.Read(uint32(mc.dmaPage)<<8 + uint32(mc.dmaIndex-1)/2)
		mc.bus.WriteOAM(v)
		if mc.dmaIndex == 512 {
			mc.dma = false
			return
		}
	}
	mc.dmaIndex++
}

// executeInstruction decodes and executes the instruction at the program
// counter. The instruction's declared cycle cost is added to the remaining
// cycle count; the instruction is only considered complete once those cycles
// have elapsed.
func (mc *CPU) executeInstruction() {
	if mc.breakpoints[mc.PC.Address()] {
		logger.Logf("cpu", "breakpoint at %#04x", mc.PC.Address())
		mc.enabled = false
		return
	}

	opcode := mc.Read(uint32(mc.PC.Address()))
	defn := mc.instructions[opcode]
	if defn == nil {
		// undocumented opcodes are out of scope. halt rather than guess
		logger.Logf("cpu", "undocumented opcode (%#02x) at (%#04x)", opcode, mc.PC.Address())
		mc.enabled = false
		return
	}

	tr := Trace{Address: mc.PC.Address(), Defn: defn}
	for i := 0; i < defn.Bytes-1; i++ {
		tr.Operand[i] = mc.Read(uint32(mc.PC.Address()) + uint32(i) + 1)
	}

	mc.PC.Add(uint16(defn.Bytes))

	if mc.trace != nil {
		mc.trace(tr)
	}

	op := mc.resolve(defn, tr.Operand)
	mc.execute(defn, op)

	mc.cyclesRemaining += defn.Cycles
}

// Cycles returns the number of cycles the CPU has run since the last reset.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// CyclesRemaining returns the number of cycles left before the current
// instruction is considered complete.
func (mc *CPU) CyclesRemaining() int {
	return mc.cyclesRemaining
}

// Enabled returns whether the CPU is responding to Step().
func (mc *CPU) Enabled() bool {
	return mc.enabled
}

// SetEnabled enables or disables the CPU.
func (mc *CPU) SetEnabled(enabled bool) {
	mc.enabled = enabled
}

// AddBreakpoint registers a program counter value. The CPU disables itself
// when the program counter matches a breakpoint, before the instruction at
// that address has had any effect.
func (mc *CPU) AddBreakpoint(address uint16) {
	mc.breakpoints[address] = true
}

// IsBreakpoint returns whether the address has been registered as a
// breakpoint.
func (mc *CPU) IsBreakpoint(address uint16) bool {
	return mc.breakpoints[address]
}

// SetTrace registers a function to be called once per decoded instruction.
// A nil function turns tracing off.
func (mc *CPU) SetTrace(trace func(Trace)) {
	mc.trace = trace
}
