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

package cpu_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/cpubus"
	"github.com/gophernes/gophernes/test"
)

// mockBus records every access forwarded by the CPU.
type mockBus struct {
	ppuReg    [8]uint8
	mapper    [0x10000]uint8
	oam       []uint8
	apuAddr   []uint16
	ctrlAddr  []uint16
	ctrlValue uint8
}

func (m *mockBus) ReadPPURegister(address uint16) uint8 {
	if address == 0x4014 {
		return 0
	}
	return m.ppuReg[address-0x2000]
}

func (m *mockBus) WritePPURegister(address uint16, data uint8) {
	m.ppuReg[address-0x2000] = data
}

func (m *mockBus) ReadMapper(address uint16) uint8 {
	return m.mapper[address]
}

func (m *mockBus) WriteMapper(address uint16, data uint8) {
	m.mapper[address] = data
}

func (m *mockBus) ReadController(address uint16) uint8 {
	m.ctrlAddr = append(m.ctrlAddr, address)
	return m.ctrlValue
}

func (m *mockBus) WriteController(address uint16, data uint8) {
	m.ctrlAddr = append(m.ctrlAddr, address)
}

func (m *mockBus) WriteAPU(address uint16, data uint8) {
	m.apuAddr = append(m.apuAddr, address)
}

func (m *mockBus) WriteAPUChannel(address uint16, data uint8) {
	m.apuAddr = append(m.apuAddr, address)
}

func (m *mockBus) WriteOAM(data uint8) {
	m.oam = append(m.oam, data)
}

// newTestCPU returns a reset CPU with the program placed at the given origin
// and the reset vector pointing at it.
func newTestCPU(origin uint16, program []uint8) (*cpu.CPU, *mockBus) {
	bus := &mockBus{}
	for i, b := range program {
		bus.mapper[origin+uint16(i)] = b
	}
	bus.mapper[cpubus.Reset] = uint8(origin)
	bus.mapper[cpubus.Reset+1] = uint8(origin >> 8)

	mc := cpu.NewCPU(bus)
	mc.Reset()
	return mc, bus
}

// stepInstruction runs the CPU until the current instruction (or interrupt
// service) has spent its declared cycles.
func stepInstruction(mc *cpu.CPU) {
	mc.Step()
	for mc.Enabled() && mc.CyclesRemaining() > 1 {
		mc.Step()
	}
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{0xea})
	test.Equate(t, mc.PC.Address(), 0x8000)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Cycles(), 7)
	test.Equate(t, mc.Enabled(), true)
	test.Equate(t, mc.Status.InterruptDisable, true)
}

func TestRAMMirroring(t *testing.T) {
	mc, _ := newTestCPU(0x8000, nil)

	mc.Write(0x0000, 0x12)
	test.Equate(t, mc.Read(0x0800), 0x12)
	test.Equate(t, mc.Read(0x1000), 0x12)
	test.Equate(t, mc.Read(0x1800), 0x12)

	mc.Write(0x1fff, 0x34)
	test.Equate(t, mc.Read(0x07ff), 0x34)
}

func TestPPURegisterMirroring(t *testing.T) {
	mc, bus := newTestCPU(0x8000, nil)

	// register addresses are reduced modulo eight across the whole
	// 0x2000 to 0x3fff range
	mc.Write(0x2008, 0xaa)
	test.Equate(t, bus.ppuReg[0], 0xaa)
	mc.Write(0x3ff9, 0xbb)
	test.Equate(t, bus.ppuReg[1], 0xbb)

	bus.ppuReg[7] = 0xcc
	test.Equate(t, mc.Read(0x3fff), 0xcc)
}

func TestMemoryMapRouting(t *testing.T) {
	mc, bus := newTestCPU(0x8000, nil)

	// APU channel registers are write-only
	mc.Write(0x4000, 0xff)
	test.Equate(t, mc.Read(0x4000), 0)
	test.Equate(t, len(bus.apuAddr), 1)

	// 0x4017 is shared between the APU frame counter and the second
	// controller port
	bus.apuAddr = bus.apuAddr[:0]
	bus.ctrlAddr = bus.ctrlAddr[:0]
	mc.Write(0x4017, 0x40)
	test.Equate(t, len(bus.apuAddr), 1)
	test.Equate(t, len(bus.ctrlAddr), 1)

	// the test mode range is disabled
	mc.Write(0x4018, 0xff)
	test.Equate(t, mc.Read(0x4018), 0)

	// everything from 0x4020 belongs to the cartridge
	mc.Write(0x4020, 0x56)
	test.Equate(t, bus.mapper[0x4020], 0x56)
	test.Equate(t, mc.Read(0x4020), 0x56)
}

func TestAccumulatorSentinel(t *testing.T) {
	mc, _ := newTestCPU(0x8000, nil)
	mc.Write(cpubus.Accumulator, 0x99)
	test.Equate(t, mc.A.Value(), 0x99)
	test.Equate(t, mc.Read(cpubus.Accumulator), 0x99)
}

func TestStack(t *testing.T) {
	mc, _ := newTestCPU(0x8000, nil)

	mc.PushStack(0x11)
	mc.PushStack(0x22)
	test.Equate(t, mc.SP.Value(), 0xfb)
	test.Equate(t, mc.PeekStack(), 0x22)
	test.Equate(t, mc.PullStack(), 0x22)
	test.Equate(t, mc.PullStack(), 0x11)
	test.Equate(t, mc.SP.Value(), 0xfd)

	// the stack pointer wraps inside the stack page
	for i := 0; i < 256; i++ {
		mc.PushStack(uint8(i))
	}
	test.Equate(t, mc.SP.Value(), 0xfd)
}

func TestProgram(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0xa9, 0x05, // LDA #$05
		0x8d, 0x00, 0x02, // STA $0200
		0xa2, 0xff, // LDX #$ff
		0xe8,       // INX
		0x69, 0x7f, // ADC #$7f
	})

	stepInstruction(mc)
	test.Equate(t, mc.A.Value(), 0x05)
	test.Equate(t, mc.Status.Zero, false)

	stepInstruction(mc)
	test.Equate(t, mc.Read(0x0200), 0x05)

	stepInstruction(mc)
	test.Equate(t, mc.X.Value(), 0xff)
	test.Equate(t, mc.Status.Negative, true)

	stepInstruction(mc)
	test.Equate(t, mc.X.Value(), 0)
	test.Equate(t, mc.Status.Zero, true)

	// 0x05 + 0x7f = 0x84: negative with overflow
	stepInstruction(mc)
	test.Equate(t, mc.A.Value(), 0x84)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.Status.Negative, true)
	test.Equate(t, mc.Status.Carry, false)
}

func TestInstructionTiming(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0xa9, 0x05, // LDA #$05 (2 cycles)
		0x8d, 0x00, 0x02, // STA $0200 (4 cycles)
	})

	start := mc.Cycles()
	stepInstruction(mc)
	test.Equate(t, int(mc.Cycles()-start), 2)

	// an instruction is only complete once its remaining cycle count has
	// drained to one. the residual cycle is spent on the next decode, so
	// every instruction after the first occupies its declared cost plus one
	start = mc.Cycles()
	stepInstruction(mc)
	test.Equate(t, int(mc.Cycles()-start), 5)
}

func TestBranch(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0xa2, 0x01, // LDX #$01
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3 (back to DEX)
		0xea, // NOP
	})

	stepInstruction(mc) // LDX
	stepInstruction(mc) // DEX. X=0, zero set
	test.Equate(t, mc.Status.Zero, true)
	stepInstruction(mc) // BNE not taken
	test.Equate(t, mc.PC.Address(), 0x8005)
}

func TestJSRAndRTS(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0x20, 0x10, 0x80, // JSR $8010
		0xea, // NOP
	})
	stepInstruction(mc)
	test.Equate(t, mc.PC.Address(), 0x8010)

	// return address on the stack is the last byte of the JSR instruction
	lo := mc.PullStack()
	hi := mc.PullStack()
	test.Equate(t, uint16(hi)<<8|uint16(lo), 0x8002)
}

func TestNMI(t *testing.T) {
	mc, bus := newTestCPU(0x8000, []uint8{0xea, 0xea})
	bus.mapper[cpubus.NMI] = 0x00
	bus.mapper[cpubus.NMI+1] = 0x90

	mc.RaiseNMI()
	test.Equate(t, mc.PendingNMI(), true)

	status := mc.Status.Value()

	mc.Step()
	test.Equate(t, mc.PC.Address(), 0x9000)
	test.Equate(t, mc.PendingNMI(), false)
	test.Equate(t, mc.CyclesRemaining(), 8)

	// status was pushed last, then the low byte, then the high byte
	test.Equate(t, mc.PullStack(), status)
	lo := mc.PullStack()
	hi := mc.PullStack()
	test.Equate(t, uint16(hi)<<8|uint16(lo), 0x8000)
}

func TestNMIWaitsForInstruction(t *testing.T) {
	mc, bus := newTestCPU(0x8000, []uint8{
		0x8d, 0x00, 0x02, // STA $0200 (4 cycles)
	})
	bus.mapper[cpubus.NMI+1] = 0x90

	mc.Step() // decode STA
	mc.RaiseNMI()
	mc.Step() // mid-instruction: NMI must wait
	test.Equate(t, mc.PendingNMI(), true)
	mc.Step()
	mc.Step() // final cycle of the store. the NMI is still waiting
	test.Equate(t, mc.PendingNMI(), true)
	test.Equate(t, mc.PC.Address(), 0x8003)
	mc.Step() // instruction complete. this cycle services the interrupt
	test.Equate(t, mc.PendingNMI(), false)
	test.Equate(t, mc.PC.Address(), 0x9000)
}

func TestDMA(t *testing.T) {
	mc, bus := newTestCPU(0x8000, nil)

	// source page 0x03 lives in work RAM
	for i := 0; i < 256; i++ {
		mc.Write(uint32(0x0300+i), uint8(i))
	}

	mc.Write(0x4014, 0x03)
	test.Equate(t, mc.DMAActive(), true)

	steps := 0
	for mc.DMAActive() {
		mc.Step()
		steps++
		if steps > 600 {
			t.Fatalf("DMA transfer did not complete")
		}
	}

	// the elapsed cycle count is odd at this point (seven cycles since
	// reset) so the 512 half-steps are preceded by two alignment steps
	test.Equate(t, steps, 514)

	test.Equate(t, len(bus.oam), 256)
	for i, v := range bus.oam {
		if v != uint8(i) {
			t.Fatalf("OAM byte %d is %#02x", i, v)
		}
	}
}

func TestDMAEvenParity(t *testing.T) {
	mc, bus := newTestCPU(0x8000, []uint8{0xea})

	// one step of the NOP leaves the elapsed cycle count even. a transfer
	// begun on an even count needs only one alignment step
	mc.Step()
	mc.Write(0x4014, 0x03)

	steps := 0
	for mc.DMAActive() {
		mc.Step()
		steps++
		if steps > 600 {
			t.Fatalf("DMA transfer did not complete")
		}
	}

	test.Equate(t, steps, 513)
	test.Equate(t, len(bus.oam), 256)
}

func TestBreakpoint(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0xa9, 0x05, // LDA #$05
		0x8d, 0x00, 0x02, // STA $0200
	})

	mc.AddBreakpoint(0x8002)
	test.Equate(t, mc.IsBreakpoint(0x8002), true)

	stepInstruction(mc) // LDA
	test.Equate(t, mc.Enabled(), true)

	// the breakpoint disables the CPU before the store has any effect
	stepInstruction(mc)
	test.Equate(t, mc.Enabled(), false)
	test.Equate(t, mc.Read(0x0200), 0)
	test.Equate(t, mc.PC.Address(), 0x8002)

	// a disabled CPU ignores Step()
	cycles := mc.Cycles()
	mc.Step()
	test.Equate(t, mc.Cycles(), int(cycles))
}

func TestUndocumentedOpcodeDisables(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{0x02})
	stepInstruction(mc)
	test.Equate(t, mc.Enabled(), false)
}

func TestTrace(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0xa9, 0x05, // LDA #$05
		0xea, // NOP
	})

	var traced []cpu.Trace
	mc.SetTrace(func(tr cpu.Trace) {
		traced = append(traced, tr)
	})

	stepInstruction(mc)
	stepInstruction(mc)

	test.Equate(t, len(traced), 2)
	test.Equate(t, traced[0].String(), "$8000 LDA $05")
	test.Equate(t, traced[1].String(), "$8002 NOP")
}

func TestReadModifyWrite(t *testing.T) {
	mc, _ := newTestCPU(0x8000, []uint8{
		0xa9, 0x81, // LDA #$81
		0x4a,             // LSR A
		0x0e, 0x50, 0x00, // ASL $0050
	})
	mc.Write(0x0050, 0xc0)

	stepInstruction(mc)
	stepInstruction(mc)
	test.Equate(t, mc.A.Value(), 0x40)
	test.Equate(t, mc.Status.Carry, true)

	stepInstruction(mc)
	test.Equate(t, mc.Read(0x0050), 0x80)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Negative, true)
}
