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

package hardware_test

import (
	"testing"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/controller"
	"github.com/gophernes/gophernes/test"
)

// testLoader returns a single bank NROM loader. The reset vector points at
// 0x8000 where the supplied program has been placed.
func testLoader(program []uint8) cartridgeloader.Loader {
	prg := make([]uint8, cartridgeloader.PRGBankSize)
	copy(prg, program)

	// a single PRG bank mirrors into the top half of the range so the
	// vectors live at the end of the bank
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	return cartridgeloader.Loader{
		Filename: "synthetic.nes",
		PRG:      prg,
		CHR:      make([]uint8, cartridgeloader.CHRBankSize),
	}
}

func TestNewNES(t *testing.T) {
	nes := hardware.NewNES()
	test.Equate(t, nes.Cart.IsEjected(), true)
	test.Equate(t, nes.CPU.Enabled(), true)
}

func TestStepWithoutCartridge(t *testing.T) {
	nes := hardware.NewNES()
	cycles := nes.CPU.Cycles()

	nes.Step()
	nes.Step()

	// nothing advances until a cartridge is attached
	test.Equate(t, nes.CPU.Cycles(), cycles)
	test.Equate(t, nes.PPU.Dot(), 0)
}

func TestSetEnabled(t *testing.T) {
	nes := hardware.NewNES()
	test.Equate(t, nes.Enabled(), true)

	if err := nes.AttachCartridge(testLoader([]uint8{0xea})); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	// a disabled console ignores Step without losing any state
	nes.SetEnabled(false)
	cycles := nes.CPU.Cycles()
	nes.Step()
	nes.Step()
	test.Equate(t, nes.CPU.Cycles(), cycles)
	test.Equate(t, nes.PPU.Dot(), 0)

	nes.SetEnabled(true)
	nes.Step()
	test.Equate(t, int(nes.CPU.Cycles()-cycles), 2)
}

func TestAttachCartridge(t *testing.T) {
	nes := hardware.NewNES()
	err := nes.AttachCartridge(testLoader([]uint8{
		0xa9, 0x42, // LDA #$42
	}))
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	test.Equate(t, nes.CPU.PC.Address(), 0x8000)

	nes.Step() // two CPU cycles. enough for LDA immediate
	test.Equate(t, nes.CPU.A.Value(), 0x42)
}

func TestAttachFailureLeavesConsoleAlone(t *testing.T) {
	nes := hardware.NewNES()
	err := nes.AttachCartridge(testLoader([]uint8{0xa9, 0x42}))
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	nes.Step()

	bad := cartridgeloader.Loader{Filename: "bad.nes", PRG: make([]uint8, 100)}
	if err := nes.AttachCartridge(bad); err == nil {
		t.Fatalf("attach of malformed loader did not fail")
	}

	// the failed attach didn't reset the console or replace the cartridge
	test.Equate(t, nes.CPU.A.Value(), 0x42)
	test.Equate(t, nes.Cart.IsEjected(), false)
}

func TestStepRatio(t *testing.T) {
	nes := hardware.NewNES()
	err := nes.AttachCartridge(testLoader([]uint8{0xea, 0xea, 0xea}))
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	cycles := nes.CPU.Cycles()
	nes.Step()

	// the PPU runs three dots per CPU cycle
	test.Equate(t, nes.PPU.Dot(), 6)
	test.Equate(t, int(nes.CPU.Cycles()-cycles), 2)
}

func TestFrameAndNMI(t *testing.T) {
	nes := hardware.NewNES()
	ld := testLoader([]uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000 (enable the vblank interrupt)
		0x4c, 0x05, 0x80, // JMP $8005
	})

	// the NMI vector points at the infinite loop at 0x8005
	ld.PRG[0x3ffa] = 0x05
	ld.PRG[0x3ffb] = 0x80

	if err := nes.AttachCartridge(ld); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	for i := 0; i < 45000 && !nes.PPU.VBlank(); i++ {
		nes.Step()
	}
	test.Equate(t, nes.PPU.VBlank(), true)

	// allow the current instruction to finish and the interrupt to be
	// serviced
	for i := 0; i < 16; i++ {
		nes.Step()
	}

	// servicing the interrupt pushed the return address and the status
	test.Equate(t, nes.CPU.SP.Value(), 0xfa)
}

func TestControllerRouting(t *testing.T) {
	nes := hardware.NewNES()
	nes.Controllers[0].Set(controller.A, true)
	nes.Controllers[1].Set(controller.B, true)

	// strobe through the CPU memory map
	nes.CPU.Write(0x4016, 1)
	nes.CPU.Write(0x4016, 0)

	test.Equate(t, nes.CPU.Read(0x4016), 1) // port 0, button a
	test.Equate(t, nes.CPU.Read(0x4017), 0) // port 1, button a
	test.Equate(t, nes.CPU.Read(0x4016), 0) // port 0, button b
	test.Equate(t, nes.CPU.Read(0x4017), 1) // port 1, button b
}
