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

package hardware

import (
	"fmt"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/hardware/apu"
	"github.com/gophernes/gophernes/hardware/controller"
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/ppu"
)

// NES is the top level of the emulated console, wiring the chips together.
// It implements the cpubus.Bus interface: the CPU routes every access
// outside its own memory map through the NES.
type NES struct {
	CPU  *cpu.CPU
	PPU  *ppu.PPU
	APU  *apu.APU
	Cart *cartridge.Cartridge

	// the two controller ports. port zero is read through address 0x4016
	// and port one through address 0x4017
	Controllers [2]*controller.Controller

	enabled bool
}

// NewNES creates a new NES console. The console is hard reset and ready to
// run, although without a cartridge attached it will be running empty
// memory.
func NewNES() *NES {
	nes := &NES{enabled: true}

	nes.Cart = cartridge.NewCartridge()
	nes.APU = apu.NewAPU()
	nes.Controllers[0] = controller.NewController()
	nes.Controllers[1] = controller.NewController()
	nes.PPU = ppu.NewPPU(nes.Cart, nes.RaiseNMI)
	nes.CPU = cpu.NewCPU(nes)

	nes.Reset()
	return nes
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s", nes.CPU, nes.PPU)
}

// AttachCartridge to the console. The console is soft reset on success so
// that the CPU starts at the cartridge's reset vector. On error the
// previously attached cartridge (if any) remains in place and the console
// is left untouched.
func (nes *NES) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := nes.Cart.Attach(cartload); err != nil {
		return err
	}
	nes.Reset()
	return nil
}

// Reset the console. Works like the reset button on the physical machine:
// the chips are reinitialised but the cartridge and controllers stay
// attached.
func (nes *NES) Reset() {
	nes.PPU.Reset()
	nes.APU.Reset()

	// the CPU resets last because it reads the reset vector through the
	// cartridge
	nes.CPU.Reset()
}

// SetEnabled pauses and resumes the console. A disabled console ignores
// Step() but keeps all of its state.
func (nes *NES) SetEnabled(enabled bool) {
	nes.enabled = enabled
}

// Enabled returns whether Step() currently has any effect.
func (nes *NES) Enabled() bool {
	return nes.enabled
}

// Step advances the console by one unit of time. The PPU runs three dots
// for every CPU cycle and the APU runs at half the CPU rate; one Step is
// two CPU cycles.
func (nes *NES) Step() {
	// with no cartridge there is no program to run
	if !nes.enabled || nes.Cart.IsEjected() {
		return
	}

	for i := 0; i < 2; i++ {
		nes.PPU.Step()
		nes.PPU.Step()
		nes.PPU.Step()
		nes.CPU.Step()
	}
	nes.APU.Step()
}

// RaiseNMI flags a non-maskable interrupt with the CPU. Called by the PPU
// at the start of the vertical blank.
func (nes *NES) RaiseNMI() {
	nes.CPU.RaiseNMI()
}

// ReadPPURegister implements the cpubus.Bus interface.
func (nes *NES) ReadPPURegister(address uint16) uint8 {
	return nes.PPU.ReadRegister(address)
}

// WritePPURegister implements the cpubus.Bus interface.
func (nes *NES) WritePPURegister(address uint16, data uint8) {
	nes.PPU.WriteRegister(address, data)
}

// ReadMapper implements the cpubus.Bus interface.
func (nes *NES) ReadMapper(address uint16) uint8 {
	return nes.Cart.Read(address)
}

// WriteMapper implements the cpubus.Bus interface.
func (nes *NES) WriteMapper(address uint16, data uint8) {
	nes.Cart.Write(address, data)
}

// ReadController implements the cpubus.Bus interface.
func (nes *NES) ReadController(address uint16) uint8 {
	return nes.Controllers[address-0x4016].Read()
}

// WriteController implements the cpubus.Bus interface. Writing the strobe
// latch addresses both controllers.
func (nes *NES) WriteController(address uint16, data uint8) {
	nes.Controllers[0].Write(data)
	nes.Controllers[1].Write(data)
}

// WriteAPU implements the cpubus.Bus interface.
func (nes *NES) WriteAPU(address uint16, data uint8) {
	nes.APU.Write(address, data)
}

// WriteAPUChannel implements the cpubus.Bus interface.
func (nes *NES) WriteAPUChannel(address uint16, data uint8) {
	nes.APU.WriteChannel(address, data)
}

// WriteOAM implements the cpubus.Bus interface. This is the port the OAM
// DMA transfer uses.
func (nes *NES) WriteOAM(data uint8) {
	nes.PPU.WriteOAM(data)
}
