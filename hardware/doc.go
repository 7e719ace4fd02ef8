// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the console sub-systems. It also acts as the memory bus, routing CPU
// reads and writes to RAM, the PPU registers, the APU, the controllers and
// the cartridge.
package hardware
