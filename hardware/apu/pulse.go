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

package apu

// the output waveform for each of the four duty settings, one bit per
// sequencer step.
//
//	0    0 1 0 0 0 0 0 0    (12.5%)
//	1    0 1 1 0 0 0 0 0    (25%)
//	2    0 1 1 1 1 0 0 0    (50%)
//	3    1 0 0 1 1 1 1 1    (25% negated)
var dutySequence = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

// PulseChannel is one of the two square wave channels of the APU. The four
// registers of the channel are exposed through the Write() function using
// register indexes zero to three.
type PulseChannel struct {
	num int

	enabled bool

	duty           uint8
	envelopeLoop   bool
	constantVolume bool
	volume         uint8

	// the timer value written by the registers. the sequencer advances
	// every timer+1 steps
	timer   uint16
	divider uint16
	seqPos  int

	lengthCounter uint8
}

// NewPulseChannel is the preferred method of initialisation for the
// PulseChannel type. num identifies the channel and is only used for
// presentation.
func NewPulseChannel(num int) *PulseChannel {
	return &PulseChannel{num: num}
}

// Reset the channel to its power-on state.
func (ch *PulseChannel) Reset() {
	*ch = PulseChannel{num: ch.num}
}

// Write one of the four channel registers.
//
// Register zero packs duty (bits 6 and 7), envelope loop (bit 5), constant
// volume (bit 4) and the volume itself (bits 0 to 3). A write with the
// constant volume flag clear also resets the timer.
//
// Register two is the low byte of the timer. Register three carries the
// high three bits of the timer and the length counter load value; writing
// it starts the channel.
func (ch *PulseChannel) Write(reg uint16, data uint8) {
	switch reg {
	case 0:
		ch.duty = data >> 6
		ch.envelopeLoop = data&0x20 == 0x20
		ch.constantVolume = data&0x10 == 0x10
		ch.volume = data & 0x0f
		if !ch.constantVolume {
			ch.timer = 0
		}
	case 1:
		// sweep unit. not implemented
	case 2:
		ch.timer = ch.timer&0x0700 | uint16(data)
	case 3:
		ch.timer = uint16(data&0x07)<<8 | ch.timer&0x00ff
		ch.lengthCounter = data >> 3
		ch.enabled = true
	}
}

// SetEnabled is the channel's bit of the APU status register.
func (ch *PulseChannel) SetEnabled(enabled bool) {
	ch.enabled = enabled
}

// Enabled returns whether the channel is running.
func (ch *PulseChannel) Enabled() bool {
	return ch.enabled
}

// Duty returns the duty setting from register zero.
func (ch *PulseChannel) Duty() uint8 {
	return ch.duty
}

// Volume returns the volume setting from register zero.
func (ch *PulseChannel) Volume() uint8 {
	return ch.volume
}

// ConstantVolume returns the constant volume flag from register zero.
func (ch *PulseChannel) ConstantVolume() bool {
	return ch.constantVolume
}

// EnvelopeLoop returns the envelope loop flag from register zero.
func (ch *PulseChannel) EnvelopeLoop() bool {
	return ch.envelopeLoop
}

// Timer returns the eleven bit timer value.
func (ch *PulseChannel) Timer() uint16 {
	return ch.timer
}

// LengthCounter returns the length counter load value from register three.
func (ch *PulseChannel) LengthCounter() uint8 {
	return ch.lengthCounter
}

// ClockLength counts the length counter down. The envelope loop flag
// doubles as the length counter halt flag.
func (ch *PulseChannel) ClockLength() {
	if !ch.envelopeLoop && ch.lengthCounter > 0 {
		ch.lengthCounter--
	}
}

// Step the channel's timer. The sequencer advances every timer+1 steps.
func (ch *PulseChannel) Step() {
	if ch.divider == 0 {
		ch.divider = ch.timer
		ch.seqPos = (ch.seqPos + 1) & 0x07
		return
	}
	ch.divider--
}

// Output returns the current sample of the channel, in the range 0 to 15.
// A disabled channel, a spent length counter or a timer outside the
// playable range all silence the channel.
func (ch *PulseChannel) Output() uint8 {
	if !ch.enabled || ch.lengthCounter == 0 {
		return 0
	}
	if ch.timer < 8 || ch.timer > 0x7ff {
		return 0
	}
	if dutySequence[ch.duty][ch.seqPos] == 0 {
		return 0
	}
	return ch.volume
}
