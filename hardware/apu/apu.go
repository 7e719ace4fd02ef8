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

// Package apu implements the audio processing unit of the NES console. The
// two square wave channels are implemented; the other channels accept
// writes but are otherwise quiet.
//
// There is no audio playback. A Recorder can be attached to capture the
// mixed output of the channels, one sample per APU step.
package apu

import (
	"github.com/gophernes/gophernes/logger"
)

// Recorder implementations receive the mixed output of the APU, one sample
// per APU step. Samples are in the range 0.0 to 1.0.
type Recorder interface {
	WriteSample(sample float32) error
}

// half frame periods of the frame counter, in APU steps. the length
// counters are clocked twice per frame and the five step mode stretches the
// frame.
const (
	halfFrame4Step = 7457
	halfFrame5Step = 9320
)

// APU implements the audio processing unit.
type APU struct {
	pulse [2]*PulseChannel

	// the frame counter register at 0x4017. only the mode bit is kept
	frameCounterMode uint8

	recorder Recorder

	steps uint64
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	return &APU{
		pulse: [2]*PulseChannel{NewPulseChannel(0), NewPulseChannel(1)},
	}
}

// Reset the APU to its power-on state. An attached recorder survives the
// reset.
func (a *APU) Reset() {
	a.pulse[0].Reset()
	a.pulse[1].Reset()
	a.frameCounterMode = 0
	a.steps = 0
}

// Pulse returns one of the two square wave channels.
func (a *APU) Pulse(num int) *PulseChannel {
	return a.pulse[num]
}

// SetRecorder attaches a Recorder to the APU. A nil Recorder detaches the
// current one.
func (a *APU) SetRecorder(rec Recorder) {
	a.recorder = rec
}

// WriteChannel writes one of the channel registers in the range 0x4000 to
// 0x4013. Writes to the unimplemented channels are accepted and ignored.
func (a *APU) WriteChannel(addr uint16, data uint8) {
	switch {
	case addr <= 0x4003:
		a.pulse[0].Write(addr-0x4000, data)
	case addr <= 0x4007:
		a.pulse[1].Write(addr-0x4004, data)
	}
}

// Write the status register at 0x4015 or the frame counter register at
// 0x4017.
func (a *APU) Write(addr uint16, data uint8) {
	switch addr {
	case 0x4015:
		a.pulse[0].SetEnabled(data&0x01 == 0x01)
		a.pulse[1].SetEnabled(data&0x02 == 0x02)
	case 0x4017:
		a.frameCounterMode = data >> 7
	}
}

// Step the APU. The channels advance and, if a recorder is attached, one
// sample of the mixed output is captured.
func (a *APU) Step() {
	a.pulse[0].Step()
	a.pulse[1].Step()
	a.steps++

	halfFrame := uint64(halfFrame4Step)
	if a.frameCounterMode == 1 {
		halfFrame = halfFrame5Step
	}
	if a.steps%halfFrame == 0 {
		a.pulse[0].ClockLength()
		a.pulse[1].ClockLength()
	}

	if a.recorder != nil {
		if err := a.recorder.WriteSample(a.output()); err != nil {
			logger.Logf("apu", "recorder detached: %v", err)
			a.recorder = nil
		}
	}
}

// output mixes the channels. The linear approximation of the mixer
// described at https://wiki.nesdev.com/w/index.php/APU_Mixer is good
// enough for the pulse channels on their own.
func (a *APU) output() float32 {
	return 0.00752 * float32(a.pulse[0].Output()+a.pulse[1].Output())
}
