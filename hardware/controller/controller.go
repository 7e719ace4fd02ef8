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

// Package controller implements the standard NES controller. The console
// reads button state one bit at a time through a shift register; writing a
// one to the strobe latch holds the register on the first button.
package controller

// Button is one of the eight buttons on a standard controller. The values
// are in the order the shift register reports them.
type Button int

// List of valid Button values.
const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
	NumButtons
)

func (b Button) String() string {
	return [...]string{"a", "b", "select", "start", "up", "down", "left", "right"}[b]
}

// Controller is a single standard controller.
type Controller struct {
	buttons [NumButtons]bool
	index   int
	strobe  bool
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController() *Controller {
	return &Controller{}
}

// Set the pressed state of a button.
func (c *Controller) Set(b Button, pressed bool) {
	c.buttons[b] = pressed
}

// Write the strobe latch. While the latch is high every read reports the
// state of the A button.
func (c *Controller) Write(data uint8) {
	c.strobe = data&0x01 == 0x01
	if c.strobe {
		c.index = 0
	}
}

// Read the next bit of the shift register. A standard controller reports
// ones once all eight buttons have been read.
func (c *Controller) Read() uint8 {
	var value uint8 = 1
	if c.index < int(NumButtons) {
		value = 0
		if c.buttons[c.index] {
			value = 1
		}
	}

	c.index++
	if c.strobe {
		c.index = 0
	}
	return value
}
