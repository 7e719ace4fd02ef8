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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/logger"
	"github.com/gophernes/gophernes/modalflag"
	"github.com/gophernes/gophernes/version"
	"github.com/gophernes/gophernes/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		if err := emulate(md); err != nil {
			fmt.Printf("* %v\n", err)
			os.Exit(10)
		}
	case "VERSION":
		vers, rev := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, rev)
	}
}

// emulate runs the console headlessly for a number of frames and prints the
// final CPU state.
func emulate(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 1, "number of frames to run for")
	wavFile := md.AddString("wav", "", "record audio to WAV file")
	trace := md.AddBool("trace", false, "print every instruction executed")
	brk := md.AddString("breakpoint", "", "halt when the program counter reaches this address (hex)")
	logEcho := md.AddBool("log", false, "echo log entries to stderr as they happen")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required")
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *logEcho {
		logger.SetEcho(os.Stderr)
	}

	nes := hardware.NewNES()

	if *trace {
		nes.CPU.SetTrace(func(tr cpu.Trace) {
			fmt.Println(tr)
		})
	}

	if *wavFile != "" {
		aw := wavwriter.New(*wavFile)
		nes.APU.SetRecorder(aw)
		defer func() {
			if err := aw.End(); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := nes.AttachCartridge(cartload); err != nil {
		return err
	}

	if *brk != "" {
		addr, err := strconv.ParseUint(*brk, 16, 16)
		if err != nil {
			return fmt.Errorf("breakpoint address not valid (%s)", *brk)
		}
		nes.CPU.AddBreakpoint(uint16(addr))
	}

	endFrame := nes.PPU.Frame() + uint64(*frames)
	for nes.PPU.Frame() < endFrame && nes.CPU.Enabled() {
		nes.Step()
	}

	fmt.Println(nes.CPU)

	// anything of note (breakpoints, undocumented opcodes) has ended up in
	// the log
	logger.Tail(os.Stdout, 5)

	return nil
}
