// Command uk101re runs the UK101 replica emulator: load a ROM, optionally
// a data-injection file, and either drop into the interactive debugger or
// run the CPU at real-time pace until Ctrl-X.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"uk101re/cliopts"
	"uk101re/debugger"
	"uk101re/machine"
	"uk101re/terminal"
)

// cyclesPerTick and tickInterval reproduce the original's pacing: 20000
// cycles of a notional 1.000 MHz 6502 is 20ms of emulated time, so each
// tick of host wall-clock time should also take about 20ms unless turbo
// mode is active.
const (
	cyclesPerTick = 20000
	tickInterval  = 20 * time.Millisecond
)

func main() {
	opts := cliopts.ParseOrExit(os.Args)

	rom, err := os.ReadFile(opts.ROMFile)
	if err != nil {
		log.Fatalf("uk101re: cannot read ROM file %q: %v", opts.ROMFile, err)
	}

	var kb interface {
		Ready() bool
		ReadByte() byte
	}
	var closer func()

	if opts.HasDataFile {
		src, err := terminal.NewDataFileSource(opts.DataFile)
		if err != nil {
			log.Fatalf("uk101re: cannot read data file %q: %v", opts.DataFile, err)
		}
		kb = src
	} else {
		src, err := terminal.NewLiveSource(os.Stdin)
		if err != nil {
			log.Fatalf("uk101re: cannot configure terminal: %v", err)
		}
		kb = src
		closer = src.Close
	}
	if closer != nil {
		defer closer()
	}

	sink := terminal.NewSink(os.Stdout)

	m, err := machine.New(rom, kb, sink)
	if err != nil {
		log.Fatalf("uk101re: %v", err)
	}
	m.Reset()

	if opts.Debug {
		if err := debugger.Run(m); err != nil {
			log.Fatalf("uk101re: debugger: %v", err)
		}
		return
	}

	run(m, kb, opts.Turbo)
}

// liveController is implemented by terminal.Source when backed by a live
// terminal; data-injection sources never signal reset/quit.
type liveController interface {
	ResetRequested() bool
	QuitRequested() bool
}

func run(m *machine.Machine, kb interface {
	Ready() bool
	ReadByte() byte
}, turbo bool) {
	ctrl, _ := kb.(liveController)

	for {
		tickStart := time.Now()
		cycles := 0
		for cycles < cyclesPerTick {
			cycles += m.Step()
		}

		if ctrl != nil {
			if ctrl.QuitRequested() {
				fmt.Println()
				return
			}
			if ctrl.ResetRequested() {
				m.Reset()
			}
		}

		if !turbo {
			if elapsed := time.Since(tickStart); elapsed < tickInterval {
				time.Sleep(tickInterval - elapsed)
			}
		}
	}
}
