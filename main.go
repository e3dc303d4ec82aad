package main

import (
	"flag"
	"image/png"
	"os"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	stateIn := flag.String("state", "", "The state file to load")
	stateOut := flag.String("state-out", "", "The state file to write on exit")
	tileSheet := flag.String("tiles", "", "Write the decoded tile sheet to this PNG file on exit")
	steps := flag.Int("steps", 0, "The number of instructions to execute (0 runs until an undefined opcode)")
	debug := flag.Bool("debug", false, "Trace every executed instruction")
	flag.Parse()

	var logger log.Logger
	if *debug {
		logger = log.NewDebug()
	} else {
		logger = log.New()
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	if *romFile != "" {
		rom, err := os.ReadFile(*romFile)
		if err != nil {
			logger.Errorf("could not read rom: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithROM(rom))
	}

	gb := gameboy.NewGameBoy(opts...)

	if *stateIn != "" {
		raw, err := os.ReadFile(*stateIn)
		if err != nil {
			logger.Errorf("could not read state: %v", err)
			os.Exit(1)
		}
		if err := gb.Load(raw); err != nil {
			logger.Errorf("could not load state: %v", err)
			os.Exit(1)
		}
	}

	executed := 0
	for *steps == 0 || executed < *steps {
		if err := gb.Step(); err != nil {
			break
		}
		executed++
	}
	logger.Infof("executed %d instructions, stopped at %04X", executed, gb.CPU.PC)

	if *stateOut != "" {
		if err := os.WriteFile(*stateOut, gb.Save(), 0o644); err != nil {
			logger.Errorf("could not write state: %v", err)
			os.Exit(1)
		}
	}
	if *tileSheet != "" {
		f, err := os.Create(*tileSheet)
		if err != nil {
			logger.Errorf("could not create tile sheet: %v", err)
			os.Exit(1)
		}
		err = png.Encode(f, gb.PPU.Image())
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			logger.Errorf("could not write tile sheet: %v", err)
			os.Exit(1)
		}
	}
}
