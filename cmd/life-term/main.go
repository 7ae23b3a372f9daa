package main

import (
	"log"
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/plus3/conway/life"
)

func main() {
	var (
		interval    = 150 * time.Millisecond
		patternPath string
		random      bool
		seed        int64 = time.Now().UnixNano()
	)

	flaggy.SetName("life-term")
	flaggy.SetDescription("Game of Life in the terminal.")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&interval, "i", "interval", "Time between generations while running, for example 150ms")
	flaggy.String(&patternPath, "p", "pattern", "Plaintext .cells file to start from")
	flaggy.Bool(&random, "r", "random", "Start from a Perlin soup")
	flaggy.Int64(&seed, "", "seed", "Soup seed")
	flaggy.Parse()

	start := life.StartPattern()
	if patternPath != "" {
		f, err := os.Open(patternPath)
		if err != nil {
			log.Fatalf("Failed to open pattern: %v", err)
		}
		start, err = life.ParsePlaintext(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to read pattern: %+v", err)
		}
	}

	s := newSession(start, seed)
	if random {
		s.soup(64, 32)
	}

	ui, err := newTerminalUI(s, interval)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := ui.run(); err != nil {
		log.Fatalf("%+v", err)
	}
}
