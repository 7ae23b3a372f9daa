package main

import (
	"log"

	"github.com/plus3/conway/game"
)

func main() {
	log.Println("Starting Game of Life...")

	if err := game.Run(game.DefaultSettings()); err != nil {
		log.Fatalf("%+v", err)
	}

	log.Println("Game of Life closed.")
}
