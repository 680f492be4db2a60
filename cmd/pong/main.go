package main

import (
	"log"

	"pong/internal/game"
)

func main() {
	log.SetPrefix("pong: ")
	if err := game.RunDesktop(); err != nil {
		log.Fatal(err)
	}
}
