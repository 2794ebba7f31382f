package main

import "snake/internal/game"

func main() {
	game.RunDesktop()
}
