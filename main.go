package main

import "github.com/RyanBlaney/sonido-visor/cmd"

func main() {
	cmd.Execute()
}
