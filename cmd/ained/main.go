// Command ained drives an AiNed neuromorphic fabric: raw lattice and
// register access, coefficient kernel programming, dipole seeding,
// snapshot persistence and the Lights-Out demonstration game.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
