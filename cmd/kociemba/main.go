// Command kociemba generates and solves Rubik's cube scrambles using a
// two-phase coordinate search.
package main

import (
	"github.com/SeamusWaldron/kociemba/internal/cli"
)

func main() {
	cli.Execute()
}
