// passgen generates randomized passwords of configurable length and
// character composition.
//
// Every random choice is drawn from crypto/rand:
//   - one character of each enabled class is placed in a random position
//   - remaining positions are filled by a weighted letter/number/special draw
//   - letter case is randomized and the whole password is shuffled
//
// Run 'passgen --help' for the available options.

package main

import (
	"os"

	"passgen/internal/cli"
)

// version is the application version reported by --version.
// Format: "vMAJOR.MINOR"
const version = "v1.02"

func main() {
	os.Exit(cli.Execute(version))
}
