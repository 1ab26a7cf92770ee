// Package passgen builds randomized passwords with guaranteed character-class
// coverage and weighted filling of the remaining positions.
//
// Generation runs in two steps. Resolve validates a Config and turns it into a
// Plan (required classes, usable special characters). Generator.Build then
// places one character per required class in random slots, fills the rest by
// a weighted bucket draw, randomizes letter case and shuffles the result.
// Every draw comes from a util.Source, crypto/rand in production.
package passgen

// Character tables. These never change at runtime.
const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"

	// CommonSpecial is the first special-character group.
	CommonSpecial = "!@#$%^&*()"
	// UncommonSpecial is the second special-character group.
	UncommonSpecial = ",.';:/<>[]{}~|"
	// MathChars is the third special-character group.
	MathChars = "=+-"
)

// Defaults for the command line and DefaultConfig.
const (
	DefaultLength      = 12
	MinLength          = 4
	DefaultLowBoundary = 45
	DefaultMidBoundary = 66
	MaxBoundary        = 100
)

// bucketRange is the number of outcomes of the free-fill draw: [0, 100].
const bucketRange = MaxBoundary + 1

// Class is a character class a password can be required to contain.
type Class int

const (
	UpperLetter Class = iota
	LowerLetter
	Digit
	SpecialChar
)

func (c Class) String() string {
	switch c {
	case UpperLetter:
		return "upper"
	case LowerLetter:
		return "lower"
	case Digit:
		return "digit"
	case SpecialChar:
		return "special"
	default:
		return "unknown"
	}
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func toUpper(c byte) byte { return c - 'a' + 'A' }
