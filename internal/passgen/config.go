package passgen

import (
	"fmt"

	"passgen/internal/errors"
)

// Config is the immutable input of one generation.
type Config struct {
	Length int // Password length; 0 yields an empty password

	AllowUppercase bool // At least one of AllowUppercase/AllowLowercase must be set
	AllowLowercase bool
	AllowNumbers   bool

	AllowCommonSpecial   bool // !@#$%^&*()
	AllowUncommonSpecial bool // ,.';:/<>[]{}~|
	AllowMathChars       bool // =+-

	// Free-fill draws r in [0,100]: r < LowBoundary picks a letter,
	// r < MidBoundary a digit, anything else a special character.
	LowBoundary int
	MidBoundary int
}

// DefaultConfig returns a 12 character configuration with every class
// enabled and the 45/66 bucket boundaries.
func DefaultConfig() Config {
	return Config{
		Length:               DefaultLength,
		AllowUppercase:       true,
		AllowLowercase:       true,
		AllowNumbers:         true,
		AllowCommonSpecial:   true,
		AllowUncommonSpecial: true,
		AllowMathChars:       true,
		LowBoundary:          DefaultLowBoundary,
		MidBoundary:          DefaultMidBoundary,
	}
}

// Plan is a validated Config with its derived character-class data.
type Plan struct {
	Config

	// Specials is the usable special-character set, in group order.
	Specials []byte
	// Required lists the classes that must appear at least once.
	Required []Class
}

// RequiredNames returns the names of the required classes, for logging.
func (p *Plan) RequiredNames() []string {
	names := make([]string, len(p.Required))
	for i, c := range p.Required {
		names[i] = c.String()
	}
	return names
}

// Resolve validates cfg and derives the usable special characters and the
// required classes. It is pure and draws no randomness.
func Resolve(cfg Config) (*Plan, error) {
	if !cfg.AllowUppercase && !cfg.AllowLowercase {
		return nil, errors.ErrConflictingConstraint
	}
	if cfg.Length < 0 {
		return nil, errors.NewFieldError("length", fmt.Sprintf("must not be negative, got %d", cfg.Length), errors.ErrInvalidLength)
	}
	if cfg.LowBoundary < 0 || cfg.LowBoundary > MaxBoundary {
		return nil, errors.NewFieldError("low_boundary", fmt.Sprintf("must be within [0,%d], got %d", MaxBoundary, cfg.LowBoundary), errors.ErrInvalidBoundary)
	}
	if cfg.MidBoundary < cfg.LowBoundary || cfg.MidBoundary > MaxBoundary {
		return nil, errors.NewFieldError("mid_boundary", fmt.Sprintf("must be within [%d,%d], got %d", cfg.LowBoundary, MaxBoundary, cfg.MidBoundary), errors.ErrInvalidBoundary)
	}

	var specials []byte
	if cfg.AllowCommonSpecial {
		specials = append(specials, CommonSpecial...)
	}
	if cfg.AllowUncommonSpecial {
		specials = append(specials, UncommonSpecial...)
	}
	if cfg.AllowMathChars {
		specials = append(specials, MathChars...)
	}

	required := make([]Class, 0, 4)
	if cfg.AllowUppercase {
		required = append(required, UpperLetter)
	}
	if cfg.AllowLowercase {
		required = append(required, LowerLetter)
	}
	if cfg.AllowNumbers {
		required = append(required, Digit)
	}
	if len(specials) > 0 {
		required = append(required, SpecialChar)
	}

	return &Plan{Config: cfg, Specials: specials, Required: required}, nil
}
