package passgen

import (
	"passgen/internal/crypto"
	"passgen/internal/errors"
	"passgen/internal/log"
	"passgen/internal/util"
)

// Generator builds passwords from a random source.
// It holds no per-call state, so one Generator may serve concurrent callers
// as long as its Source is safe for concurrent use.
type Generator struct {
	src    util.Source
	logger log.Logger
}

// NewGenerator returns a Generator drawing from src and logging to logger.
// A nil src selects util.CryptoSource; a nil logger discards everything.
func NewGenerator(src util.Source, logger log.Logger) *Generator {
	if src == nil {
		src = util.CryptoSource{}
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Generator{src: src, logger: logger}
}

// Generate creates one password from cfg using crypto/rand.
//
// Returns errors.ErrConflictingConstraint when both letter cases are disabled.
func Generate(cfg Config) (string, error) {
	return NewGenerator(nil, nil).Generate(cfg)
}

// Generate resolves cfg and builds one password from it.
func (g *Generator) Generate(cfg Config) (string, error) {
	plan, err := Resolve(cfg)
	if err != nil {
		return "", err
	}
	g.logger.Debug("plan resolved",
		log.Int("length", plan.Length),
		log.Strings("required", plan.RequiredNames()),
		log.Int("specials", len(plan.Specials)),
	)
	return g.Build(plan)
}

// Build runs the four generation phases over plan:
//
//  1. one character per required class, classes in random order, each in a
//     random free slot
//  2. weighted bucket fill of every remaining slot
//  3. random case for the letters placed in phase 2
//  4. Fisher-Yates shuffle of the whole password
//
// A zero length returns "" without drawing.
func (g *Generator) Build(plan *Plan) (string, error) {
	n := plan.Length
	if n <= 0 {
		return "", nil
	}

	scratch := crypto.NewScratch()
	defer scratch.Close()

	slots := scratch.Alloc(n)
	pinned := make([]bool, n)
	free := make([]int, n)
	for i := range free {
		free[i] = i
	}

	// Phase 1: mandatory coverage.
	classes := append([]Class(nil), plan.Required...)
	placed := 0
	for len(classes) > 0 && len(free) > 0 {
		ci, err := g.src.Intn(len(classes))
		if err != nil {
			return "", errors.NewRandError("class", err)
		}
		class := classes[ci]
		classes[ci] = classes[len(classes)-1]
		classes = classes[:len(classes)-1]

		c, err := g.classChar(plan, class)
		if err != nil {
			return "", err
		}
		slot, err := g.takeSlot(&free)
		if err != nil {
			return "", err
		}
		slots[slot] = c
		pinned[slot] = true
		placed++
	}

	// Phase 2: weighted free fill.
	for len(free) > 0 {
		slot, err := g.takeSlot(&free)
		if err != nil {
			return "", err
		}
		r, err := g.src.Intn(bucketRange)
		if err != nil {
			return "", errors.NewRandError("bucket", err)
		}
		c, err := g.fill(plan, r)
		if err != nil {
			return "", err
		}
		slots[slot] = c
	}

	// Phase 3: case randomization. Pinned slots keep their class.
	for i, c := range slots {
		if pinned[i] || !isLower(c) {
			continue
		}
		switch {
		case !plan.AllowLowercase:
			slots[i] = toUpper(c)
		case plan.AllowUppercase:
			upper, err := util.Coin(g.src)
			if err != nil {
				return "", errors.NewRandError("coin", err)
			}
			if upper {
				slots[i] = toUpper(c)
			}
		}
	}

	// Phase 4: final shuffle.
	if err := util.Shuffle(g.src, slots); err != nil {
		return "", errors.NewRandError("shuffle", err)
	}

	g.logger.Debug("password built",
		log.Int("length", n),
		log.Int("mandatory", placed),
		log.Int("free_fill", n-placed),
	)
	return string(slots), nil
}

// takeSlot removes a uniformly random index from free and returns it.
func (g *Generator) takeSlot(free *[]int) (int, error) {
	f := *free
	i, err := g.src.Intn(len(f))
	if err != nil {
		return 0, errors.NewRandError("slot", err)
	}
	slot := f[i]
	f[i] = f[len(f)-1]
	*free = f[:len(f)-1]
	return slot, nil
}

// classChar draws one character of class.
func (g *Generator) classChar(plan *Plan, class Class) (byte, error) {
	switch class {
	case UpperLetter:
		c, err := g.letter()
		return toUpper(c), err
	case LowerLetter:
		return g.letter()
	case Digit:
		return g.digit()
	default:
		return g.special(plan)
	}
}

// fill maps the bucket draw r to a character. Each bucket falls back to a
// letter when its preferred class is unavailable, so a slot is always filled.
func (g *Generator) fill(plan *Plan, r int) (byte, error) {
	switch {
	case r < plan.LowBoundary:
		return g.letter()

	case r < plan.MidBoundary:
		if plan.AllowNumbers {
			return g.digit()
		}
		if len(plan.Specials) > 0 {
			special, err := util.Coin(g.src)
			if err != nil {
				return 0, errors.NewRandError("coin", err)
			}
			if special {
				return g.special(plan)
			}
		}
		return g.letter()

	default:
		if len(plan.Specials) > 0 {
			return g.special(plan)
		}
		if plan.AllowNumbers {
			digit, err := util.Coin(g.src)
			if err != nil {
				return 0, errors.NewRandError("coin", err)
			}
			if digit {
				return g.digit()
			}
		}
		return g.letter()
	}
}

// letter draws a lowercase letter; phase 3 decides its final case.
func (g *Generator) letter() (byte, error) {
	i, err := g.src.Intn(len(alphabet))
	if err != nil {
		return 0, errors.NewRandError("letter", err)
	}
	return alphabet[i], nil
}

func (g *Generator) digit() (byte, error) {
	d, err := g.src.Intn(10)
	if err != nil {
		return 0, errors.NewRandError("digit", err)
	}
	return byte('0' + d), nil
}

func (g *Generator) special(plan *Plan) (byte, error) {
	c, err := util.Choice(g.src, plan.Specials)
	if err != nil {
		return 0, errors.NewRandError("special", err)
	}
	return c, nil
}
