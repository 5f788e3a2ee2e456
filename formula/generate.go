package formula

import "math/rand/v2"

const (
	// atomLetters is the alphabet random atoms are drawn from.
	atomLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// negateProbability is the chance a generation step negates instead of
	// combining.
	negateProbability = 0.2
)

var binaryOps = [...]BinaryOp{OpIff, OpImplies, OpOr, OpAnd}

// RandomAtom returns an atom named by a uniformly chosen letter A-Z.
func RandomAtom() *Formula {
	a, _ := RandomAtomFrom(nil, atomLetters)
	return a
}

// RandomAtomFrom returns an atom named by a letter drawn uniformly from
// letters using rng. A nil rng uses the global source.
func RandomAtomFrom(rng *rand.Rand, letters string) (*Formula, error) {
	runes := []rune(letters)
	if len(runes) == 0 {
		return nil, ErrEmptyAtomSet
	}
	return NewAtom(runes[intN(rng, len(runes))]), nil
}

// Generate builds a random valid formula in between 1 and maxSteps
// construction steps. It is meant for fuzz and property tests.
func Generate(maxSteps int) *Formula {
	return GenerateWith(nil, maxSteps)
}

// GenerateWith is Generate with an explicit random source. Starting from a
// random atom, each step either negates the formula so far or combines it
// with a fresh random atom under a uniformly chosen binary connective.
func GenerateWith(rng *rand.Rand, maxSteps int) *Formula {
	f, _ := RandomAtomFrom(rng, atomLetters)
	if maxSteps < 1 {
		return f
	}
	steps := 1 + intN(rng, maxSteps)
	for range steps {
		if float64v(rng) < negateProbability {
			f = f.Negate()
			continue
		}
		atom, _ := RandomAtomFrom(rng, atomLetters)
		f = f.Combine(binaryOps[intN(rng, len(binaryOps))], atom)
	}
	return f
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

func float64v(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}
