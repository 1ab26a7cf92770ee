// Package util provides the random source used by the password generator.
//
// Every draw goes through the Source interface so tests can count or script
// draws. The production implementation, CryptoSource, reads crypto/rand and
// is safe for concurrent use.
package util

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrEmptyRange is returned when a draw is requested over zero options.
var ErrEmptyRange = errors.New("random range must be positive")

// Source draws uniformly random integers.
type Source interface {
	// Intn returns a uniformly random int in [0, n). It fails for n <= 0.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand.Reader.
//
// rand.Int uses rejection sampling, so every value in [0, n) has probability
// exactly 1/n.
type CryptoSource struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	j, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("fatal crypto/rand error: %w", err)
	}
	return int(j.Int64()), nil
}

// Coin flips an unbiased coin.
func Coin(src Source) (bool, error) {
	n, err := src.Intn(2)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Choice returns a uniformly random element of set.
func Choice(src Source, set []byte) (byte, error) {
	if len(set) == 0 {
		return 0, ErrEmptyRange
	}
	i, err := src.Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// Shuffle permutes b in place with the Fisher-Yates algorithm.
func Shuffle(src Source, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
