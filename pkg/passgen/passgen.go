// Package passgen deterministically derives passwords from a 64-bit seed.
//
// The same seed and length always produce the same password.
// Generation is a pure computation: it does no I/O, holds no shared mutable state
// and never retains the destination buffer, so it is safe to call concurrently.
package passgen

import (
	"errors"
	"slices"
)

var ErrNegativeLength = errors.New("password length cannot be negative")

type Generator struct {
	charset *Charset
}

func New(charset *Charset) Generator {
	return Generator{charset: charset}
}

// Charset returns the charset the generator draws from
func (g Generator) Charset() *Charset {
	return g.charset
}

// Fill writes len(dst) symbols derived from seed into dst.
// When dst is at least as long as the number of categories,
// every category is guaranteed to appear in it at least once.
// dst is only written to; on error it is left untouched
func (g Generator) Fill(dst []byte, seed uint64) error {
	cs := g.charset
	if cs.Len() == 0 {
		return ErrEmptyCharset
	}
	if len(dst) == 0 {
		return nil
	}
	r := newRNG(seed)
	reserved := reservePositions(r, len(dst), len(cs.categories))
	for i := range dst {
		if cat := slices.Index(reserved, i); cat >= 0 {
			symbols := cs.categories[cat].Symbols
			dst[i] = symbols[r.intn(len(symbols))]
		} else {
			dst[i] = cs.Symbol(r.intn(cs.Len()))
		}
	}
	return nil
}

// String is a convenience wrapper around Fill that allocates the password
func (g Generator) String(length int, seed uint64) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	buf := make([]byte, length)
	if err := g.Fill(buf, seed); err != nil {
		return "", err
	}
	return string(buf), nil
}

// reservePositions picks one distinct position per category.
// The k positions are sampled with Floyd's algorithm and then shuffled,
// so that the i-th element holds the position reserved for the i-th category.
// Nothing is reserved when the password is too short to hold every category
func reservePositions(r *rng, length, k int) []int {
	if length < k {
		return nil
	}
	positions := make([]int, 0, k)
	for j := length - k; j < length; j++ {
		t := r.intn(j + 1)
		if slices.Contains(positions, t) {
			t = j
		}
		positions = append(positions, t)
	}
	for i := k - 1; i > 0; i-- {
		j := r.intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
	return positions
}

// Fill fills dst using the Default charset
func Fill(dst []byte, seed uint64) error {
	return New(Default).Fill(dst, seed)
}

// String generates a password of given length using the Default charset
func String(length int, seed uint64) (string, error) {
	return New(Default).String(length, seed)
}
