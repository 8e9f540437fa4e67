package passgen

import (
	"errors"
	"fmt"
	"math"
)

var ErrEmptyCharset = errors.New("character set is empty")
var ErrEmptyCategory = errors.New("character category is empty")
var ErrUnprintableSymbol = errors.New("symbol is not printable ascii")
var ErrDuplicateSymbol = errors.New("symbol appears more than once")

// Category is a named group of symbols.
// A generated password of sufficient length contains at least one symbol of every category
type Category struct {
	Name    string
	Symbols string
}

// Charset is an ordered, immutable pool of symbols made of one or more categories.
// The flat pool is the concatenation of the categories in the order they were given
type Charset struct {
	categories []Category
	pool       string
	members    [256]bool
}

// Default is the character set used by the binary contract.
// Glyphs that are easily confused with each other (0/O, 1/l/I, i, o) are left out
var Default = MustCharset( // nolint: gochecknoglobals
	Category{Name: "digits", Symbols: "23456789"},
	Category{Name: "lowercase", Symbols: "abcdefghjkmnpqrstuvwxyz"},
	Category{Name: "uppercase", Symbols: "ABCDEFGHJKLMNPQRSTUVWXYZ"},
	Category{Name: "symbols", Symbols: "!@#$%^&*()-_=+<>?"},
)

// NewCharset validates the categories and builds a charset out of them.
// Every symbol must be printable ascii and must appear in the pool exactly once
func NewCharset(categories ...Category) (*Charset, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCharset
	}
	cs := &Charset{
		categories: make([]Category, len(categories)),
	}
	copy(cs.categories, categories)
	for _, cat := range categories {
		if cat.Symbols == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, cat.Name)
		}
		for i := 0; i < len(cat.Symbols); i++ {
			sym := cat.Symbols[i]
			if sym < '!' || sym > '~' {
				return nil, fmt.Errorf("%w: %#x in %q", ErrUnprintableSymbol, sym, cat.Name)
			}
			if cs.members[sym] {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateSymbol, sym, cat.Name)
			}
			cs.members[sym] = true
		}
		cs.pool += cat.Symbols
	}
	return cs, nil
}

func MustCharset(categories ...Category) *Charset {
	cs, err := NewCharset(categories...)
	if err != nil {
		panic(err)
	}
	return cs
}

// Len returns the total number of symbols in the pool
func (cs *Charset) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.pool)
}

func (cs *Charset) Contains(sym byte) bool {
	if cs == nil {
		return false
	}
	return cs.members[sym]
}

// Symbol returns the symbol found at the given offset of the flat pool.
// The offset must be within [0, Len())
func (cs *Charset) Symbol(offset int) byte {
	return cs.pool[offset]
}

// Categories returns a copy of the charset categories
func (cs *Charset) Categories() []Category {
	if cs == nil {
		return nil
	}
	cats := make([]Category, len(cs.categories))
	copy(cats, cs.categories)
	return cats
}

// String returns the flat pool
func (cs *Charset) String() string {
	if cs == nil {
		return ""
	}
	return cs.pool
}

// Entropy estimates the strength of a password of given length in bits,
// assuming every position is drawn uniformly from the whole pool
func (cs *Charset) Entropy(length int) float64 {
	if length <= 0 || cs.Len() == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(cs.Len()))
}
