package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Seed draws a fresh 64-bit seed from the operating system CSPRNG.
// Use it when the caller has not pinned a seed for reproducible output
func Seed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
