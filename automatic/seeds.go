package automatic

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

var ErrBadSeed = errors.New("seed must be 32 bytes, base64 URL-safe encoded")

// GenerateSeed returns a random 32-byte seed.
func GenerateSeed() [32]byte {
	return frand.Entropy256()
}

func EncodeSeed(seed [32]byte) string {
	return base64.RawURLEncoding.EncodeToString(seed[:])
}

// DecodeSeed parses a seed written by EncodeSeed. Padded and standard
// base64 are accepted too.
func DecodeSeed(s string) ([32]byte, error) {
	var seed [32]byte
	decoded, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(s)
		if err != nil {
			return seed, fmt.Errorf("%w: %w", ErrBadSeed, err)
		}
	}
	if len(decoded) != len(seed) {
		return seed, fmt.Errorf("%w: got %d bytes", ErrBadSeed, len(decoded))
	}
	copy(seed[:], decoded)
	return seed, nil
}

// gameSeed derives the seed of game index from a run seed, so a seeded run
// plays the same games whichever worker picks each one up.
func gameSeed(run [32]byte, index int) [32]byte {
	s := run
	tail := binary.LittleEndian.Uint64(s[24:])
	binary.LittleEndian.PutUint64(s[24:], tail^uint64(index))
	return s
}
