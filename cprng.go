package hypotest

import (
	"crypto/rand"
	"encoding/binary"
)

// CPRNG is a cryptographically secure random number generator that reads random bytes
// from crypto/rand.Reader in batches to reduce the number of OS calls. It is used to pick
// seeds when the caller does not supply one.
// This RNG is thread-safe as long as each goroutine uses its own instance.
type CPRNG struct {
	bufPos uint32
	buf    []byte
}

// NewCPRNG creates a new CPRNG with a buffer capacity of capBytes (at least 8).
// The buffer is filled upon creation and refilled as needed.
func NewCPRNG(capBytes uint32) *CPRNG {
	if capBytes < 8 {
		capBytes = 8 // minimum buffer size to hold at least one uint64
	}
	b := &CPRNG{buf: make([]byte, capBytes)}
	if _, err := rand.Read(b.buf); err != nil {
		panic(err)
	}
	return b
}

// ensure that n bytes are available, otherwise refill the buffer
func (c *CPRNG) ensure(n int) {
	if c.bufPos+uint32(n) > uint32(len(c.buf)) {
		if _, err := rand.Read(c.buf); err != nil {
			panic(err)
		}
		c.bufPos = 0
	}
}

// Uint64 returns a uniformly distributed uint64.
func (c *CPRNG) Uint64() uint64 {
	c.ensure(8)
	v := binary.LittleEndian.Uint64(c.buf[c.bufPos : c.bufPos+8])
	c.bufPos += 8
	return v
}
