package pkg

import "fmt"

// DefaultArenaCap is the up-front key storage reserved per worker.
const DefaultArenaCap = 1024 * 1024

// Key refers to bytes interned in one Arena. It stays valid while the arena
// grows because it stores an offset, not a pointer.
type Key struct {
	Off, Len uint32
}

// Arena is an append-only byte store owned by a single worker. Only the most
// recently interned region may be retracted.
type Arena struct {
	buf []byte
}

func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultArenaCap
	}
	return &Arena{buf: make([]byte, 0, capacity)}
}

func (a *Arena) Intern(bs []byte) Key {
	off := len(a.buf)
	a.buf = append(a.buf, bs...)
	return Key{Off: uint32(off), Len: uint32(len(bs))}
}

func (a *Arena) Retract(k Key) {
	if int(k.Off)+int(k.Len) != len(a.buf) {
		panic(fmt.Sprintf("arena: retract of %d bytes at %d is not the last region (len %d)", k.Len, k.Off, len(a.buf)))
	}
	a.buf = a.buf[:k.Off]
}

func (a *Arena) Bytes(k Key) []byte {
	return a.buf[k.Off : k.Off+k.Len : k.Off+k.Len]
}

func (a *Arena) Len() int {
	return len(a.buf)
}
