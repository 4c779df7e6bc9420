package cpu

import (
	"encoding/binary"
)

const (
	MEGA_BYTE  = 1 << 20
	STACK_SIZE = 4 * MEGA_BYTE // Default stack size, in bytes.
)

// Stack is a fixed capacity byte stack. The stack pointer is kept in the
// sp register; it is the offset of the next free byte.
type Stack struct {
	Data []byte
}

// NewStack creates a stack of size bytes.
func NewStack(size int) (s Stack) {
	s = Stack{
		Data: make([]byte, size),
	}
	return
}

// Capacity returns the stack size in bytes.
func (s *Stack) Capacity() uint64 {
	return uint64(len(s.Data))
}

// Push writes a value of the width at sp, and returns the new sp.
func (s *Stack) Push(sp uint64, width Width, value uint64) (next uint64, err error) {
	size := uint64(width.Bytes())
	if sp > s.Capacity() || s.Capacity()-sp < size {
		err = ErrStackFull
		return
	}

	var buff [8]byte
	binary.LittleEndian.PutUint64(buff[:], value)
	copy(s.Data[sp:sp+size], buff[:size])

	next = sp + size
	return
}

// Pop reads a value of the width below sp, and returns the new sp.
func (s *Stack) Pop(sp uint64, width Width) (value uint64, next uint64, err error) {
	value, err = s.Peek(sp, width)
	if err != nil {
		return
	}

	next = sp - uint64(width.Bytes())
	return
}

// Peek reads a value of the width below sp.
func (s *Stack) Peek(sp uint64, width Width) (value uint64, err error) {
	size := uint64(width.Bytes())
	if sp > s.Capacity() {
		err = ErrStackFull
		return
	}
	if sp < size {
		err = ErrStackEmpty
		return
	}

	var buff [8]byte
	copy(buff[:size], s.Data[sp-size:sp])
	value = binary.LittleEndian.Uint64(buff[:])
	return
}

// Top returns up to count bytes below sp, lowest address first.
func (s *Stack) Top(sp uint64, count uint64) []byte {
	sp = min(sp, s.Capacity())
	count = min(count, sp)
	return s.Data[sp-count : sp]
}

// Reset zeros the stack contents.
func (s *Stack) Reset() {
	clear(s.Data)
}
