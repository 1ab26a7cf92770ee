// Package crypto holds memory hygiene helpers for password material.
// Buffers that held password characters are wiped before they are released.
package crypto

import "crypto/subtle"

// SecureZero overwrites a byte slice with zeros so password characters do not
// linger in memory after use.
//
// Due to Go's garbage collector and string immutability this cannot guarantee
// complete erasure; the returned string itself is never wiped.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	// Constant-time copy keeps the compiler from eliding the store.
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// SecureZeroMultiple zeros multiple byte slices in a single call.
func SecureZeroMultiple(slices ...[]byte) {
	for _, s := range slices {
		SecureZero(s)
	}
}

// Scratch hands out working buffers and wipes all of them on Close.
//
// Example:
//
//	s := NewScratch()
//	defer s.Close()
//	slots := s.Alloc(length)
type Scratch struct {
	bufs   [][]byte
	closed bool
}

// NewScratch creates an empty Scratch.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Alloc returns a zeroed buffer of length n tracked for wiping.
// It returns nil once the Scratch has been closed.
func (s *Scratch) Alloc(n int) []byte {
	if s.closed {
		return nil
	}
	b := make([]byte, n)
	s.bufs = append(s.bufs, b)
	return b
}

// Close zeros every buffer handed out by Alloc.
// This method is idempotent - multiple calls are safe.
func (s *Scratch) Close() {
	if s.closed {
		return
	}
	SecureZeroMultiple(s.bufs...)
	s.bufs = nil
	s.closed = true
}
