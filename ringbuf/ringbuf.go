// Package ringbuf is a single-producer single-consumer byte ring for
// handing event records from the audio thread to the main thread. Writes
// never block and never allocate; a record that doesn't fit is dropped
// whole, so records never tear.
package ringbuf

import "sync/atomic"

// MaxRecord is the largest record TryWrite accepts. Records are framed
// with a single length byte.
const MaxRecord = 255

// Ring is the ring. Exactly one writer and one reader; the indices are
// published atomically, the buffer itself is plain memory.
type Ring struct {
	buf   []byte
	read  uint64
	write uint64
}

// New returns a ring holding up to size-1 bytes of framed records.
func New(size int) *Ring {
	if size < 2 {
		panic("ringbuf: size must be at least 2")
	}
	return &Ring{buf: make([]byte, size)}
}

func (r *Ring) size() uint64 { return uint64(len(r.buf)) }

// free keeps one slot open so a full ring is distinguishable from an
// empty one.
func (r *Ring) free(read, write uint64) uint64 {
	if read == write {
		return r.size() - 1
	}
	if read < write {
		return (r.size() - write) + read - 1
	}
	return read - write - 1
}

func (r *Ring) used(read, write uint64) uint64 {
	if read <= write {
		return write - read
	}
	return write + (r.size() - read)
}

// TryWrite frames rec with a length byte and appends it. It reports false,
// leaving the ring untouched, when rec exceeds MaxRecord or the ring has
// no room. Writer side only.
func (r *Ring) TryWrite(rec []byte) bool {
	if len(rec) > MaxRecord {
		return false
	}
	read := atomic.LoadUint64(&r.read)
	write := atomic.LoadUint64(&r.write)
	need := uint64(len(rec)) + 1
	if need > r.free(read, write) {
		return false
	}
	r.buf[write] = byte(len(rec))
	write = (write + 1) % r.size()
	for _, b := range rec {
		r.buf[write] = b
		write = (write + 1) % r.size()
	}
	atomic.StoreUint64(&r.write, write)
	return true
}

// TryRead copies the next record into p and reports whether there was one.
// The record is consumed whole even if p is shorter; n is the number of
// bytes copied. Reader side only.
func (r *Ring) TryRead(p []byte) (n int, ok bool) {
	read := atomic.LoadUint64(&r.read)
	write := atomic.LoadUint64(&r.write)
	if read == write {
		return 0, false
	}
	length := uint64(r.buf[read])
	read = (read + 1) % r.size()
	for i := uint64(0); i < length; i++ {
		b := r.buf[(read+i)%r.size()]
		if i < uint64(len(p)) {
			p[i] = b
			n++
		}
	}
	read = (read + length) % r.size()
	atomic.StoreUint64(&r.read, read)
	return n, true
}

// Buffered returns the framed byte count currently in the ring. Either
// side may call it; the answer is naturally stale.
func (r *Ring) Buffered() int {
	read := atomic.LoadUint64(&r.read)
	write := atomic.LoadUint64(&r.write)
	return int(r.used(read, write))
}
