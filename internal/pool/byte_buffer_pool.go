package pool

import (
	"sync"

	"github.com/arloliu/enumrefl/format"
)

// LabelBufferDefaultSize is the default capacity of a ByteBuffer obtained from the pool.
const (
	LabelBufferDefaultSize  = 1024 // 1KiB
	LabelBufferMaxThreshold = format.MaxBlobSize
)

// ByteBuffer is a growable scratch buffer used while encoding label blobs.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// String returns a copy of the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+requiredBytes)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// WriteCString appends s followed by a NUL terminator.
func (bb *ByteBuffer) WriteCString(s string) {
	bb.B = append(bb.B, s...)
	bb.B = append(bb.B, 0)
}

// WriteZeros appends n zero bytes.
func (bb *ByteBuffer) WriteZeros(n int) {
	for range n {
		bb.B = append(bb.B, 0)
	}
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers larger than maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var labelDefaultPool = NewByteBufferPool(LabelBufferDefaultSize, LabelBufferMaxThreshold)

// GetLabelBuffer retrieves a ByteBuffer from the default label pool.
func GetLabelBuffer() *ByteBuffer {
	return labelDefaultPool.Get()
}

// PutLabelBuffer returns a ByteBuffer to the default label pool.
func PutLabelBuffer(bb *ByteBuffer) {
	labelDefaultPool.Put(bb)
}
