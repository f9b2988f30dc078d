package server

import "sync"

// FrameBuffer holds the most recent annotated JPEG frame published by the
// pipeline. Stream clients read from the buffer instead of the camera so the
// pipeline stays the only camera reader.
type FrameBuffer struct {
	mu   sync.RWMutex
	data []byte
	seq  uint64
}

// NewFrameBuffer creates an empty frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Publish replaces the buffered frame. The bytes are copied so callers may
// reuse their encode buffer.
func (b *FrameBuffer) Publish(jpeg []byte) {
	cp := make([]byte, len(jpeg))
	copy(cp, jpeg)

	b.mu.Lock()
	b.data = cp
	b.seq++
	b.mu.Unlock()
}

// Latest returns the buffered frame and its sequence number. The returned
// slice must not be modified. A zero sequence means no frame has been
// published yet.
func (b *FrameBuffer) Latest() ([]byte, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data, b.seq
}
