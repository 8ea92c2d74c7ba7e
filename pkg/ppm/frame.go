package ppm

import "golang.org/x/exp/constraints"

// MaxFrameChannels is the most channels any frame can carry. Twenty is the
// theoretical ceiling for PPM in normal usage; real RC gear tops out well
// below it.
const MaxFrameChannels = 20

// Frame is one complete, ordered set of channel values bounded by two sync
// gaps. Storage is a fixed array so frames can be passed around by value
// without allocating.
type Frame[T constraints.Unsigned] struct {
	values [MaxFrameChannels]T
	count  int
}

// Count reports the number of channels decoded into the frame.
func (f *Frame[T]) Count() int { return f.count }

// Channels returns the decoded channel values in the order observed. The
// slice views the frame's own storage and is valid as long as the frame is.
func (f *Frame[T]) Channels() []T { return f.values[:f.count] }

// push is only called by the assembler, which enforces the configured
// channel bound before the capacity one matters.
func (f *Frame[T]) push(v T) {
	f.values[f.count] = v
	f.count++
}
