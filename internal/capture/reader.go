package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tstellanova/ppm-decode/pkg/ppm"
)

// recordSize is one bridge record: a little-endian uint32 microsecond
// timestamp per rising edge.
const recordSize = 4

// Reader pumps timestamp records from a capture bridge into a parser.
// Run feeds the parser from its own goroutine while the caller polls
// TakeFrame, so the lock-free parser is only touched under mu.
type Reader struct {
	port Port

	mu     sync.Mutex
	parser *ppm.Parser[ppm.Microseconds]
}

func NewReader(port Port, parser *ppm.Parser[ppm.Microseconds]) *Reader {
	return &Reader{port: port, parser: parser}
}

// Run reads records until the stream ends, the context is cancelled, or
// the port fails. A clean end of stream returns nil.
func (r *Reader) Run(ctx context.Context) error {
	var buf [recordSize]byte
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := io.ReadFull(r.port, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				// A torn record means the bridge died mid-write.
				slog.Warn("capture stream ended on a partial record")
				return nil
			}
			return fmt.Errorf("capture read: %w", err)
		}

		ts := binary.LittleEndian.Uint32(buf[:])
		r.mu.Lock()
		r.parser.Intake(ts)
		r.mu.Unlock()
	}
}

// TakeFrame collects the most recently completed frame, if any.
func (r *Reader) TakeFrame() (ppm.Frame[ppm.Microseconds], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parser.TakeFrame()
}

func (r *Reader) Close() error {
	return r.port.Close()
}
