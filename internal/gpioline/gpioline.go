// Package gpioline binds a PPM parser to a GPIO line via the Linux
// character device, feeding the parser the kernel timestamp of every
// rising edge.
package gpioline

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/tstellanova/ppm-decode/pkg/ppm"
)

// Input owns a requested GPIO line and the event plumbing into a parser.
// Edge events arrive on the gpiocdev event goroutine while the caller
// polls for frames from its own, so the parser, which does no locking of
// its own, is only touched under mu.
type Input struct {
	line *gpiocdev.Line

	mu     sync.Mutex
	parser *ppm.Parser[ppm.Microseconds]
}

// Request claims the line at offset on the named chip (e.g. "gpiochip0")
// with a pull-up and rising-edge detection, and starts delivering edge
// timestamps into parser.
func Request(chip string, offset int, parser *ppm.Parser[ppm.Microseconds]) (*Input, error) {
	in := &Input{parser: parser}

	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.WithPullUp,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(in.handleEvent),
	)
	if err != nil {
		if errors.Is(err, syscall.Errno(22)) {
			// Bias flags need Linux 5.5 or later.
			return nil, fmt.Errorf("request %s:%d (pull-up requires Linux 5.5+): %w", chip, offset, err)
		}
		return nil, fmt.Errorf("request %s:%d: %w", chip, offset, err)
	}

	in.line = line
	return in, nil
}

func (in *Input) handleEvent(evt gpiocdev.LineEvent) {
	if evt.Type != gpiocdev.LineEventRisingEdge {
		return
	}
	// Kernel event timestamps are nanoseconds since boot. The parser runs
	// on a wrapping microsecond counter, so the uint32 truncation here is
	// exactly the overflow its modular arithmetic absorbs.
	in.mu.Lock()
	in.parser.Intake(ppm.Microseconds(evt.Timestamp / time.Microsecond))
	in.mu.Unlock()
}

// TakeFrame collects the most recently completed frame, if any.
func (in *Input) TakeFrame() (ppm.Frame[ppm.Microseconds], bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.parser.TakeFrame()
}

// Close releases the GPIO line. The parser keeps its state and can be
// handed to another input.
func (in *Input) Close() error {
	return in.line.Close()
}
