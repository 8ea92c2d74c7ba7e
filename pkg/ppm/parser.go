package ppm

import "golang.org/x/exp/constraints"

// Parser is the public decoding surface: it receives pulse-start
// timestamps and holds the most recently completed frame until the caller
// collects it.
//
// A Parser must be constructed and owned by the embedding application and
// passed by reference into whatever edge-event or polling mechanism drives
// it; there is no package-level instance.
type Parser[T constraints.Unsigned] struct {
	tracker   IntervalTracker[T]
	assembler frameAssembler[T]

	// Single-slot mailbox: the newest complete frame wins, so an
	// infrequent poller sees fresh data rather than a growing backlog.
	ready    Frame[T]
	hasReady bool
}

// New builds a Parser from cfg, filling zero-valued fields with the
// documented defaults. It returns a configuration error when the threshold
// ordering or channel count bounds are invalid; no parser is returned in
// that case.
func New[T constraints.Unsigned](cfg Config[T]) (*Parser[T], error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Parser[T]{assembler: frameAssembler[T]{cfg: cfg}}, nil
}

// Intake feeds one pulse-start timestamp into the decoder. Its only effect
// is internal state mutation, observable via TakeFrame. It never
// allocates, blocks, or performs I/O.
func (p *Parser[T]) Intake(ts T) {
	d, ok := p.tracker.Observe(ts)
	if !ok {
		return
	}
	if frame, done := p.assembler.consume(d); done {
		p.ready = frame
		p.hasReady = true
	}
}

// TakeFrame hands over the buffered frame, if any, and clears the slot.
// A second call without an intervening completed frame reports false.
func (p *Parser[T]) TakeFrame() (Frame[T], bool) {
	if !p.hasReady {
		return Frame[T]{}, false
	}
	p.hasReady = false
	return p.ready, true
}

// Reset returns the parser to its just-constructed state: no timestamp
// reference, no partial frame, empty mailbox. Configuration is kept.
func (p *Parser[T]) Reset() {
	p.tracker.Reset()
	p.assembler.reset()
	p.hasReady = false
}
