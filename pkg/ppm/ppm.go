// Package ppm decodes Pulse-Position-Modulation pulse trains of the kind
// produced by radio-control receivers: N channel values encoded as N
// consecutive pulse-start-to-pulse-start intervals, terminated by a
// distinctly longer sync gap.
//
// The caller supplies only the timestamp of each pulse's rising edge,
// typically from a GPIO edge interrupt or an input-capture timer. The
// parser reconstructs complete frames from the timestamp stream:
//
//	parser, err := ppm.New(ppm.Config[ppm.Microseconds]{})
//	...
//	parser.Intake(timestamp) // from the edge handler
//	...
//	if frame, ok := parser.TakeFrame(); ok {
//		channels := frame.Channels()
//	}
//
// The timestamp width and unit are the caller's choice; microseconds match
// conventional RC pulse widths. Counter overflow is expected and handled by
// modular arithmetic, provided the counter wraps at most once between
// pulses. Intake and TakeFrame never allocate and never block, so they are
// safe to drive from an interrupt context, but the parser performs no
// internal locking: all calls must come from a single execution context.
package ppm

// Microseconds is the conventional timestamp type for RC signal work.
type Microseconds = uint32
