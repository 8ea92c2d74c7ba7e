package ppm

import "golang.org/x/exp/constraints"

type assemblerState uint8

const (
	// awaitingSync: no frame boundary recognized yet; channel pulses are
	// orphans and cannot be assigned to a frame.
	awaitingSync assemblerState = iota
	// accumulating: a sync gap has been seen and channel pulses belong to
	// the working frame.
	accumulating
)

// frameAssembler classifies inter-pulse intervals and assembles channel
// intervals into frames. Classification is:
//
//	d >= MinSyncDuration                          sync gap (frame boundary)
//	MinChannelDuration <= d <= MaxChannelDuration channel pulse
//	anything else                                 noise, ignored
//
// The noise bucket covers zero intervals, runt pulses, and the dead zone
// between MaxChannelDuration and MinSyncDuration. Noise never changes
// state: a single mistimed edge must not destroy synchronization acquired
// over many prior frames.
type frameAssembler[T constraints.Unsigned] struct {
	cfg     Config[T]
	state   assemblerState
	working Frame[T]
}

// consume advances the state machine by one interval. It returns a frame
// and true when the interval completed one.
func (a *frameAssembler[T]) consume(d T) (Frame[T], bool) {
	switch {
	case d >= a.cfg.MinSyncDuration:
		return a.syncGap()
	case d >= a.cfg.MinChannelDuration && d <= a.cfg.MaxChannelDuration:
		a.channelPulse(d)
	}
	return Frame[T]{}, false
}

// syncGap handles a frame boundary. PPM carries no delimiter other than
// the long gap itself, so every qualifying gap both ends the frame in
// progress and starts the next: accumulation always restarts fresh here,
// even when the finished frame is too short to emit.
func (a *frameAssembler[T]) syncGap() (Frame[T], bool) {
	done := a.working
	complete := a.state == accumulating && done.count >= a.cfg.MinChannels

	a.state = accumulating
	a.working = Frame[T]{}

	if !complete {
		return Frame[T]{}, false
	}
	return done, true
}

func (a *frameAssembler[T]) channelPulse(d T) {
	if a.state != accumulating {
		return
	}
	if a.working.count >= a.cfg.MaxChannels {
		// More pulses since the last gap than any valid frame holds:
		// we are desynchronized. Drop everything rather than emit an
		// overlong, likely corrupt frame.
		a.state = awaitingSync
		a.working = Frame[T]{}
		return
	}
	a.working.push(d)
}

func (a *frameAssembler[T]) reset() {
	a.state = awaitingSync
	a.working = Frame[T]{}
}
