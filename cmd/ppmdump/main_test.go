package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tstellanova/ppm-decode/pkg/ppm"
)

// stubSource serves canned frames and cancels the polling context once
// drained.
type stubSource struct {
	frames []ppm.Frame[ppm.Microseconds]
	cancel context.CancelFunc
}

func (s *stubSource) TakeFrame() (ppm.Frame[ppm.Microseconds], bool) {
	if len(s.frames) == 0 {
		s.cancel()
		return ppm.Frame[ppm.Microseconds]{}, false
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, true
}

func decodedFrame(t *testing.T) ppm.Frame[ppm.Microseconds] {
	t.Helper()
	parser, err := ppm.New(ppm.Config[ppm.Microseconds]{
		MinChannelDuration: 1000,
		MaxChannelDuration: 2000,
		MinSyncDuration:    3000,
		MinChannels:        4,
		MaxChannels:        8,
	})
	require.NoError(t, err)

	for _, ts := range []uint32{0, 3500, 5000, 6200, 7600, 8900, 12500} {
		parser.Intake(ts)
	}
	frame, ok := parser.TakeFrame()
	require.True(t, ok)
	return frame
}

func TestPollFramesDrainsSourceAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &stubSource{
		frames: []ppm.Frame[ppm.Microseconds]{decodedFrame(t)},
		cancel: cancel,
	}

	done := make(chan struct{})
	go func() {
		pollFrames(ctx, src, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pollFrames did not stop after the source drained")
	}
	require.Empty(t, src.frames, "the buffered frame must be collected")
}
