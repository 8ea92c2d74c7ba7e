// ppmdump decodes a PPM pulse train and prints each frame's channel
// widths. The pulse source is either a GPIO line (default) or a serial
// capture bridge streaming 4-byte little-endian microsecond timestamps.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tstellanova/ppm-decode/internal/capture"
	"github.com/tstellanova/ppm-decode/internal/gpioline"
	"github.com/tstellanova/ppm-decode/pkg/ppm"
)

func main() {
	var (
		chip       = flag.String("chip", "gpiochip0", "GPIO chip name")
		line       = flag.Int("line", 0, "GPIO line offset carrying the PPM signal")
		serialDev  = flag.String("serial", "", "serial capture bridge device (overrides GPIO input)")
		baudRate   = flag.Int("baud", 115200, "serial baud rate")
		minChannel = flag.Uint("min-channel", ppm.DefaultMinChannelDuration, "minimum channel pulse width (us)")
		maxChannel = flag.Uint("max-channel", ppm.DefaultMaxChannelDuration, "maximum channel pulse width (us)")
		minSync    = flag.Uint("min-sync", ppm.DefaultMinSyncDuration, "minimum sync gap (us)")
		minChans   = flag.Int("min-channels", ppm.DefaultMinChannels, "minimum channels per frame")
		maxChans   = flag.Int("max-channels", ppm.DefaultMaxChannels, "maximum channels per frame")
		interval   = flag.Duration("poll", 20*time.Millisecond, "frame poll interval")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	parser, err := ppm.New(ppm.Config[ppm.Microseconds]{
		MinChannelDuration: uint32(*minChannel),
		MaxChannelDuration: uint32(*maxChannel),
		MinSyncDuration:    uint32(*minSync),
		MinChannels:        *minChans,
		MaxChannels:        *maxChans,
	})
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if *serialDev != "" {
		port, err := capture.Open(*serialDev, *baudRate)
		if err != nil {
			slog.Error("open serial port", slog.String("device", *serialDev), slog.Any("error", err))
			os.Exit(1)
		}
		reader := capture.NewReader(port, parser)
		defer reader.Close()

		slog.Info("reading capture bridge", slog.String("device", *serialDev), slog.Int("baud", *baudRate))
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		done := make(chan error, 1)
		go func() {
			done <- reader.Run(runCtx)
			cancel() // stream ended; stop polling
		}()
		pollFrames(runCtx, reader, *interval)

		err = <-done
		// A finite stream may finish with one last undelivered frame.
		if frame, ok := reader.TakeFrame(); ok {
			printFrame(&frame)
		}
		if err != nil && ctx.Err() == nil {
			slog.Error("capture stream failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	input, err := gpioline.Request(*chip, *line, parser)
	if err != nil {
		slog.Error("request GPIO line", slog.Any("error", err))
		os.Exit(1)
	}
	defer input.Close()

	slog.Info("listening for PPM pulses", slog.String("chip", *chip), slog.Int("line", *line))
	pollFrames(ctx, input, *interval)
}

// frameSource is satisfied by both pulse inputs.
type frameSource interface {
	TakeFrame() (ppm.Frame[ppm.Microseconds], bool)
}

func pollFrames(ctx context.Context, source frameSource, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if frame, ok := source.TakeFrame(); ok {
				printFrame(&frame)
			}
		}
	}
}

func printFrame(frame *ppm.Frame[ppm.Microseconds]) {
	var b strings.Builder
	for i, v := range frame.Channels() {
		fmt.Fprintf(&b, "[%d] %4dus ", i+1, v)
	}
	fmt.Println(b.String())
}
