package ppm

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Default thresholds in the caller's time unit. They suit conventional RC
// gear when the unit is microseconds: channel pulses run roughly
// 800-2200us and the inter-frame gap is several milliseconds.
const (
	DefaultMinChannelDuration = 800
	DefaultMaxChannelDuration = 2200
	DefaultMinSyncDuration    = 3000
	DefaultMinChannels        = 2
	DefaultMaxChannels        = MaxFrameChannels
)

// Configuration errors reported by New. All are construction-time; a
// running parser never returns errors.
var (
	ErrChannelRange = errors.New("invalid channel duration range")
	ErrSyncOverlap  = errors.New("sync threshold not above channel range")
	ErrChannelCount = errors.New("invalid channel count bounds")
)

// Config carries the classification thresholds for a Parser. Zero-valued
// fields take the defaults above.
//
// The defaults assume a unit comparable to microseconds; with a narrow
// timestamp type such as uint8 they do not fit and every duration field
// must be set explicitly.
type Config[T constraints.Unsigned] struct {
	// MinChannelDuration is the shortest interval accepted as a channel
	// pulse. Anything shorter is treated as noise.
	MinChannelDuration T
	// MaxChannelDuration is the longest interval accepted as a channel
	// pulse. Must be strictly below MinSyncDuration.
	MaxChannelDuration T
	// MinSyncDuration is the interval at or above which a gap is taken as
	// a frame boundary.
	MinSyncDuration T
	// MinChannels and MaxChannels bound the number of channels a valid
	// frame may carry. MaxChannels cannot exceed MaxFrameChannels.
	MinChannels int
	MaxChannels int
}

func (c Config[T]) withDefaults() Config[T] {
	c.MinChannelDuration = defaultDuration(c.MinChannelDuration, DefaultMinChannelDuration)
	c.MaxChannelDuration = defaultDuration(c.MaxChannelDuration, DefaultMaxChannelDuration)
	c.MinSyncDuration = defaultDuration(c.MinSyncDuration, DefaultMinSyncDuration)
	if c.MinChannels == 0 {
		c.MinChannels = DefaultMinChannels
	}
	if c.MaxChannels == 0 {
		c.MaxChannels = DefaultMaxChannels
	}
	return c
}

func (c Config[T]) validate() error {
	if c.MinChannelDuration == 0 || c.MinChannelDuration > c.MaxChannelDuration {
		return fmt.Errorf("%w: min %d, max %d", ErrChannelRange, c.MinChannelDuration, c.MaxChannelDuration)
	}
	if c.MinSyncDuration <= c.MaxChannelDuration {
		return fmt.Errorf("%w: sync %d, channel max %d", ErrSyncOverlap, c.MinSyncDuration, c.MaxChannelDuration)
	}
	if c.MinChannels < 1 || c.MinChannels > c.MaxChannels {
		return fmt.Errorf("%w: min %d, max %d", ErrChannelCount, c.MinChannels, c.MaxChannels)
	}
	if c.MaxChannels > MaxFrameChannels {
		return fmt.Errorf("%w: max %d exceeds frame capacity %d", ErrChannelCount, c.MaxChannels, MaxFrameChannels)
	}
	return nil
}

// defaultDuration substitutes fallback for a zero value. The conversion
// goes through a variable because the default constants are not
// representable in every unsigned type; narrow types truncate, which is
// why Config documents that they need explicit thresholds.
func defaultDuration[T constraints.Unsigned](v T, fallback uint64) T {
	if v != 0 {
		return v
	}
	return T(fallback)
}
