//go:build !linux

package power

import "context"

// WatchSleep has no portable backing on this platform. The daemon
// falls back to tick-gap detection for wake handling.
func WatchSleep(_ context.Context) (<-chan bool, error) {
	return nil, ErrUnsupported
}
