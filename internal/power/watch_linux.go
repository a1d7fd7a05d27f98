//go:build linux

package power

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// WatchSleep subscribes to logind's PrepareForSleep signal and reports
// transitions on the returned channel: true when the machine is about
// to suspend, false when it has resumed. The channel closes when ctx
// is cancelled.
func WatchSleep(ctx context.Context) (<-chan bool, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("system bus: %w", err)
	}
	err = conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.login1.Manager"),
		dbus.WithMatchMember("PrepareForSleep"),
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("match PrepareForSleep: %w", err)
	}

	sigs := make(chan *dbus.Signal, 8)
	conn.Signal(sigs)

	out := make(chan bool, 1)
	go func() {
		defer conn.Close()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-sigs:
				if !ok {
					return
				}
				if len(sig.Body) != 1 {
					continue
				}
				entering, ok := sig.Body[0].(bool)
				if !ok {
					continue
				}
				select {
				case out <- entering:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
