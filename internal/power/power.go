// Package power executes OS power operations: display-off, sleep,
// shutdown, restart, sign-out and hibernate. Each platform provides its
// own backend; Linux goes through logind over the system D-Bus, Windows
// through the Win32 power APIs.
package power

import (
	"context"
	"errors"
	"fmt"

	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// ErrUnsupported is returned when the current platform cannot perform the
// requested action.
var ErrUnsupported = errors.New("power action not supported on this platform")

// SystemExecutor performs power actions against the running OS. It
// implements the engine's Executor contract.
type SystemExecutor struct {
	log logger.Logger
}

// NewSystemExecutor returns an executor logging through l.
func NewSystemExecutor(l logger.Logger) *SystemExecutor {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &SystemExecutor{log: l}
}

// Execute performs the given action. ActionNone is a no-op. Failures are
// returned to the caller; the executor does not retry.
func (x *SystemExecutor) Execute(ctx context.Context, kind pwrlib.Action) error {
	if kind == pwrlib.ActionNone {
		return nil
	}
	if !kind.Valid() {
		return fmt.Errorf("execute: unknown action %d", int(kind))
	}
	x.log.Info("power: executing %s", kind)
	if err := runAction(ctx, kind); err != nil {
		return fmt.Errorf("execute %s: %w", kind, err)
	}
	return nil
}
