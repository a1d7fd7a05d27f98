//go:build darwin

package power

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// runAction shells out to the stock macOS utilities. pmset handles the
// low-impact actions, System Events handles the ones that need the
// session to wind down cleanly.
func runAction(ctx context.Context, kind pwrlib.Action) error {
	switch kind {
	case pwrlib.ActionDisplayOff:
		return run(ctx, "pmset", "displaysleepnow")
	case pwrlib.ActionSleep:
		return run(ctx, "pmset", "sleepnow")
	case pwrlib.ActionShutdown:
		return tellSystemEvents(ctx, "shut down")
	case pwrlib.ActionRestart:
		return tellSystemEvents(ctx, "restart")
	case pwrlib.ActionSignOut:
		return tellSystemEvents(ctx, "log out")
	case pwrlib.ActionHibernate:
		// macOS has no separate hibernate entry point; safe sleep is
		// governed by the hibernatemode pmset setting.
		return ErrUnsupported
	default:
		return ErrUnsupported
	}
}

func tellSystemEvents(ctx context.Context, verb string) error {
	script := fmt.Sprintf(`tell application "System Events" to %s`, verb)
	return run(ctx, "osascript", "-e", script)
}

func run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}
