//go:build linux

package power

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/godbus/dbus/v5"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

const (
	login1Dest = "org.freedesktop.login1"
	login1Path = dbus.ObjectPath("/org/freedesktop/login1")
	login1Mgr  = "org.freedesktop.login1.Manager"
)

// runAction performs the action through logind on the system bus.
// Display-off has no logind equivalent and shells out to xset.
func runAction(ctx context.Context, kind pwrlib.Action) error {
	if kind == pwrlib.ActionDisplayOff {
		return exec.CommandContext(ctx, "xset", "dpms", "force", "off").Run()
	}

	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("connect system bus: %w", err)
	}
	defer conn.Close()
	obj := conn.Object(login1Dest, login1Path)

	// The false argument skips logind's interactive polkit prompt.
	switch kind {
	case pwrlib.ActionSleep:
		return obj.CallWithContext(ctx, login1Mgr+".Suspend", 0, false).Err
	case pwrlib.ActionShutdown:
		return obj.CallWithContext(ctx, login1Mgr+".PowerOff", 0, false).Err
	case pwrlib.ActionRestart:
		return obj.CallWithContext(ctx, login1Mgr+".Reboot", 0, false).Err
	case pwrlib.ActionHibernate:
		return obj.CallWithContext(ctx, login1Mgr+".Hibernate", 0, false).Err
	case pwrlib.ActionSignOut:
		session := os.Getenv("XDG_SESSION_ID")
		if session == "" {
			session = "auto"
		}
		return obj.CallWithContext(ctx, login1Mgr+".TerminateSession", 0, session).Err
	default:
		return ErrUnsupported
	}
}
