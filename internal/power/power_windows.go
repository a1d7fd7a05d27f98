//go:build windows

package power

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modpowrprof = windows.NewLazySystemDLL("powrprof.dll")

	procExitWindowsEx   = moduser32.NewProc("ExitWindowsEx")
	procSendMessageW    = moduser32.NewProc("SendMessageW")
	procSetSuspendState = modpowrprof.NewProc("SetSuspendState")
)

const (
	ewxLogoff      = 0x00000000
	ewxShutdown    = 0x00000001
	ewxReboot      = 0x00000002
	ewxForceIfHung = 0x00000010

	hwndBroadcast   = 0xffff
	wmSysCommand    = 0x0112
	scMonitorPower  = 0xf170
	monitorPowerOff = 2

	shutdownReason = 0x80000000 // SHTDN_REASON_FLAG_PLANNED
)

// runAction performs the action through the Win32 power APIs. Shutdown,
// restart and sign-out need SeShutdownPrivilege enabled first.
func runAction(_ context.Context, kind pwrlib.Action) error {
	switch kind {
	case pwrlib.ActionDisplayOff:
		ret, _, _ := procSendMessageW.Call(hwndBroadcast, wmSysCommand, scMonitorPower, monitorPowerOff)
		_ = ret
		return nil
	case pwrlib.ActionSleep:
		return setSuspendState(false)
	case pwrlib.ActionHibernate:
		return setSuspendState(true)
	case pwrlib.ActionShutdown:
		return exitWindows(ewxShutdown | ewxForceIfHung)
	case pwrlib.ActionRestart:
		return exitWindows(ewxReboot | ewxForceIfHung)
	case pwrlib.ActionSignOut:
		return exitWindows(ewxLogoff)
	default:
		return ErrUnsupported
	}
}

func setSuspendState(hibernate bool) error {
	var h uintptr
	if hibernate {
		h = 1
	}
	ret, _, err := procSetSuspendState.Call(h, 0, 0)
	if ret == 0 {
		return fmt.Errorf("SetSuspendState: %w", err)
	}
	return nil
}

func exitWindows(flags uint32) error {
	if flags != ewxLogoff {
		if err := enableShutdownPrivilege(); err != nil {
			return err
		}
	}
	ret, _, err := procExitWindowsEx.Call(uintptr(flags), shutdownReason)
	if ret == 0 {
		return fmt.Errorf("ExitWindowsEx: %w", err)
	}
	return nil
}

// enableShutdownPrivilege enables SeShutdownPrivilege on the process
// token, required before ExitWindowsEx may shut down or reboot.
func enableShutdownPrivilege() error {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(),
		windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token)
	if err != nil {
		return fmt.Errorf("OpenProcessToken: %w", err)
	}
	defer token.Close()

	var luid windows.LUID
	name, err := windows.UTF16PtrFromString("SeShutdownPrivilege")
	if err != nil {
		return err
	}
	if err := windows.LookupPrivilegeValue(nil, name, &luid); err != nil {
		return fmt.Errorf("LookupPrivilegeValue: %w", err)
	}

	tp := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges: [1]windows.LUIDAndAttributes{{
			Luid:       luid,
			Attributes: windows.SE_PRIVILEGE_ENABLED,
		}},
	}
	err = windows.AdjustTokenPrivileges(token, false, &tp,
		uint32(unsafe.Sizeof(tp)), nil, nil)
	if err != nil {
		return fmt.Errorf("AdjustTokenPrivileges: %w", err)
	}
	return nil
}
