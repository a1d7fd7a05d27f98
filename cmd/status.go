package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func status(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "status", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()

	v, err := client.GetVersion(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "status", "rpc", err)
		return nil
	}
	st, err := client.Status(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "status", "rpc", err)
		return nil
	}

	fmt.Printf("daemon version:  %s\n", v.Version)
	fmt.Printf("last evaluation: %s\n", st.Clock)
	fmt.Printf("schedules:       %d (processor %s, notify %s)\n",
		st.Schedules, onOff(st.ScheduleEnabled), onOff(st.NotifySchedule))
	fmt.Printf("reminders:       %d (processor %s)\n",
		st.Reminders, onOff(st.RemindersEnabled))
	fmt.Printf("confirm actions: %s\n", onOff(st.ConfirmAction))
	return nil
}
