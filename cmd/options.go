package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
)

// parseOnOff accepts on/off, true/false, 1/0 and yes/no.
func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q, expected on or off", s)
}

func optionsShow(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "options", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	opts, err := client.GetOptions(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "options", "rpc", err)
		return nil
	}
	fmt.Printf("schedule processor:       %s\n", onOff(opts.EnableSchedule))
	fmt.Printf("pre-trigger notification: %s\n", onOff(opts.NotifySchedule))
	fmt.Printf("reminder processor:       %s\n", onOff(opts.EnableReminders))
	fmt.Printf("confirm manual actions:   %s\n", onOff(opts.ConfirmAction))
	return nil
}

func optionsSet(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "options", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	opts, err := client.GetOptions(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "options", "rpc", err)
		return nil
	}

	changed := false
	apply := func(flag string, target *bool) error {
		if !ctx.IsSet(flag) {
			return nil
		}
		v, err := parseOnOff(ctx.String(flag))
		if err != nil {
			return fmt.Errorf("--%s: %w", flag, err)
		}
		*target = v
		changed = true
		return nil
	}
	if err := apply("schedule", &opts.EnableSchedule); err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if err := apply("notify", &opts.NotifySchedule); err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if err := apply("reminders", &opts.EnableReminders); err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if err := apply("confirm", &opts.ConfirmAction); err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if !changed {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("no option flags given"))
	}

	if err := client.SetOptions(reqCtx, *opts); err != nil {
		common.PrintRuntimeErr(ctx, "options", "set", err)
		return nil
	}
	fmt.Println("options updated")
	return nil
}
