package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func reminderAdd(ctx *cli.Context) error {
	message := ctx.String("message")
	if message == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing required flag --message"))
	}
	event, err := pwrlib.ParseEvent(ctx.String("event"))
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	style, err := pwrlib.ParseStyle(ctx.String("style"))
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	days, err := pwrlib.ParseDaySet(ctx.String("days"))
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	item := pwrlib.ReminderItem{
		Enabled:        !ctx.Bool("disabled"),
		Message:        message,
		Event:          event,
		Repeat:         !ctx.Bool("once"),
		ActiveDays:     days,
		Style:          style,
		AllowSnooze:    ctx.Bool("allow-snooze"),
		SnoozeInterval: ctx.Int("snooze-interval"),
	}
	if event == pwrlib.EventAtSetTime {
		if ctx.String("time") == "" {
			return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("--time is required for at-set-time reminders"))
		}
		clock, err := pwrlib.ParseClock(ctx.String("time"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.Time = clock
	}

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	id, err := client.AddReminder(reqCtx, item)
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "add", err)
		return nil
	}
	fmt.Printf("added reminder %#x: %q on %s\n", id, message, event)
	return nil
}

func reminderList(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	items, err := client.ListReminders(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "list", err)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEVENT\tTIME\tDAYS\tSTYLE\tREPEAT\tSNOOZE\tENABLED\tMESSAGE")
	for _, it := range items {
		timeCol := "-"
		if it.Event == pwrlib.EventAtSetTime {
			timeCol = it.Time.String()
		}
		snooze := "-"
		if it.AllowSnooze {
			snooze = fmt.Sprintf("%ds", it.SnoozeInterval)
		}
		fmt.Fprintf(w, "%#x\t%s\t%s\t%s\t%s\t%v\t%s\t%v\t%s\n",
			it.ItemID, it.Event, timeCol, it.ActiveDays, it.Style,
			it.Repeat, snooze, it.Enabled, it.Message)
	}
	return w.Flush()
}

func reminderSet(ctx *cli.Context) error {
	if !ctx.IsSet("id") {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing required flag --id"))
	}
	id := ctx.Int("id")

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()

	items, err := client.ListReminders(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "list", err)
		return nil
	}
	var item *pwrlib.ReminderItem
	for _, it := range items {
		if it.ItemID == id {
			item = it
			break
		}
	}
	if item == nil {
		common.PrintRuntimeErr(ctx, "reminder", "set", fmt.Errorf("no reminder %#x", id))
		return nil
	}

	if ctx.IsSet("message") {
		item.Message = ctx.String("message")
	}
	if ctx.IsSet("event") {
		event, err := pwrlib.ParseEvent(ctx.String("event"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.Event = event
	}
	if ctx.IsSet("time") {
		clock, err := pwrlib.ParseClock(ctx.String("time"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.Time = clock
	}
	if ctx.IsSet("days") {
		days, err := pwrlib.ParseDaySet(ctx.String("days"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.ActiveDays = days
	}
	if ctx.IsSet("style") {
		style, err := pwrlib.ParseStyle(ctx.String("style"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.Style = style
	}
	if ctx.Bool("once") {
		item.Repeat = false
	}
	if ctx.Bool("repeat") {
		item.Repeat = true
	}
	if ctx.IsSet("allow-snooze") {
		item.AllowSnooze = ctx.Bool("allow-snooze")
	}
	if ctx.IsSet("snooze-interval") {
		item.SnoozeInterval = ctx.Int("snooze-interval")
	}
	if ctx.IsSet("disabled") {
		item.Enabled = !ctx.Bool("disabled")
	}

	if err := client.UpdateReminder(reqCtx, *item); err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "set", err)
		return nil
	}
	fmt.Printf("updated reminder %#x\n", id)
	return nil
}

func reminderRemove(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing item id (or \"all\")"))
	}

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()

	if strings.EqualFold(arg, "all") {
		if err := client.RemoveAllReminders(reqCtx); err != nil {
			common.PrintRuntimeErr(ctx, "reminder", "remove", err)
			return nil
		}
		fmt.Println("removed all reminders")
		return nil
	}

	id, err := parseItemID(arg)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if err := client.RemoveReminder(reqCtx, id); err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "remove", err)
		return nil
	}
	fmt.Printf("removed reminder %#x\n", id)
	return nil
}

func reminderEnable(ctx *cli.Context) error {
	return setReminderEnabled(ctx, true)
}

func reminderDisable(ctx *cli.Context) error {
	return setReminderEnabled(ctx, false)
}

func setReminderEnabled(ctx *cli.Context, enabled bool) error {
	arg := ctx.Args().First()
	if arg == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing item id"))
	}
	id, err := parseItemID(arg)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	if err := client.EnableReminder(reqCtx, id, enabled); err != nil {
		common.PrintRuntimeErr(ctx, "reminder", "enable", err)
		return nil
	}
	fmt.Printf("reminder %#x %s\n", id, onOff(enabled))
	return nil
}
