package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/adhocore/gronx"
	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

// parseItemID accepts decimal or 0x-prefixed hex item ids.
func parseItemID(s string) (int, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", s)
	}
	return int(id), nil
}

// cronExpr renders a firing time and day set as a 5-field cron
// expression for next-occurrence computation.
func cronExpr(t pwrlib.Clock, days pwrlib.DaySet) string {
	dow := "*"
	if days&pwrlib.AllDays != pwrlib.AllDays && !days.Empty() {
		var bits []string
		for w := time.Sunday; w <= time.Saturday; w++ {
			if days.Has(w) {
				bits = append(bits, strconv.Itoa(int(w)))
			}
		}
		dow = strings.Join(bits, ",")
	}
	return fmt.Sprintf("%d %d * * %s", t.Minute, t.Hour, dow)
}

// nextRun returns the next occurrence of the item's firing time, or an
// empty string when it cannot be computed.
func nextRun(t pwrlib.Clock, days pwrlib.DaySet, enabled bool) string {
	if !enabled || days.Empty() {
		return "-"
	}
	next, err := gronx.NextTickAfter(cronExpr(t, days), time.Now(), false)
	if err != nil {
		return "-"
	}
	return next.Format("Mon 15:04")
}

func scheduleAdd(ctx *cli.Context) error {
	timeStr := ctx.String("time")
	if timeStr == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing required flag --time"))
	}
	clock, err := pwrlib.ParseClock(timeStr)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	action, err := pwrlib.ParseAction(ctx.String("action"))
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	days, err := pwrlib.ParseDaySet(ctx.String("days"))
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	item := pwrlib.ScheduleItem{
		Enabled:        !ctx.Bool("disabled"),
		Repeat:         !ctx.Bool("once"),
		ActiveDays:     days,
		Action:         action,
		Time:           clock,
		AllowSnooze:    ctx.Bool("allow-snooze"),
		SnoozeInterval: ctx.Int("snooze-interval"),
	}

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	id, err := client.AddSchedule(reqCtx, item)
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "add", err)
		return nil
	}
	fmt.Printf("added schedule %#x: %s at %s (%s)\n", id, action, clock, days)
	return nil
}

func scheduleList(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	items, err := client.ListSchedules(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "list", err)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tACTION\tDAYS\tREPEAT\tSNOOZE\tENABLED\tNEXT RUN")
	for _, it := range items {
		snooze := "-"
		if it.AllowSnooze {
			snooze = fmt.Sprintf("%ds", it.SnoozeInterval)
		}
		fmt.Fprintf(w, "%#x\t%s\t%s\t%s\t%v\t%s\t%v\t%s\n",
			it.ItemID, it.Time, it.Action, it.ActiveDays,
			it.Repeat, snooze, it.Enabled,
			nextRun(it.Time, it.ActiveDays, it.Enabled))
	}
	return w.Flush()
}

func scheduleSet(ctx *cli.Context) error {
	if !ctx.IsSet("id") {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing required flag --id"))
	}
	id := ctx.Int("id")

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()

	items, err := client.ListSchedules(reqCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "list", err)
		return nil
	}
	var item *pwrlib.ScheduleItem
	for _, it := range items {
		if it.ItemID == id {
			item = it
			break
		}
	}
	if item == nil {
		common.PrintRuntimeErr(ctx, "schedule", "set", fmt.Errorf("no schedule item %#x", id))
		return nil
	}

	if ctx.IsSet("time") {
		clock, err := pwrlib.ParseClock(ctx.String("time"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.Time = clock
	}
	if ctx.IsSet("action") {
		action, err := pwrlib.ParseAction(ctx.String("action"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.Action = action
	}
	if ctx.IsSet("days") {
		days, err := pwrlib.ParseDaySet(ctx.String("days"))
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		item.ActiveDays = days
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

	if err := client.UpdateSchedule(reqCtx, *item); err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "set", err)
		return nil
	}
	fmt.Printf("updated schedule %#x\n", id)
	return nil
}

func scheduleRemove(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing item id (or \"all\")"))
	}

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()

	if strings.EqualFold(arg, "all") {
		if err := client.RemoveAllSchedules(reqCtx); err != nil {
			common.PrintRuntimeErr(ctx, "schedule", "remove", err)
			return nil
		}
		fmt.Println("removed all schedule items")
		return nil
	}

	id, err := parseItemID(arg)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if err := client.RemoveSchedule(reqCtx, id); err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "remove", err)
		return nil
	}
	fmt.Printf("removed schedule %#x\n", id)
	return nil
}

func scheduleEnable(ctx *cli.Context) error {
	return setScheduleEnabled(ctx, true)
}

func scheduleDisable(ctx *cli.Context) error {
	return setScheduleEnabled(ctx, false)
}

func setScheduleEnabled(ctx *cli.Context, enabled bool) error {
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
		common.PrintRuntimeErr(ctx, "schedule", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	if err := client.EnableSchedule(reqCtx, id, enabled); err != nil {
		common.PrintRuntimeErr(ctx, "schedule", "enable", err)
		return nil
	}
	fmt.Printf("schedule %#x %s\n", id, onOff(enabled))
	return nil
}
