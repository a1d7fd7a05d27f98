package cmd

import "github.com/urfave/cli"

var daemonFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "port, p",
		Usage: "TCP fallback port for the control socket",
	},
	cli.StringFlag{
		Name:  "data-dir, d",
		Usage: "directory holding the daemon's state files",
	},
}

var scheduleAddFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "time, t",
		Usage: "firing time in HH:MM",
	},
	cli.StringFlag{
		Name:  "action, a",
		Usage: "power action: displayoff, sleep, shutdown, restart, signout, hibernate",
		Value: "sleep",
	},
	cli.StringFlag{
		Name:  "days, d",
		Usage: "active days: all, weekdays, weekend or a list like mon,wed,fri",
		Value: "all",
	},
	cli.BoolFlag{
		Name:  "once, o",
		Usage: "fire once and deactivate instead of repeating",
	},
	cli.BoolFlag{
		Name:  "allow-snooze, s",
		Usage: "permit snoozing from the pre-trigger notification",
	},
	cli.IntFlag{
		Name:  "snooze-interval",
		Usage: "snooze delay in seconds (60-1800)",
	},
	cli.BoolFlag{
		Name:  "disabled",
		Usage: "create the item disabled",
	},
}

var scheduleSetFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "id, i",
		Usage: "item id to modify",
	},
	cli.BoolFlag{
		Name:  "repeat, r",
		Usage: "make the item repeating",
	},
}, scheduleAddFlags...)

var reminderAddFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "message, m",
		Usage: "reminder text",
	},
	cli.StringFlag{
		Name:  "event, e",
		Usage: "occasion: at-set-time, at-startup, at-wakeup, before-action, wake-after-action, at-exit",
		Value: "at-set-time",
	},
	cli.StringFlag{
		Name:  "time, t",
		Usage: "firing time in HH:MM (at-set-time only)",
	},
	cli.StringFlag{
		Name:  "days, d",
		Usage: "active days: all, weekdays, weekend or a list like mon,wed,fri",
		Value: "all",
	},
	cli.StringFlag{
		Name:  "style",
		Usage: "presentation style: msgbox or dialog",
		Value: "msgbox",
	},
	cli.BoolFlag{
		Name:  "once, o",
		Usage: "fire once and deactivate instead of repeating",
	},
	cli.BoolFlag{
		Name:  "allow-snooze, s",
		Usage: "permit snoozing the reminder",
	},
	cli.IntFlag{
		Name:  "snooze-interval",
		Usage: "snooze delay in seconds (60-1800)",
	},
	cli.BoolFlag{
		Name:  "disabled",
		Usage: "create the item disabled",
	},
}

var reminderSetFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "id, i",
		Usage: "item id to modify",
	},
	cli.BoolFlag{
		Name:  "repeat, r",
		Usage: "make the item repeating",
	},
}, reminderAddFlags...)

var actionFlags = []cli.Flag{
	cli.DurationFlag{
		Name:  "delay, d",
		Usage: "count down before executing, e.g. 30s or 5m",
	},
}

var optionsSetFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "schedule",
		Usage: "schedule processor on/off",
	},
	cli.StringFlag{
		Name:  "notify",
		Usage: "pre-trigger notification on/off",
	},
	cli.StringFlag{
		Name:  "reminders",
		Usage: "reminder processor on/off",
	},
	cli.StringFlag{
		Name:  "confirm",
		Usage: "manual action confirmation on/off",
	},
}

var historyFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "limit, n",
		Usage: "maximum number of entries to show",
		Value: 25,
	},
}
