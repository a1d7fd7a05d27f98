// Package cmd implements the pwrsched command-line interface.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	app := cli.App{
		Name:                  "pwrsched",
		HelpName:              "pwrsched",
		Usage:                 "A power action scheduler and reminder daemon.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "pwrsched <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "daemon",
				Usage:              "run the scheduler daemon in the foreground",
				Description:        DaemonDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             daemonCmd,
				Flags:              daemonFlags,
			},
			{
				Name:   "stop",
				Usage:  "stop a running daemon",
				Action: stop,
			},
			{
				Name:               "status",
				Aliases:            []string{"s"},
				Usage:              "show daemon status",
				Description:        StatusDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             status,
			},
			{
				Name:               "schedule",
				Aliases:            []string{"sc"},
				Usage:              "manage power action schedules",
				Description:        ScheduleDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Subcommands: []cli.Command{
					{
						Name:                   "add",
						Usage:                  "add a schedule item",
						Action:                 scheduleAdd,
						Flags:                  scheduleAddFlags,
						OnUsageError:           common.UsageErrorCallback,
						UseShortOptionHandling: true,
					},
					{
						Name:    "list",
						Aliases: []string{"l"},
						Usage:   "list schedule items",
						Action:  scheduleList,
					},
					{
						Name:                   "set",
						Usage:                  "modify a schedule item",
						Action:                 scheduleSet,
						Flags:                  scheduleSetFlags,
						OnUsageError:           common.UsageErrorCallback,
						UseShortOptionHandling: true,
					},
					{
						Name:      "remove",
						Aliases:   []string{"rm"},
						Usage:     "remove a schedule item, or all of them",
						ArgsUsage: "<id>|all",
						Action:    scheduleRemove,
					},
					{
						Name:      "enable",
						Usage:     "enable a schedule item",
						ArgsUsage: "<id>",
						Action:    scheduleEnable,
					},
					{
						Name:      "disable",
						Usage:     "disable a schedule item",
						ArgsUsage: "<id>",
						Action:    scheduleDisable,
					},
				},
			},
			{
				Name:               "reminder",
				Aliases:            []string{"rem"},
				Usage:              "manage reminders",
				Description:        ReminderDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Subcommands: []cli.Command{
					{
						Name:                   "add",
						Usage:                  "add a reminder",
						Action:                 reminderAdd,
						Flags:                  reminderAddFlags,
						OnUsageError:           common.UsageErrorCallback,
						UseShortOptionHandling: true,
					},
					{
						Name:    "list",
						Aliases: []string{"l"},
						Usage:   "list reminders",
						Action:  reminderList,
					},
					{
						Name:                   "set",
						Usage:                  "modify a reminder",
						Action:                 reminderSet,
						Flags:                  reminderSetFlags,
						OnUsageError:           common.UsageErrorCallback,
						UseShortOptionHandling: true,
					},
					{
						Name:      "remove",
						Aliases:   []string{"rm"},
						Usage:     "remove a reminder, or all of them",
						ArgsUsage: "<id>|all",
						Action:    reminderRemove,
					},
					{
						Name:      "enable",
						Usage:     "enable a reminder",
						ArgsUsage: "<id>",
						Action:    reminderEnable,
					},
					{
						Name:      "disable",
						Usage:     "disable a reminder",
						ArgsUsage: "<id>",
						Action:    reminderDisable,
					},
				},
			},
			{
				Name:                   "action",
				Aliases:                []string{"a"},
				Usage:                  "execute a power action now or after a countdown",
				ArgsUsage:              "<action>",
				Description:            ActionDescription,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 actionRun,
				Flags:                  actionFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:               "options",
				Usage:              "show or change global engine options",
				Description:        OptionsDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             optionsShow,
				Subcommands: []cli.Command{
					{
						Name:                   "set",
						Usage:                  "change option values",
						Action:                 optionsSet,
						Flags:                  optionsSetFlags,
						OnUsageError:           common.UsageErrorCallback,
						UseShortOptionHandling: true,
					},
				},
			},
			{
				Name:               "history",
				Aliases:            []string{"hist"},
				Usage:              "inspect the occurrence history",
				Description:        HistoryDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             historyList,
				Flags:              historyFlags,
				Subcommands: []cli.Command{
					{
						Name:   "flush",
						Usage:  "clear the history log",
						Action: historyFlush,
					},
				},
			},
			{
				Name:               "watch",
				Usage:              "follow the daemon's change feed",
				Description:        WatchDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             watch,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints the installed version",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:      status,
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
