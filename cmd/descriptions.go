package cmd

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`

const DESCRIPTION = `
Pwrsched schedules power actions and reminders on your machine. It can
shut down, sleep, restart or sign out at configured wall-clock times,
warn you before it does, and show reminders tied to the machine's
power life cycle.
`

const DaemonDescription = `
Runs the scheduler daemon in the foreground. The daemon evaluates the
configured schedules once a second, serves the control RPC on a local
socket and records every occurrence in the history log.
`

const StatusDescription = `
Prints the engine's current state: processor switches, item counts and
the time of the last evaluation pass.
`

const ScheduleDescription = `
Manages power action schedule items. Every installation has one default
item that can be reconfigured but never removed; up to a hundred extra
items can be added beside it.
`

const ReminderDescription = `
Manages reminder items. Reminders fire at set times or on power life
cycle events such as daemon startup, system wake-up or right before a
scheduled power action.
`

const ActionDescription = `
Executes a power action immediately or after a countdown. The action is
carried out by the daemon, so its confirmation and reminder hooks apply.
`

const HistoryDescription = `
Inspects the daemon's occurrence history: executed and skipped actions,
displayed and snoozed reminders.
`

const OptionsDescription = `
Shows or changes the global engine options: the schedule processor
switch, the pre-trigger notification, the reminder processor switch and
manual action confirmation.
`

const WatchDescription = `
Subscribes to the daemon's event feed and prints a line whenever the
configured items change, until interrupted.
`
