package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
)

func historyList(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "history", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	entries, err := client.ListHistory(reqCtx, ctx.Int("limit"))
	if err != nil {
		common.PrintRuntimeErr(ctx, "history", "list", err)
		return nil
	}
	if len(entries) == 0 {
		fmt.Println("history is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "AT\tCATEGORY\tITEM\tOUTCOME\tWHAT\tDETAIL")
	for _, e := range entries {
		what := e.Action
		if what == "" {
			what = e.Event
		}
		fmt.Fprintf(w, "%s\t%s\t%#x\t%s\t%s\t%s\n",
			e.At, e.Category, e.ItemId, e.Outcome, what, e.Detail)
	}
	return w.Flush()
}

func historyFlush(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "history", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	if err := client.FlushHistory(reqCtx); err != nil {
		common.PrintRuntimeErr(ctx, "history", "flush", err)
		return nil
	}
	fmt.Println("history cleared")
	return nil
}
