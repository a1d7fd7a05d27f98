package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
)

func watch(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "watch", "client", err)
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	events, err := client.Subscribe(sigCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "watch", "subscribe", err)
		return nil
	}

	fmt.Println("watching for changes (Ctrl-C to stop)")
	for n := range events {
		fmt.Printf("%s %s items changed\n", time.Now().Format("15:04:05"), n.Category)
	}
	return nil
}
