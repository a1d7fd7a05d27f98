package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli"

	"github.com/pwrsched/pwrsched/cmd/common"
	"github.com/pwrsched/pwrsched/internal/daemon"
	"github.com/pwrsched/pwrsched/pkg/logger"
)

func daemonCmd(ctx *cli.Context) error {
	var l logger.Logger = logger.NewStandardLogger(log.Default())
	dataDir, err := daemon.DataDir(ctx.String("data-dir"))
	if err == nil {
		if f, ferr := os.OpenFile(filepath.Join(dataDir, "daemon.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); ferr == nil {
			fileLog := logger.NewStandardLogger(log.New(f, "", log.LstdFlags))
			l = logger.NewMultiLogger(l, fileLog)
			defer f.Close()
		}
	}

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = daemon.Run(runCtx, &daemon.Config{
		Log:     l,
		Version: currentBuildArgs.Version,
		Port:    ctx.Int("port"),
		DataDir: ctx.String("data-dir"),
	})
	if err != nil {
		common.PrintRuntimeErr(ctx, "daemon", "run", err)
		return nil
	}
	return nil
}

func stop(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "stop", "client", err)
		return nil
	}
	reqCtx, cancel := reqContext()
	defer cancel()
	if err := client.Stop(reqCtx); err != nil {
		common.PrintRuntimeErr(ctx, "stop", "rpc", err)
		return nil
	}
	fmt.Println("daemon stopping")
	return nil
}
