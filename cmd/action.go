package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/pwrsched/pwrsched/cmd/common"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func actionRun(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("missing action name"))
	}
	kind, err := pwrlib.ParseAction(name)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	client, err := getClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "action", "client", err)
		return nil
	}

	if delay := ctx.Duration("delay"); delay > 0 {
		if err := countdown(kind, delay); err != nil {
			fmt.Println("cancelled")
			return nil
		}
	}

	reqCtx, cancel := reqContext()
	defer cancel()
	if err := client.Execute(reqCtx, kind.String()); err != nil {
		common.PrintRuntimeErr(ctx, "action", "execute", err)
		return nil
	}
	fmt.Printf("executed %s\n", kind)
	return nil
}

// countdown renders a progress bar until the delay elapses. Ctrl-C
// aborts the countdown and the action.
func countdown(kind pwrlib.Action, delay time.Duration) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := mpb.New(mpb.WithWidth(64))
	name := fmt.Sprintf("%s in", kind)
	total := int64(delay / time.Second)
	if total < 1 {
		total = 1
	}
	bar := p.New(total,
		mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.OnComplete(decor.CountersNoUnit("%d / %d s"), "now"),
		),
	)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for done := int64(0); done < total; {
		select {
		case <-sigCtx.Done():
			bar.Abort(true)
			p.Wait()
			return sigCtx.Err()
		case <-ticker.C:
			bar.Increment()
			done++
		}
	}
	p.Wait()
	return nil
}
