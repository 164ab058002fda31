package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/feed"
	"github.com/TheViking816/DescansosCPE/pkg/core/services"
)

// WatchCmd creates the watch command: the board on a poll loop. Each
// tick fetches a fresh snapshot and recomputes the whole board; no
// state is carried between ticks.
func WatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <worker_id>",
		Short: "Poll the swap board and redraw it on every refresh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interval := app.Cfg.PollInterval()
			app.Logger.Info("Watching board",
				zap.String("worker_id", args[0]),
				zap.Duration("interval", interval))

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				result, err := services.ViewBoard(app.Ctx, app.Database, app.Logger, args[0], feed.Filters{})
				if err != nil {
					app.Logger.Warn("Board refresh failed", zap.Error(err))
				} else {
					app.trackUsage(result.Viewer.Badge, "watch")
					fmt.Printf("\n[%s]\n", time.Now().Format("15:04:05"))
					printBoard(result)
				}

				select {
				case <-app.Ctx.Done():
					return app.Ctx.Err()
				case <-ticker.C:
				}
			}
		},
	}
}
