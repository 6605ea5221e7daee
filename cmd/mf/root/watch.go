package root

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dreamer2trader-boop/MindForge/internal/config"
	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/logger"
	"github.com/dreamer2trader-boop/MindForge/internal/storage"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the day-boundary watcher until interrupted",
		Long: `Watch polls the clock and rolls the day over as soon as midnight
(UTC+05:30) passes: archives daily stats, updates the streak, prunes
completed one-time tasks and resets completion flags. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if interval > 0 {
				cfg.PollInterval = interval
			}

			log, err := logger.New(logger.Config{
				Level:    cfg.Logger.Level,
				Encoding: cfg.Logger.Encoding,
			})
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := storage.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := engine.NewService(db)
			log.Info("watcher started",
				zap.String("db", cfg.DBPath),
				zap.Duration("interval", cfg.PollInterval))

			tick := func() {
				res, err := svc.CheckRollover(ctx)
				if err != nil {
					log.Error("rollover check failed", zap.Error(err))
					return
				}
				if !res.Processed {
					log.Debug("no day boundary", zap.String("day", res.Day))
					return
				}
				log.Info("day rolled over",
					zap.String("closed_day", res.ClosedDay),
					zap.Int("eligible", res.Eligible),
					zap.Int("completed", res.Completed),
					zap.Int("streak", res.StreakAfter),
					zap.Bool("streak_extended", res.StreakExtended),
					zap.Int("removed_one_time", res.RemovedOneTime),
					zap.Int("skipped_days", res.SkippedDays))
			}

			tick()
			ticker := time.NewTicker(cfg.PollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					log.Info("watcher stopped")
					return nil
				case <-ticker.C:
					tick()
				}
			}
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Poll interval (overrides MINDFORGE_POLL_INTERVAL)")

	return cmd
}
