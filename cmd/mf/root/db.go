package root

import (
	"context"
	"fmt"
	"os"

	"github.com/dreamer2trader-boop/MindForge/internal/config"
	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/storage"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

// openService opens the database and runs the day-boundary check so a
// pure-CLI user still gets rollovers with bounded latency. A failed check
// is reported but never blocks the command.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc := engine.NewService(db)
	res, err := svc.CheckRollover(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" rollover check failed: "+err.Error()))
	} else if res.Processed {
		line := fmt.Sprintf("%s New day! Rolled over %s", ui.IconCalendar, res.ClosedDay)
		if res.StreakExtended {
			line += fmt.Sprintf(" · %s streak %d", ui.IconFlame, res.StreakAfter)
		} else if res.Eligible > 0 {
			line += fmt.Sprintf(" · streak reset (%d/%d done)", res.Completed, res.Eligible)
		}
		fmt.Fprintln(os.Stderr, ui.Muted.Render(line))
	}

	return svc, cleanup, nil
}
