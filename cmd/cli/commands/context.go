package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/internal/config"
	"github.com/TheViking816/DescansosCPE/pkg/core/matching"
	"github.com/TheViking816/DescansosCPE/pkg/db"
	"github.com/TheViking816/DescansosCPE/pkg/usage"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Policy   matching.Policy
	Database db.Database
	Usage    *usage.Tracker
	Logger   *zap.Logger
	Ctx      context.Context
}

// trackUsage records a best-effort activity ping for the worker driving
// the command. Failures are logged, never surfaced.
func (app *AppContext) trackUsage(badge, section string) {
	if app.Usage == nil {
		return
	}
	sent, err := app.Usage.Record(app.Ctx, badge, section, time.Now().UTC())
	if err != nil {
		app.Logger.Warn("Usage ping failed", zap.String("section", section), zap.Error(err))
		return
	}
	if sent {
		app.Logger.Debug("Usage ping recorded", zap.String("section", section))
	}
}
