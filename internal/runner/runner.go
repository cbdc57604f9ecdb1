package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/stdtour/stdtour/internal/config"
	"github.com/stdtour/stdtour/internal/id"
	"github.com/stdtour/stdtour/internal/logging"
	"github.com/stdtour/stdtour/internal/monitoring"
	"github.com/stdtour/stdtour/internal/service"
	"github.com/stdtour/stdtour/internal/types"
)

// Runner executes a program of demonstrations through the registry and
// renders the human-readable transcript.
type Runner struct {
	registry *service.Registry
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	cfg      config.TourConfig
	out      io.Writer
	limiter  *rate.Limiter
}

// New creates a runner writing its transcript to out.
func New(reg *service.Registry, logger *logging.Logger, metrics *monitoring.Metrics, cfg config.TourConfig, out io.Writer) *Runner {
	r := &Runner{
		registry: reg,
		logger:   logger.Named("runner"),
		metrics:  metrics,
		cfg:      cfg,
		out:      out,
	}
	if cfg.PaceHz > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.PaceHz), 1)
	}
	return r
}

// Run executes every demonstration in program order. The first failure
// stops the run; no demonstration recovers from another's failure.
func (r *Runner) Run(ctx context.Context, program []string) error {
	runID := id.NewRunID()
	r.logger.Info("tour starting",
		zap.String("run_id", runID.String()),
		zap.Int("demos", len(program)))

	fmt.Fprintf(r.out, "=== Standard Library Tour (%s) ===\n", runID)

	for i, toolID := range program {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("pacing interrupted: %w", err)
			}
		}
		if err := r.runDemo(ctx, runID, i+1, toolID); err != nil {
			return err
		}
	}

	r.metrics.RecordTour()
	r.logger.Info("tour complete", zap.String("run_id", runID.String()))
	fmt.Fprintf(r.out, "\n=== Tour complete: %d demonstrations ===\n", len(program))
	return nil
}

func (r *Runner) runDemo(ctx context.Context, runID id.RunID, number int, toolID string) error {
	runCtx := &types.Context{
		RunID:  runID.String(),
		ExecID: id.NewExecID().String(),
	}

	title := toolID
	if tool, ok := r.registry.Tool(toolID); ok {
		title = tool.Name
	}
	fmt.Fprintf(r.out, "\n%d. %s:\n", number, title)

	start := time.Now()
	result, err := r.registry.Execute(ctx, toolID, nil, runCtx)
	elapsed := time.Since(start)
	failed := err != nil || result == nil || !result.Success
	r.metrics.RecordDemo(toolID, elapsed, failed)

	if err != nil {
		r.logger.Error("demonstration errored",
			zap.String("demo", toolID),
			zap.Error(err))
		return fmt.Errorf("demonstration %s: %w", toolID, err)
	}
	if result == nil || !result.Success {
		message := "demonstration reported failure"
		if result != nil && result.Error != nil {
			message = *result.Error
		}
		r.logger.Error("demonstration failed",
			zap.String("demo", toolID),
			zap.String("error", message))
		return fmt.Errorf("demonstration %s: %s", toolID, message)
	}

	for _, line := range r.render(result) {
		fmt.Fprintf(r.out, "  %s\n", line)
	}

	r.logger.Debug("demonstration complete",
		zap.String("demo", toolID),
		zap.String("exec_id", runCtx.ExecID),
		zap.Duration("elapsed", elapsed))
	return nil
}

// render picks the tool's transcript lines, falling back to a JSON dump of
// the result payload for tools that report only data.
func (r *Runner) render(result *types.Result) []string {
	if lines := result.Lines(); len(lines) > 0 {
		return lines
	}
	payload, err := sonic.Marshal(result.Data)
	if err != nil {
		return []string{fmt.Sprintf("%v", result.Data)}
	}
	return []string{string(payload)}
}
