package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/wavegrid/internal/builder"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/executor"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/scheduler"
)

// Run executes the main application logic based on the configuration given
// to NewApp.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListKinds {
		return a.writeKinds()
	}

	if err := a.healthCheckServer(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.closeHealthCheckServer())
	}()

	if err := a.LoadGrid(); err != nil {
		return err
	}
	g, err := builder.Build(ctx, a.grid, a.registry)
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}

	if a.config.Plan {
		return a.writePlan(g)
	}

	if len(g.Nodes()) == 0 {
		a.logger.Warn("No nodes found in grid, execution not required.")
		return a.writeOutputs(g)
	}

	a.logger.Info("🚀 Starting wave execution...")
	exec := executor.New(
		executor.WithWorkers(a.config.WorkerCount),
		executor.WithNodeTimeout(a.config.NodeTimeout),
		executor.WithMetrics(a.metrics),
	)
	report, runErr := exec.ExecuteGraph(ctx, g)
	if report != nil {
		a.logger.Info("🏁 Execution finished.",
			"run_id", report.RunID,
			"outcome", report.Outcome,
			"waves", len(report.Waves),
			"executed", len(report.Executed),
		)
	}
	if err := a.writeOutputs(g); err != nil {
		return errors.Join(runErr, err)
	}
	if runErr != nil {
		return fmt.Errorf("execution failed: %w", runErr)
	}
	if a.config.Strict {
		if err := report.Err(); err != nil {
			return fmt.Errorf("strict mode: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

type planStall struct {
	Node      string   `json:"node"`
	Reason    string   `json:"reason"`
	Inputs    []string `json:"inputs,omitempty"`
	WaitingOn []string `json:"waiting_on,omitempty"`
}

type planDoc struct {
	Waves  [][]string  `json:"waves"`
	Stalls []planStall `json:"stalls"`
}

// writePlan prints the waves the grid would run in, without evaluating it.
func (a *App) writePlan(g *graph.Graph) error {
	waves, stalls := scheduler.Plan(g.Snapshot())
	doc := planDoc{Waves: waves, Stalls: make([]planStall, 0, len(stalls))}
	if doc.Waves == nil {
		doc.Waves = [][]string{}
	}
	for _, s := range stalls {
		doc.Stalls = append(doc.Stalls, planStall{
			Node:      s.Node,
			Reason:    s.Reason.String(),
			Inputs:    s.Inputs,
			WaitingOn: s.WaitingOn,
		})
	}
	return a.writeJSON(doc)
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
