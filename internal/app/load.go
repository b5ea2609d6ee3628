package app

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/fsutil"
	"github.com/specialistvlad/wavegrid/internal/hcl_adapter"
	"github.com/specialistvlad/wavegrid/internal/yaml_adapter"
)

// loaders maps grid file extensions to their loader.
var loaders = map[string]config.Loader{
	".hcl":  hcl_adapter.NewLoader(),
	".yaml": yaml_adapter.NewLoader(),
	".yml":  yaml_adapter.NewLoader(),
}

// LoadGrid reads every grid file under the configured path, in lexical order,
// and merges them into one grid.
func (a *App) LoadGrid() error {
	logger := ctxlog.FromContext(a.ctx)
	logger.Debug("Loading grids...", "grid_path", a.config.GridPath)

	files, err := fsutil.FindFilesByExtension(a.config.GridPath, ".hcl", ".yaml", ".yml")
	if err != nil {
		return fmt.Errorf("failed to find grid files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .hcl, .yaml or .yml grid files found in %s", a.config.GridPath)
	}

	grid := &config.Grid{}
	for _, file := range files {
		loader := loaders[filepath.Ext(file)]
		part, err := loader.Load(a.ctx, file)
		if err != nil {
			return fmt.Errorf("failed to load grid: %w", err)
		}
		grid.Merge(part)
	}

	a.grid = grid
	logger.Info("Grids loaded successfully.", "files", len(files), "nodes", len(grid.Nodes), "edges", len(grid.Edges))
	return nil
}
