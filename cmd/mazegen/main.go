// Command mazegen builds a flat or cube maze, carves it and prints it with
// a validity report. Settings come from flags and an optional HCL file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/mazecube/frontier"
	"github.com/katalvlaran/mazecube/maze"
	"github.com/katalvlaran/mazecube/textmap"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, builds the maze and writes the rendering to outW and
// logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	if cfg.Carver == carverFrontier {
		return runLattice(outW, logger, cfg)
	}
	return runMaze(outW, logger, cfg)
}

func runMaze(outW io.Writer, logger *slog.Logger, cfg *config) error {
	m, err := maze.New(append(cfg.mazeOptions(), maze.WithLogger(logger))...)
	if err != nil {
		return err
	}
	if err := m.Generate(); err != nil {
		return err
	}

	if cfg.Start != nil {
		if !m.PlaceStart(cfg.Start.Face, cfg.Start.Pos) {
			return fmt.Errorf("start %+v on %s resolves to no cell", cfg.Start.Pos, cfg.Start.Face)
		}
	} else {
		m.PlaceStartCell(m.Grids()[0].Cells()[0])
	}

	removed := 0
	if cfg.Carver == carverPrim {
		order, err := m.CarveSpanningTree(m.Start())
		if err != nil {
			return err
		}
		removed = len(order)
	}

	if cfg.Goal != nil {
		if !m.PlaceGoal(cfg.Goal.Face, cfg.Goal.Pos) {
			return fmt.Errorf("goal %+v on %s is not placeable", cfg.Goal.Pos, cfg.Goal.Face)
		}
	} else if lp := m.LongestPath(m.Start()); len(lp) > 0 {
		m.PlaceGoalCell(lp[len(lp)-1])
	} else {
		logger.Warn("no reachable cell for the goal", "episode", m.ID(), "start", m.Start())
	}

	path := m.TrackedPath()
	logger.Info("maze ready",
		"episode", m.ID(),
		"mode", cfg.Mode.String(),
		"size", cfg.Size,
		"carver", cfg.Carver,
		"removed", removed,
		"valid", m.IsValid(),
		"structural", m.MeetsStructuralRequirements(),
		"perfect", m.IsPerfect(),
		"percent_visited", m.PercentVisited(),
		"percent_longest_path", m.PercentLongestPath(),
		"path_steps", max(len(path)-1, 0),
	)

	_, err = io.WriteString(outW, textmap.RenderAll(m,
		textmap.WithColor(cfg.Color),
		textmap.WithPath(cfg.Path),
	))
	return err
}

func runLattice(outW io.Writer, logger *slog.Logger, cfg *config) error {
	l, err := frontier.New(cfg.LatticeX, cfg.LatticeY, cfg.LatticeZ,
		frontier.WithSeed(cfg.Seed),
		frontier.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	order, err := l.Carve()
	if err != nil {
		return err
	}
	logger.Info("lattice carved",
		"x", cfg.LatticeX,
		"y", cfg.LatticeY,
		"z", cfg.LatticeZ,
		"carved", len(order),
	)

	for y := 1; y < cfg.LatticeY-1; y++ {
		layer, err := textmap.RenderLayer(l, y, textmap.WithColor(cfg.Color))
		if err != nil {
			return err
		}
		if cfg.LatticeY > 3 {
			fmt.Fprintf(outW, "== layer %d ==\n", y)
		}
		if _, err := io.WriteString(outW, layer); err != nil {
			return err
		}
	}
	return nil
}
