package main

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/mazecube/maze"
	"github.com/katalvlaran/mazecube/topology"
)

// Carver names accepted by the carver attribute and -carver flag.
const (
	carverPrim     = "prim"
	carverFrontier = "frontier"
	carverNone     = "none"
)

// fileConfig is the HCL schema of a mazegen config file:
//
//	maze {
//	  mode   = "cube"
//	  size   = 5
//	  seed   = 7
//	  carver = "prim"
//	  start {
//	    face = "Top"
//	    x    = 0
//	    z    = 0
//	  }
//	}
//	lattice {
//	  x = 21
//	  y = 3
//	  z = 21
//	}
//	render {
//	  color = true
//	}
type fileConfig struct {
	Maze    *mazeBlock    `hcl:"maze,block"`
	Lattice *latticeBlock `hcl:"lattice,block"`
	Render  *renderBlock  `hcl:"render,block"`
}

type mazeBlock struct {
	Mode         *string     `hcl:"mode,optional"`
	Size         *int        `hcl:"size,optional"`
	CellSize     *float64    `hcl:"cell_size,optional"`
	Seed         *int64      `hcl:"seed,optional"`
	FullCoverage *bool       `hcl:"full_coverage,optional"`
	Carver       *string     `hcl:"carver,optional"`
	Start        *placeBlock `hcl:"start,block"`
	Goal         *placeBlock `hcl:"goal,block"`
}

type placeBlock struct {
	Face string  `hcl:"face,optional"`
	X    float64 `hcl:"x"`
	Z    float64 `hcl:"z"`
}

type latticeBlock struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
	Z int `hcl:"z"`
}

type renderBlock struct {
	Color *bool `hcl:"color,optional"`
	Path  *bool `hcl:"path,optional"`
}

// placement is a resolved start or goal request.
type placement struct {
	Face topology.Face
	Pos  maze.Position
}

// config is the effective run configuration after file and flags merge.
type config struct {
	Mode         maze.Mode
	Size         int
	CellSize     float64
	Seed         int64
	FullCoverage bool
	Carver       string
	Start, Goal  *placement

	LatticeX, LatticeY, LatticeZ int

	Color bool
	Path  bool

	LogLevel  string
	LogFormat string
}

func defaultConfig() config {
	return config{
		Mode:      maze.ModeFlat,
		Size:      8,
		CellSize:  1,
		Carver:    carverPrim,
		LatticeX:  21,
		LatticeY:  3,
		LatticeZ:  21,
		Path:      true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// loadConfigFile parses and decodes an HCL config file.
func loadConfigFile(path string) (*fileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}
	return decodeConfig(file, path)
}

// parseConfig decodes HCL source held in memory.
func parseConfig(src []byte, filename string) (*fileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}
	return decodeConfig(file, filename)
}

func decodeConfig(file *hcl.File, name string) (*fileConfig, error) {
	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", name, diags.Error())
	}
	return &fc, nil
}

// apply overlays the file settings on c.
func (fc *fileConfig) apply(c *config) error {
	if m := fc.Maze; m != nil {
		if m.Mode != nil {
			mode, err := parseMode(*m.Mode)
			if err != nil {
				return err
			}
			c.Mode = mode
		}
		if m.Size != nil {
			c.Size = *m.Size
		}
		if m.CellSize != nil {
			c.CellSize = *m.CellSize
		}
		if m.Seed != nil {
			c.Seed = *m.Seed
		}
		if m.FullCoverage != nil {
			c.FullCoverage = *m.FullCoverage
		}
		if m.Carver != nil {
			c.Carver = *m.Carver
		}
		var err error
		if c.Start, err = m.Start.resolve(c.Start); err != nil {
			return err
		}
		if c.Goal, err = m.Goal.resolve(c.Goal); err != nil {
			return err
		}
	}
	if l := fc.Lattice; l != nil {
		c.LatticeX, c.LatticeY, c.LatticeZ = l.X, l.Y, l.Z
	}
	if r := fc.Render; r != nil {
		if r.Color != nil {
			c.Color = *r.Color
		}
		if r.Path != nil {
			c.Path = *r.Path
		}
	}
	return nil
}

func (p *placeBlock) resolve(prev *placement) (*placement, error) {
	if p == nil {
		return prev, nil
	}
	face, ok := topology.ParseFace(p.Face)
	if !ok {
		return nil, fmt.Errorf("unknown face %q", p.Face)
	}
	return &placement{Face: face, Pos: maze.Position{X: p.X, Z: p.Z}}, nil
}

func parseMode(s string) (maze.Mode, error) {
	switch strings.ToLower(s) {
	case "flat", "":
		return maze.ModeFlat, nil
	case "cube":
		return maze.ModeCube, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want flat or cube)", s)
}

// validate checks the merged configuration.
func (c *config) validate() error {
	switch c.Carver {
	case carverPrim, carverFrontier, carverNone:
	default:
		return fmt.Errorf("unknown carver %q (want %s, %s or %s)", c.Carver, carverPrim, carverFrontier, carverNone)
	}
	for _, p := range []struct {
		name string
		at   *placement
	}{{"start", c.Start}, {"goal", c.Goal}} {
		if p.at == nil {
			continue
		}
		if c.Mode == maze.ModeFlat && p.at.Face != topology.FaceNone {
			return fmt.Errorf("face %s given for a flat maze", p.at.Face)
		}
		if c.Mode == maze.ModeCube && p.at.Face == topology.FaceNone {
			return fmt.Errorf("%s: face required for a cube maze", p.name)
		}
	}
	return nil
}

// mazeOptions converts c into maze options.
func (c *config) mazeOptions() []maze.Option {
	return []maze.Option{
		maze.WithMode(c.Mode),
		maze.WithSize(c.Size),
		maze.WithCellSize(c.CellSize),
		maze.WithSeed(c.Seed),
		maze.WithFullCoverage(c.FullCoverage),
	}
}
