package textmap

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/katalvlaran/mazecube/frontier"
	"github.com/katalvlaran/mazecube/maze"
	"github.com/katalvlaran/mazecube/topology"
)

// Options controls rendering.
type Options struct {
	// Color styles markers with terminal colours.
	Color bool
	// Path marks the tracked start→goal path.
	Path bool
}

// Option configures Options.
type Option func(*Options)

// WithColor toggles terminal colours.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithPath toggles path markers.
func WithPath(on bool) Option {
	return func(o *Options) { o.Path = on }
}

var (
	styleStart   = color.Style{color.FgGreen, color.OpBold}
	styleGoal    = color.Style{color.FgRed, color.OpBold}
	stylePath    = color.Style{color.FgYellow}
	styleVisited = color.Style{color.FgGray}
	styleWall    = color.Style{color.FgBlue}
)

type renderer struct {
	m    *maze.Maze
	opts Options
	path map[maze.CellID]bool
}

func (r *renderer) paint(s color.Style, text string) string {
	if !r.opts.Color {
		return text
	}
	return s.Sprint(text)
}

// closed reports whether the edge of cell id in direction d is drawn solid.
func (r *renderer) closed(id maze.CellID, d topology.Direction) bool {
	c, _ := r.m.Cell(id)
	nb := c.Neighbor(d)
	if nb == maze.NoCell {
		return true
	}
	_, walled := r.m.WallBetween(id, nb)
	return walled
}

func (r *renderer) marker(id maze.CellID) string {
	c, _ := r.m.Cell(id)
	switch {
	case id == r.m.Start():
		return r.paint(styleStart, "S")
	case id == r.m.End():
		return r.paint(styleGoal, "G")
	case r.path[id]:
		return r.paint(stylePath, "*")
	case c.Visited:
		return r.paint(styleVisited, ".")
	}
	return " "
}

// horizontal draws the edge line above (d == Top) or below (d == Bottom) row z.
func (r *renderer) horizontal(b *strings.Builder, g *maze.Grid, z int, d topology.Direction) {
	b.WriteString("+")
	for x := 0; x < g.Size(); x++ {
		id, _ := g.CellID(x, z)
		if r.closed(id, d) {
			b.WriteString(r.paint(styleWall, "---"))
		} else {
			b.WriteString("   ")
		}
		b.WriteString("+")
	}
	b.WriteString("\n")
}

func (r *renderer) face(b *strings.Builder, g *maze.Grid) {
	size := g.Size()
	for z := size - 1; z >= 0; z-- {
		r.horizontal(b, g, z, topology.Top)

		first, _ := g.CellID(0, z)
		if r.closed(first, topology.Left) {
			b.WriteString(r.paint(styleWall, "|"))
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < size; x++ {
			id, _ := g.CellID(x, z)
			b.WriteString(" " + r.marker(id) + " ")
			if r.closed(id, topology.Right) {
				b.WriteString(r.paint(styleWall, "|"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	r.horizontal(b, g, 0, topology.Bottom)
}

func newRenderer(m *maze.Maze, opts []Option) *renderer {
	r := &renderer{m: m}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.Path && m != nil {
		r.path = make(map[maze.CellID]bool)
		for _, id := range m.TrackedPath() {
			r.path[id] = true
		}
	}
	return r
}

// Render draws the grid of face f (topology.FaceNone for a flat maze).
// Returns maze.ErrUnknownFace when the maze has no such grid.
func Render(m *maze.Maze, f topology.Face, opts ...Option) (string, error) {
	g, ok := m.Grid(f)
	if !ok {
		return "", fmt.Errorf("%w: %s", maze.ErrUnknownFace, f)
	}
	var b strings.Builder
	newRenderer(m, opts).face(&b, g)
	return b.String(), nil
}

// RenderAll draws every grid of m in construction order. Cube faces are
// preceded by a "== Face ==" header.
func RenderAll(m *maze.Maze, opts ...Option) string {
	r := newRenderer(m, opts)
	var b strings.Builder
	for i, g := range m.Grids() {
		if g.Face() != topology.FaceNone {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "== %s ==\n", g.Face())
		}
		r.face(&b, g)
	}
	return b.String()
}

// RenderLayer draws layer y of a lattice: '#' for solid blocks, ' ' for
// carved ones, highest z first.
func RenderLayer(l *frontier.Lattice, y int, opts ...Option) (string, error) {
	rows, ok := l.Layer(y)
	if !ok {
		return "", fmt.Errorf("textmap: layer %d out of range", y)
	}
	r := newRenderer(nil, opts)
	var b strings.Builder
	for z := len(rows) - 1; z >= 0; z-- {
		for _, s := range rows[z] {
			if s == frontier.Open {
				b.WriteString(" ")
			} else {
				b.WriteString(r.paint(styleWall, "#"))
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
