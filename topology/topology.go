package topology

import (
	"fmt"
	"strings"
)

// Face identifies one surface of a cube maze, or FaceNone for a flat maze.
type Face uint8

const (
	// FaceNone marks the single grid of a flat maze.
	FaceNone Face = iota
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
	FaceFront
	FaceBack
)

// CubeFaces lists the six cube faces in construction order.
var CubeFaces = [6]Face{FaceTop, FaceBottom, FaceLeft, FaceRight, FaceFront, FaceBack}

var faceNames = [...]string{"None", "Top", "Bottom", "Left", "Right", "Front", "Back"}

// String returns the face name.
func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

// ParseFace maps a face name, case-insensitively, to its Face.
// An empty string or "none" yields FaceNone.
func ParseFace(s string) (Face, bool) {
	if s == "" {
		return FaceNone, true
	}
	for i, name := range faceNames {
		if strings.EqualFold(s, name) {
			return Face(i), true
		}
	}
	return FaceNone, false
}

// Valid reports whether f is one of the six cube faces.
func (f Face) Valid() bool {
	return f >= FaceTop && f <= FaceBack
}

// Direction is a planar step on a face grid.
type Direction uint8

const (
	// Left steps to x-1.
	Left Direction = iota
	// Right steps to x+1.
	Right
	// Top steps to z+1.
	Top
	// Bottom steps to z-1.
	Bottom
)

// Directions lists the four directions in neighbour iteration order.
var Directions = [4]Direction{Left, Right, Top, Bottom}

var directionNames = [...]string{"Left", "Right", "Top", "Bottom"}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	case Bottom:
		return Top
	}
	panic(fmt.Sprintf("topology: invalid direction %d", uint8(d)))
}

// Delta returns the (dx, dz) step of d inside a face.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Top:
		return 0, 1
	case Bottom:
		return 0, -1
	}
	panic(fmt.Sprintf("topology: invalid direction %d", uint8(d)))
}

// Horizontal reports whether d moves along x.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Seam describes what lies beyond one edge of a face.
type Seam struct {
	// Face is the neighbouring face.
	Face Face
	// Entry is the edge of Face that touches the source face,
	// i.e. the direction on Face that leads back across the seam.
	Entry Direction
	// Reversed is true when the along-edge index runs the other way on Face.
	Reversed bool
}

// seams is indexed by [face-1][direction].
var seams = [6][4]Seam{
	// Top
	{
		Left:   {FaceLeft, Top, true},
		Right:  {FaceRight, Top, false},
		Top:    {FaceBack, Top, true},
		Bottom: {FaceFront, Top, false},
	},
	// Bottom
	{
		Left:   {FaceLeft, Bottom, false},
		Right:  {FaceRight, Bottom, true},
		Top:    {FaceFront, Bottom, false},
		Bottom: {FaceBack, Bottom, true},
	},
	// Left
	{
		Left:   {FaceBack, Right, false},
		Right:  {FaceFront, Left, false},
		Top:    {FaceTop, Left, true},
		Bottom: {FaceBottom, Left, false},
	},
	// Right
	{
		Left:   {FaceFront, Right, false},
		Right:  {FaceBack, Left, false},
		Top:    {FaceTop, Right, false},
		Bottom: {FaceBottom, Right, true},
	},
	// Front
	{
		Left:   {FaceLeft, Right, false},
		Right:  {FaceRight, Left, false},
		Top:    {FaceTop, Bottom, false},
		Bottom: {FaceBottom, Top, false},
	},
	// Back
	{
		Left:   {FaceRight, Right, false},
		Right:  {FaceLeft, Left, false},
		Top:    {FaceTop, Top, true},
		Bottom: {FaceBottom, Bottom, true},
	},
}

// Cross returns the seam beyond edge d of face f.
// It panics if f is not a cube face or d is not a Direction.
func Cross(f Face, d Direction) Seam {
	if !f.Valid() || d > Bottom {
		panic(fmt.Sprintf("topology: no seam for face %s direction %s", f, d))
	}
	return seams[f-FaceTop][d]
}

// Neighbor returns the face beyond edge d of face f.
// It panics under the same conditions as Cross.
func Neighbor(f Face, d Direction) Face {
	return Cross(f, d).Face
}

// EdgeCell maps a cell (x, z) on the d edge of a size×size face to the cell
// it touches across the seam. The caller guarantees (x, z) lies on that edge.
//
// Complexity: O(1).
func EdgeCell(f Face, d Direction, x, z, size int) (Face, int, int) {
	s := Cross(f, d)
	t := x
	if d.Horizontal() {
		t = z
	}
	if s.Reversed {
		t = size - 1 - t
	}
	switch s.Entry {
	case Left:
		return s.Face, 0, t
	case Right:
		return s.Face, size - 1, t
	case Top:
		return s.Face, t, size - 1
	default:
		return s.Face, t, 0
	}
}
