package grid

// Braille patterns cover a 2x4 dot matrix per cell:
//  1 4
//  2 5
//  3 6
//  7 8
//
// Unicode offset 0x2800. Every 8-bit value maps to exactly one code point
// in the block, so encoding is total and has no failure path.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// BrailleBase is the first code point of the braille patterns block.
const BrailleBase rune = 0x2800

// DotsPerCellX and DotsPerCellY define the dot resolution of one cell.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// Color is a 24-bit RGB foreground color.
type Color struct {
	R, G, B uint8
}

// Cell is one terminal character position: an 8-dot bitfield, an optional
// color, and an optional override rune displayed instead of the braille
// pattern. Plain value semantics so copying a cell copies everything.
type Cell struct {
	Bits     uint8
	Override rune // 0 when unset
	Color    Color
	HasColor bool
}

// Rune returns the display rune for the cell: the override if set,
// otherwise the braille code point encoding the bitfield.
func (c Cell) Rune() rune {
	if c.Override != 0 {
		return c.Override
	}
	return BrailleBase + rune(c.Bits)
}

// Grid is a width x height array of cells, addressed either in cell space
// or in dot space (width*2 x height*4). The backing slice length is always
// width*height; changing dimensions means allocating a new grid.
type Grid struct {
	width, height int
	cells         []Cell
}

// New allocates a cleared grid. Dimensions must be positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// DotWidth returns the grid width in dots.
func (g *Grid) DotWidth() int { return g.width * DotsPerCellX }

// DotHeight returns the grid height in dots.
func (g *Grid) DotHeight() int { return g.height * DotsPerCellY }

func (g *Grid) dotIndex(x, y int) (idx int, bit uint8, err error) {
	if x < 0 || y < 0 || x >= g.DotWidth() || y >= g.DotHeight() {
		return 0, 0, &OutOfBoundsError{Space: SpaceDot, X: x, Y: y, MaxX: g.DotWidth() - 1, MaxY: g.DotHeight() - 1}
	}
	col := x / DotsPerCellX
	row := y / DotsPerCellY
	return row*g.width + col, dotBits[y%DotsPerCellY][x%DotsPerCellX], nil
}

func (g *Grid) cellIndex(cx, cy int) (int, error) {
	if cx < 0 || cy < 0 || cx >= g.width || cy >= g.height {
		return 0, &OutOfBoundsError{Space: SpaceCell, X: cx, Y: cy, MaxX: g.width - 1, MaxY: g.height - 1}
	}
	return cy*g.width + cx, nil
}

// SetDot sets or clears a single dot at dot-space coordinates.
func (g *Grid) SetDot(x, y int, on bool) error {
	idx, bit, err := g.dotIndex(x, y)
	if err != nil {
		return err
	}
	if on {
		g.cells[idx].Bits |= bit
	} else {
		g.cells[idx].Bits &^= bit
	}
	return nil
}

// Dot reports whether the dot at dot-space coordinates is set.
func (g *Grid) Dot(x, y int) (bool, error) {
	idx, bit, err := g.dotIndex(x, y)
	if err != nil {
		return false, err
	}
	return g.cells[idx].Bits&bit != 0, nil
}

// Clear resets all dots, colors, and override runes without reallocating.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// CellBits returns the raw bitfield of a cell.
func (g *Grid) CellBits(cx, cy int) (uint8, error) {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return 0, err
	}
	return g.cells[idx].Bits, nil
}

// CellRune returns the display rune of a cell: the override rune if set,
// otherwise the braille encoding of the bitfield.
func (g *Grid) CellRune(cx, cy int) (rune, error) {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return 0, err
	}
	return g.cells[idx].Rune(), nil
}

// Cell returns a copy of the cell at cell-space coordinates.
func (g *Grid) Cell(cx, cy int) (Cell, error) {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[idx], nil
}

// SetCellBits replaces a cell's entire bitfield at once.
func (g *Grid) SetCellBits(cx, cy int, bits uint8) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	g.cells[idx].Bits = bits
	return nil
}

// SetCellColor assigns a foreground color to a cell.
func (g *Grid) SetCellColor(cx, cy int, c Color) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	g.cells[idx].Color = c
	g.cells[idx].HasColor = true
	return nil
}

// ClearCellColor removes the cell's color, falling back to the terminal default.
func (g *Grid) ClearCellColor(cx, cy int) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	g.cells[idx].Color = Color{}
	g.cells[idx].HasColor = false
	return nil
}

// SetOverride sets a rune displayed instead of the braille pattern,
// used by text and block rendering modes layered on the same grid.
func (g *Grid) SetOverride(cx, cy int, r rune) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	g.cells[idx].Override = r
	return nil
}

// ClearOverride removes the override rune from a cell.
func (g *Grid) ClearOverride(cx, cy int) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	g.cells[idx].Override = 0
	return nil
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// CopyFrom overwrites this grid's cells with src's. Both grids must have
// identical dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.width != src.width || g.height != src.height {
		return &DimensionError{Width: src.width, Height: src.height}
	}
	copy(g.cells, src.cells)
	return nil
}

// SameSize reports whether two grids have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.width == other.width && g.height == other.height
}
