// Package life implements Conway's Game of Life on a bounded grid using an
// active cell set. Only cells that are alive or next to something alive are
// evaluated each generation, so the cost of Step follows the population
// rather than the board area.
//
// The board is stored flat with a dead frame one cell thick around the
// visible region. Active cells never include frame cells, which lets every
// neighbor lookup skip bounds checks. All coordinates taken and returned by
// this package are padded grid coordinates: the visible region spans
// x in [1, W] and y in [1, H].
//
// A Life is not safe for concurrent use.
package life

import (
	"errors"
	"fmt"

	"changelist-life/internal/core"
	"changelist-life/internal/patterns"
)

var (
	// ErrInvalidDimensions is reported when constructing a board smaller
	// than 1×1.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds is reported for coordinates, indices or template
	// placements outside the region they must address.
	ErrOutOfBounds = errors.New("out of bounds")
)

// Life is a Game of Life board with an incrementally maintained active set.
type Life struct {
	cfg     Config
	layout  core.Layout
	offsets [8]int

	board  []uint8
	counts []uint8

	// active holds the cells evaluated by the next Step; spare receives the
	// advanced set and is swapped in once the pass completes.
	active *indexSet
	spare  *indexSet

	scene      []stamp
	visible    []uint8
	generation int
}

// New returns an empty w×h board.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Scene = SceneEmpty
	return NewWithConfig(cfg)
}

// NewWithConfig returns a board configured from the provided options. The
// configured scene is validated but not placed until Reset.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("life: %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidDimensions)
	}
	layout := core.NewLayout(cfg.Width, cfg.Height)
	size := layout.Len()
	l := &Life{
		cfg:     cfg,
		layout:  layout,
		offsets: layout.Offsets(),
		board:   make([]uint8, size),
		counts:  make([]uint8, size),
		active:  newIndexSet(size),
		spare:   newIndexSet(size),
		visible: make([]uint8, cfg.Width*cfg.Height),
	}
	scene, err := l.planScene(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	l.scene = scene
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the visible grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.layout.W, H: l.layout.H} }

// Layout exposes the padded coordinate mapping.
func (l *Life) Layout() core.Layout { return l.layout }

// Config returns the options the board was built with.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of steps since the last Reset or Clear.
func (l *Life) Generation() int { return l.generation }

// Cells copies the visible region into a row-major W×H buffer. The buffer is
// reused by later calls.
func (l *Life) Cells() []uint8 {
	w := l.layout.W
	for y := 1; y <= l.layout.H; y++ {
		start := l.layout.Index(1, y)
		copy(l.visible[(y-1)*w:y*w], l.board[start:start+w])
	}
	return l.visible
}

// Reset clears the board and places the configured scene. Random scenes use
// seed, or the configured seed when seed is zero.
func (l *Life) Reset(seed int64) {
	l.clearBoard()
	if l.cfg.Scene == SceneRandom {
		if seed == 0 {
			seed = l.cfg.Seed
		}
		rng := core.NewRNG(seed)
		for y := 1; y <= l.layout.H; y++ {
			for x := 1; x <= l.layout.W; x++ {
				if rng.Chance(l.cfg.Density) {
					l.board[l.layout.Index(x, y)] = 1
				}
			}
		}
	}
	for _, s := range l.scene {
		l.write(s.p, s.x, s.y)
	}
	l.RebuildActiveSet()
}

// Clear kills every cell and empties the active set.
func (l *Life) Clear() {
	l.clearBoard()
	l.active.clear()
}

func (l *Life) clearBoard() {
	clear(l.board)
	clear(l.counts)
	l.generation = 0
}

// Step advances the board by one generation. The active set is advanced
// from the current board first, then neighbor counts for every active cell
// are taken, and only then are new states written, so every cell sees the
// board as it was when Step was called.
func (l *Life) Step() {
	l.advanceActiveSet()
	l.countNeighbors()
	l.applyRules()
	l.generation++
}

// Neighbors returns the indices of the eight cells around i. It does not
// validate i; only indices outside the frame are guaranteed to have all
// eight neighbors inside the buffer.
func (l *Life) Neighbors(i int) [8]int {
	var out [8]int
	for k, off := range l.offsets {
		out[k] = i + off
	}
	return out
}

// NeighborSum counts the live cells around i. Like Neighbors it must only be
// called for indices outside the frame.
func (l *Life) NeighborSum(i int) int {
	sum := 0
	for _, off := range l.offsets {
		sum += int(l.board[i+off])
	}
	return sum
}

// RebuildActiveSet recomputes the active set from scratch: every live cell
// and each of its neighbors outside the frame.
func (l *Life) RebuildActiveSet() {
	l.active.clear()
	for y := 1; y <= l.layout.H; y++ {
		row := l.layout.Index(0, y)
		for x := 1; x <= l.layout.W; x++ {
			i := row + x
			if l.board[i] == 0 {
				continue
			}
			l.active.insert(i)
			l.insertNeighbors(l.active, i)
		}
	}
}

// advanceActiveSet drops cells that are dead with no live neighbors and adds
// the neighbors of every cell that stays.
func (l *Life) advanceActiveSet() {
	next := l.spare
	next.clear()
	for _, v := range l.active.values() {
		i := int(v)
		if l.board[i] == 0 && l.NeighborSum(i) == 0 {
			continue
		}
		next.insert(i)
		l.insertNeighbors(next, i)
	}
	l.active, l.spare = next, l.active
}

func (l *Life) insertNeighbors(s *indexSet, i int) {
	for _, off := range l.offsets {
		j := i + off
		if !l.layout.IsBorder(j) {
			s.insert(j)
		}
	}
}

func (l *Life) countNeighbors() {
	for _, v := range l.active.values() {
		l.counts[v] = uint8(l.NeighborSum(int(v)))
	}
}

func (l *Life) applyRules() {
	for _, v := range l.active.values() {
		n := l.counts[v]
		if n == 3 || (n == 2 && l.board[v] == 1) {
			l.board[v] = 1
			continue
		}
		l.board[v] = 0
	}
}

// ToggleCell flips the cell at (x, y), which must be visible, and rebuilds
// the active set.
func (l *Life) ToggleCell(x, y int) error {
	if !l.layout.Visible(x, y) {
		return fmt.Errorf("toggle (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	l.board[l.layout.Index(x, y)] ^= 1
	l.RebuildActiveSet()
	return nil
}

// LoadPattern writes p with its top-left corner at (x, y) and rebuilds the
// active set. Dead template cells overwrite live board cells. A template
// that would not fit entirely inside the visible region is rejected with
// ErrOutOfBounds and the board is left untouched.
func (l *Life) LoadPattern(p patterns.Pattern, x, y int) error {
	if err := l.checkFit(p, x, y); err != nil {
		return err
	}
	l.write(p, x, y)
	l.RebuildActiveSet()
	return nil
}

// LoadPatternFile reads a template from disk and loads it at (x, y).
func (l *Life) LoadPatternFile(path string, x, y int) error {
	p, err := patterns.Load(path)
	if err != nil {
		return err
	}
	return l.LoadPattern(p, x, y)
}

// checkFit measures the template from its rows, not its Width and Height
// fields.
func (l *Life) checkFit(p patterns.Pattern, x, y int) error {
	w, h := 0, len(p.Rows)
	for _, row := range p.Rows {
		w = max(w, len(row))
	}
	if !l.layout.Visible(x, y) || x+w-1 > l.layout.W || y+h-1 > l.layout.H {
		return fmt.Errorf("template %q (%dx%d) at (%d,%d) on %dx%d board: %w",
			p.Name, w, h, x, y, l.layout.W, l.layout.H, ErrOutOfBounds)
	}
	return nil
}

func (l *Life) write(p patterns.Pattern, x, y int) {
	for dy, row := range p.Rows {
		base := l.layout.Index(x, y+dy)
		for dx, alive := range row {
			if alive {
				l.board[base+dx] = 1
			} else {
				l.board[base+dx] = 0
			}
		}
	}
}

// IsAlive reports whether index i holds a live cell. Indices outside the
// buffer are dead.
func (l *Life) IsAlive(i int) bool {
	return i >= 0 && i < len(l.board) && l.board[i] == 1
}

// ActiveIndices returns a copy of the active set.
func (l *Life) ActiveIndices() []int {
	vals := l.active.values()
	out := make([]int, len(vals))
	for k, v := range vals {
		out[k] = int(v)
	}
	return out
}

// EachActive calls fn for every active index without allocating. fn must not
// mutate the board.
func (l *Life) EachActive(fn func(i int)) {
	for _, v := range l.active.values() {
		fn(int(v))
	}
}

// ActiveCount returns the size of the active set.
func (l *Life) ActiveCount() int { return l.active.len() }

// Population counts live cells. Every live cell is active, so only the
// active set is scanned.
func (l *Life) Population() int {
	n := 0
	for _, v := range l.active.values() {
		n += int(l.board[v])
	}
	return n
}

// Linearize converts padded coordinates to a linear index.
func (l *Life) Linearize(x, y int) (int, error) {
	if !l.layout.InBuffer(x, y) {
		return 0, fmt.Errorf("linearize (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return l.layout.Index(x, y), nil
}

// Delinearize converts a linear index to padded coordinates.
func (l *Life) Delinearize(i int) (int, int, error) {
	if i < 0 || i >= l.layout.Len() {
		return 0, 0, fmt.Errorf("delinearize %d: %w", i, ErrOutOfBounds)
	}
	x, y := l.layout.Coords(i)
	return x, y, nil
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
