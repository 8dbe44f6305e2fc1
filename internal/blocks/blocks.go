// Package blocks resolves the connected color regions of a program grid:
// which codels form the region around a position, how many there are, and
// which edge codel the direction pointer and codel chooser select.
package blocks

import (
	"github.com/sl236/piet/internal/core"
	"github.com/sl236/piet/internal/grid"
)

// Block is one maximal 4-connected region of identically-colored codels.
// Blocks are discovered lazily and cached; the grid never changes, so block
// identity never changes either.
type Block struct {
	cells []core.Position
	edges [8]edgeEntry
}

type edgeEntry struct {
	pos   core.Position
	known bool
}

// Size returns the number of codels in the block. This is the value the
// push instruction produces.
func (b *Block) Size() int {
	return len(b.cells)
}

// Cells returns the block's codels in discovery order. Callers must not
// modify the returned slice.
func (b *Block) Cells() []core.Position {
	return b.cells
}

// Contains reports whether p belongs to the block.
func (b *Block) Contains(p core.Position) bool {
	for _, q := range b.cells {
		if q == p {
			return true
		}
	}
	return false
}

// Edge returns the codel the traversal rule exits from for the given DP and
// CC: first the codels extremal along the DP, then among those the one
// extremal in the CC's rotation of the DP. The result is cached per (DP, CC).
func (b *Block) Edge(dp core.Direction, cc core.Chooser) core.Position {
	idx := int(dp) * 2
	if cc == core.ChooseRight {
		idx++
	}
	if b.edges[idx].known {
		return b.edges[idx].pos
	}

	// Scores grow in the DP direction (primary) and in the chooser's
	// rotation of the DP (secondary); the winner maximizes both in order.
	px, py := dp.Delta()
	sx, sy := dp.Rotate(cc.Rotation()).Delta()

	best := b.cells[0]
	bestP := best.X*px + best.Y*py
	bestS := best.X*sx + best.Y*sy
	for _, p := range b.cells[1:] {
		prim := p.X*px + p.Y*py
		sec := p.X*sx + p.Y*sy
		if prim > bestP || (prim == bestP && sec > bestS) {
			best, bestP, bestS = p, prim, sec
		}
	}

	b.edges[idx] = edgeEntry{pos: best, known: true}
	return best
}

// Resolver computes and caches the blocks of one grid.
type Resolver struct {
	g      *grid.Grid
	ids    []int // per-codel block id; -1 when not yet discovered
	blocks []*Block
}

// NewResolver creates a resolver for g.
func NewResolver(g *grid.Grid) *Resolver {
	ids := make([]int, g.Cols()*g.Rows())
	for i := range ids {
		ids[i] = -1
	}
	return &Resolver{g: g, ids: ids}
}

// At returns the block containing p. p must be in bounds and hold a colored
// codel (not white, not black, not a passable/blocking non-standard).
// The first call for a block flood-fills it with an explicit worklist;
// recursion would blow the goroutine stack on large uniform regions.
func (r *Resolver) At(p core.Position) *Block {
	if id := r.ids[r.index(p)]; id >= 0 {
		return r.blocks[id]
	}

	id := len(r.blocks)
	b := &Block{}
	color := r.g.ColorAt(p)

	work := []core.Position{p}
	r.ids[r.index(p)] = id
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		b.cells = append(b.cells, cur)

		for d := core.DirRight; d <= core.DirUp; d++ {
			n := cur.Move(d)
			if !r.g.In(n) || r.g.ColorAt(n) != color {
				continue
			}
			if i := r.index(n); r.ids[i] < 0 {
				r.ids[i] = id
				work = append(work, n)
			}
		}
	}

	r.blocks = append(r.blocks, b)
	return b
}

func (r *Resolver) index(p core.Position) int {
	return p.Y*r.g.Cols() + p.X
}
