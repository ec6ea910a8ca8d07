package maze

import (
	"math/rand"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// grower carries the state of one Generate call.
type grower struct {
	g       *gridgraph.GridGraph
	rng     *rand.Rand
	p       Probabilities
	log     logr.Logger
	threads *linkedlistqueue.Queue
	bridges int
	loops   int
}

// Generate grows a maze in place inside the blank graph g and returns the
// start cell. The result is a single connected component containing the
// start: every cell it opens is connected to an already open cell.
//
// Returns ErrNilRNG, ErrInvalidProbability or ErrGridTooSmall for bad input.
// Input is checked before the graph is touched.
func Generate(g *gridgraph.GridGraph, rng *rand.Rand, p Probabilities, opts ...Option) (int, error) {
	if g == nil {
		return gridgraph.NoCell, errors.Wrap(gridgraph.ErrEmptyGrid, "maze: nil graph")
	}
	if rng == nil {
		return gridgraph.NoCell, ErrNilRNG
	}
	if !p.valid() {
		return gridgraph.NoCell, errors.Wrapf(ErrInvalidProbability, "%+v", p)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	spanX, spanY := g.Width-2*o.margin, g.Height-2*o.margin
	if spanX < 1 || spanY < 1 {
		return gridgraph.NoCell, errors.Wrapf(ErrGridTooSmall, "%d×%d with margin %d", g.Width, g.Height, o.margin)
	}
	start, _ := g.CellAt(o.margin+rng.Intn(spanX), o.margin+rng.Intn(spanY), 0)

	w := &grower{
		g:       g,
		rng:     rng,
		p:       p,
		log:     o.log,
		threads: linkedlistqueue.New(),
	}
	if err := w.run(start); err != nil {
		return gridgraph.NoCell, err
	}

	w.log.V(1).Info("maze generated",
		"open", g.OpenCount(), "edges", g.EdgeCount(), "bridges", w.bridges, "loops", w.loops)
	return start, nil
}

// run seeds the thread queue with start twice and drains it.
func (w *grower) run(start int) error {
	if err := w.g.Open(start); err != nil {
		return err
	}
	x, y, _ := w.g.Coordinate(start)
	w.log.V(1).Info("growth started", "x", x, "y", y)

	w.threads.Enqueue(start)
	w.threads.Enqueue(start)

	for !w.threads.Empty() {
		v, _ := w.threads.Dequeue()
		c := v.(int)
		for {
			extended, err := w.extend(c)
			if err != nil {
				return err
			}
			if !extended || !chance(w.rng, w.p.Branch) {
				break
			}
		}
	}
	return nil
}

// extend makes at most one new connection from c, scanning the four
// directions from a random offset. It reports false when c is a dead end.
func (w *grower) extend(c int) (bool, error) {
	offset := w.rng.Intn(4)
	for i := 0; i < 4; i++ {
		d := gridgraph.Direction((i + offset) % 4)
		if w.g.Connections(c).Has(d) {
			continue
		}
		n, ok := w.g.Neighbor(c, d, gridgraph.Flat)
		if !ok {
			continue
		}

		if !w.g.IsOpen(n) {
			if err := w.link(c, d); err != nil {
				return false, err
			}
			w.threads.Enqueue(n)
			return true, nil
		}

		// n's side of this edge already belongs to a ramp onto a deck above c.
		if w.g.Connections(n).Has(d.Opposite()) {
			continue
		}
		if deck, far, ok := w.bridgeSite(n, d); ok && chance(w.rng, w.p.Bridge) {
			if err := w.bridge(c, d, deck, far); err != nil {
				return false, err
			}
			return true, nil
		}
		if chance(w.rng, w.p.Loop) {
			if _, err := w.g.Connect(c, d, gridgraph.Flat); err != nil {
				return false, err
			}
			w.loops++
			return true, nil
		}
	}
	return false, nil
}

// link connects c flatly in direction d and opens the neighbor.
func (w *grower) link(c int, d gridgraph.Direction) error {
	n, err := w.g.Connect(c, d, gridgraph.Flat)
	if err != nil {
		return err
	}
	return w.g.Open(n)
}

// bridgeSite reports whether the open cell n can be crossed in direction d:
// n must be a straight corridor running across d (its connections are exactly
// the two perpendicular directions), the deck above n must be closed, and the
// ground cell beyond n must exist and be closed.
func (w *grower) bridgeSite(n int, d gridgraph.Direction) (deck, far int, ok bool) {
	if w.g.Connections(n) != d.Perpendicular() {
		return gridgraph.NoCell, gridgraph.NoCell, false
	}
	far, ok = w.g.Neighbor(n, d, gridgraph.Flat)
	if !ok || w.g.IsOpen(far) {
		return gridgraph.NoCell, gridgraph.NoCell, false
	}
	x, y, layer := w.g.Coordinate(n)
	deck, ok = w.g.CellAt(x, y, layer+1)
	if !ok || w.g.IsOpen(deck) {
		return gridgraph.NoCell, gridgraph.NoCell, false
	}
	return deck, far, true
}

// bridge ramps up from c onto deck and down again onto far, opens both and
// spawns a thread at far.
func (w *grower) bridge(c int, d gridgraph.Direction, deck, far int) error {
	if _, err := w.g.Connect(c, d, gridgraph.VerticalUp); err != nil {
		return err
	}
	if _, err := w.g.Connect(deck, d, gridgraph.VerticalDown); err != nil {
		return err
	}
	if err := w.g.Open(deck); err != nil {
		return err
	}
	if err := w.g.Open(far); err != nil {
		return err
	}
	w.threads.Enqueue(far)
	w.bridges++

	x, y, _ := w.g.Coordinate(deck)
	w.log.V(1).Info("bridge built", "x", x, "y", y, "direction", d.String())
	return nil
}
