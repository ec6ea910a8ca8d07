package gridgraph

import "github.com/pkg/errors"

// OpenCount returns the number of open cells across all layers.
func (gg *GridGraph) OpenCount() int {
	n := 0
	for i := range gg.cells {
		if gg.cells[i].open {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of undirected connections; each one is
// counted once although both endpoints record it.
func (gg *GridGraph) EdgeCount() int {
	halves := 0
	for i := range gg.cells {
		halves += gg.cells[i].conns.Count()
	}
	return halves / 2
}

// BridgeCount returns the number of open cells on the upper layer, which is
// the number of bridge decks in a generated maze.
func (gg *GridGraph) BridgeCount() int {
	n := 0
	for i := gg.Width * gg.Height; i < len(gg.cells); i++ {
		if gg.cells[i].open {
			n++
		}
	}
	return n
}

// Validate checks the symmetry invariant: every connection of every cell
// leads to an existing open cell that records the mirrored connection with
// the inverse vertical offset, and connected cells are open.
// Returns the first violation wrapped around ErrAsymmetricConnection.
// Complexity: O(W×H×L).
func (gg *GridGraph) Validate() error {
	for ref := range gg.cells {
		c := gg.cells[ref]
		if c.conns != 0 && !c.open {
			return errors.Wrapf(ErrAsymmetricConnection, "closed cell %d has connections", ref)
		}
		for _, d := range Directions {
			if !c.conns.Has(d) {
				continue
			}
			to, ok := gg.Neighbor(ref, d, c.vertical[d])
			if !ok {
				return errors.Wrapf(ErrAsymmetricConnection, "cell %d %s leaves the grid", ref, d)
			}
			back := d.Opposite()
			t := gg.cells[to]
			if !t.open || !t.conns.Has(back) || t.vertical[back] != c.vertical[d].Inverse() {
				return errors.Wrapf(ErrAsymmetricConnection, "cell %d %s to %d is one-sided", ref, d, to)
			}
		}
	}
	return nil
}

// Components finds the connected components of open cells, following
// connections (including bridge ramps). Each component is a slice of cell
// references in discovery order; components are ordered by their lowest
// reference.
//
// Time:   O(W·H·L).
// Memory: O(W·H·L) for seen flags and output.
func (gg *GridGraph) Components() [][]int {
	seen := make([]bool, len(gg.cells))
	var comps [][]int

	for i0 := range gg.cells {
		if !gg.cells[i0].open || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, d := range Directions {
				v, ok := gg.Follow(u, d)
				if !ok || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
