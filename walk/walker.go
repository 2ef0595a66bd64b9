package walk

import (
	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/graph"
)

type stackEntry struct {
	sid  int
	bond graph.Bond
}

// Walk visits every atom in g exactly once, depth-first, reporting
// what it finds through f. A graph with more than one connected
// component is walked one component at a time in atom-index order,
// each starting with its own Root call.
//
// Walk never pre-decides how a bond should be elided or disambiguated
// in output — it reports every bond's true feature.BondKind unchanged
// and leaves that decision to f. A build.Builder ignores the
// distinction entirely; a write.Writer uses it to apply §4.H's
// rendering rules, including the case the original bond-kind-only
// view can't see: whether a formally Single bond sits between two
// aromatic atoms and needs an explicit '-' to stay unambiguous.
func Walk(g *graph.AdjacencyList, f Follower) error {
	n := g.Len()
	visited := make([]bool, n)
	pool := newRingPool()

	for id := 0; id < n; id++ {
		if visited[id] {
			continue
		}
		visited[id] = true
		if err := walkRoot(g, id, n, visited, f, pool); err != nil {
			return err
		}
	}
	return nil
}

func walkRoot(g *graph.AdjacencyList, rootID, size int, visited []bool, f Follower, pool *ringPool) error {
	rootAtom, _ := g.Atom(rootID)
	var stack []stackEntry
	chain := []int{rootID}

	for i := len(rootAtom.Bonds) - 1; i >= 0; i-- {
		stack = append(stack, stackEntry{sid: rootID, bond: rootAtom.Bonds[i]})
	}
	f.Root(rootAtom.Kind)

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sid, bond := entry.sid, entry.bond

		if err := validateBondIndices(sid, bond.Target, size); err != nil {
			return err
		}
		if popped := backtrackAndPop(sid, &chain); popped > 0 {
			f.Pop(popped)
		}

		if !visited[bond.Target] {
			visited[bond.Target] = true
			childAtom, _ := g.Atom(bond.Target)
			if err := processTreeEdge(sid, bond, childAtom, &stack, &chain, f); err != nil {
				return err
			}
		} else {
			processRingEdge(sid, bond, pool, f)
		}
	}
	return nil
}

func validateBondIndices(sid, tid, size int) error {
	if tid < 0 || tid >= size {
		return &UnknownTargetError{Source: sid, Target: tid}
	}
	if tid == sid {
		return &LoopError{Atom: sid}
	}
	return nil
}

// backtrackAndPop pops chain back to the last entry equal to sid,
// returning how many entries it removed.
func backtrackAndPop(sid int, chain *[]int) int {
	popped := 0
	for (*chain)[len(*chain)-1] != sid {
		*chain = (*chain)[:len(*chain)-1]
		popped++
	}
	return popped
}

func processTreeEdge(sid int, bond graph.Bond, child graph.Atom, stack *[]stackEntry, chain *[]int, f Follower) error {
	childKind := child.Kind
	var back graph.Bond
	found := false

	for idx := len(child.Bonds) - 1; idx >= 0; idx-- {
		out := child.Bonds[idx]
		if out.Target == sid {
			if idx%2 == 0 {
				childKind = childKind.InvertConfiguration()
			}
			back = out
			found = true
		} else {
			*stack = append(*stack, stackEntry{sid: bond.Target, bond: out})
		}
	}
	if !found {
		return &HalfBondError{Source: sid, Target: bond.Target}
	}
	if err := checkBondCompatibility(bond, back); err != nil {
		return err
	}

	*chain = append(*chain, bond.Target)
	f.Extend(bond.Kind, childKind)
	return nil
}

func checkBondCompatibility(fwd, back graph.Bond) error {
	if fwd.Kind == feature.BondUp || fwd.Kind == feature.BondDown {
		if fwd.Kind == back.Kind.Complement() {
			return nil
		}
		return &IncompatibleBondError{Source: fwd.Target, Target: back.Target}
	}
	if fwd.Kind != back.Kind {
		return &IncompatibleBondError{Source: fwd.Target, Target: back.Target}
	}
	return nil
}

func processRingEdge(sid int, bond graph.Bond, pool *ringPool, f Follower) {
	digit := pool.hit(sid, bond.Target)
	f.Join(bond.Kind, digit)
}
