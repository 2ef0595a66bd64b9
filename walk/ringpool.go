package walk

import "sort"

// ringPool assigns ring-closure digits to unordered atom-index pairs.
// Each physical ring bond is hit exactly twice, once from each
// endpoint: the first hit allocates a digit and the second retires it,
// so a digit becomes available for reuse by an unrelated, later ring
// as soon as the one that was using it fully closes (§4.G's
// lowest-numbered-free-digit rule — a deliberate departure from a
// simple monotonic counter, since SMILES writers conventionally reuse
// small ring digits rather than burning a fresh one per ring for the
// whole molecule).
type ringPool struct {
	open map[[2]int]int
	free []int
	next int
}

func newRingPool() *ringPool {
	return &ringPool{open: make(map[[2]int]int), next: 1}
}

func pairKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// hit returns the ring digit for the (sid, tid) pair, allocating a new
// one on the first call for that pair and retiring it on the second.
func (p *ringPool) hit(sid, tid int) int {
	key := pairKey(sid, tid)
	if digit, ok := p.open[key]; ok {
		delete(p.open, key)
		p.release(digit)
		return digit
	}
	digit := p.alloc()
	p.open[key] = digit
	return digit
}

func (p *ringPool) alloc() int {
	if len(p.free) > 0 {
		digit := p.free[0]
		p.free = p.free[1:]
		return digit
	}
	digit := p.next
	p.next++
	return digit
}

func (p *ringPool) release(digit int) {
	i := sort.SearchInts(p.free, digit)
	p.free = append(p.free, 0)
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = digit
}
