package traverse

import "github.com/coregx/whynot/record"

// insertByMissingCount inserts r into tails, which is kept sorted by
// ascending MissingCount(). Ties place r after existing entries with
// equal count (right-biased upper-bound insertion), so strictly fewer-
// missing tails are always tested and expanded before their equal-or-
// costlier peers in the next generation, and FIFO order is preserved
// among tails of equal cost.
func insertByMissingCount[S comparable](tails []*record.Record[S], r *record.Record[S]) []*record.Record[S] {
	lo, hi := 0, len(tails)
	for lo < hi {
		mid := (lo + hi) / 2
		if tails[mid].MissingCount() <= r.MissingCount() {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	tails = append(tails, nil)
	copy(tails[lo+1:], tails[lo:])
	tails[lo] = r
	return tails
}
