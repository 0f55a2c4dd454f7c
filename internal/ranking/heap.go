package ranking

// songCount is one song's play total within a group.
type songCount struct {
	SongId string
	Plays  int
}

// beats reports whether s outranks other: more plays, or equal plays and the
// lexicographically smaller song id. The comparison is total, so rankings do
// not depend on input order.
func (s songCount) beats(other songCount) bool {
	if s.Plays != other.Plays {
		return s.Plays > other.Plays
	}
	return s.SongId < other.SongId
}

// bottomHeap keeps a group's candidate set with the weakest song at the
// root, so a full heap evicts the right entry in O(log n).
type bottomHeap []songCount

func (h bottomHeap) Len() int           { return len(h) }
func (h bottomHeap) Less(i, j int) bool { return h[j].beats(h[i]) }
func (h bottomHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *bottomHeap) Push(x any) {
	*h = append(*h, x.(songCount))
}

func (h *bottomHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
