package ranking

import (
	"container/heap"

	"github.com/ElmaazouziSara/song-stream-daily/internal/listen"
	"github.com/ElmaazouziSara/song-stream-daily/internal/loader"
)

// TopSize is how many songs each group's ranking keeps.
const TopSize = 50

// Entry is one ranked song within a group. Ranks start at 1 and play counts
// never increase as the rank grows.
type Entry struct {
	Rank      int
	SongId    string
	PlayCount int
}

// Country maps a country to its ranked songs.
type Country map[string][]Entry

// User maps a user id to its ranked songs.
type User map[string][]Entry

// Rank computes the two independent daily rankings of a batch. Groups with
// no events never appear; an empty batch yields two empty mappings.
func Rank(batch *loader.Batch) (Country, User) {
	country := Country(rankBy(batch, func(ev listen.Event) string { return ev.Country }))
	user := User(rankBy(batch, func(ev listen.Event) string { return ev.UserId }))
	return country, user
}

func rankBy(batch *loader.Batch, key func(listen.Event) string) map[string][]Entry {
	counts := make(map[string]map[string]int)
	for _, ev := range batch.Events {
		k := key(ev)
		if counts[k] == nil {
			counts[k] = make(map[string]int)
		}
		counts[k][ev.SongId]++
	}

	ranked := make(map[string][]Entry, len(counts))
	for k, songs := range counts {
		ranked[k] = top(songs, TopSize)
	}
	return ranked
}

// top selects the n most played songs, ordered by plays descending and song
// id ascending on equal plays, and assigns ranks 1..len.
func top(songs map[string]int, n int) []Entry {
	h := make(bottomHeap, 0, n)
	for id, plays := range songs {
		c := songCount{SongId: id, Plays: plays}
		if h.Len() < n {
			heap.Push(&h, c)
		} else if c.beats(h[0]) {
			heap.Pop(&h)
			heap.Push(&h, c)
		}
	}

	entries := make([]Entry, h.Len())
	for i := len(entries) - 1; i >= 0; i-- {
		c := heap.Pop(&h).(songCount)
		entries[i] = Entry{Rank: i + 1, SongId: c.SongId, PlayCount: c.Plays}
	}
	return entries
}
