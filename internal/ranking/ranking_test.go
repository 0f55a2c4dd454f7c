package ranking

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/ElmaazouziSara/song-stream-daily/internal/listen"
	"github.com/ElmaazouziSara/song-stream-daily/internal/loader"
)

func event(user, country, song string) listen.Event {
	return listen.Event{
		Timestamp: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		UserId:    user,
		Country:   country,
		SongId:    song,
	}
}

func batchOf(events ...listen.Event) *loader.Batch {
	return &loader.Batch{Date: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), Events: events}
}

func TestRankCountryAndUser(t *testing.T) {
	country, user := Rank(batchOf(
		event("u1", "US", "songA"),
		event("u1", "US", "songA"),
		event("u2", "US", "songB"),
	))

	wantUS := []Entry{{Rank: 1, SongId: "songA", PlayCount: 2}, {Rank: 2, SongId: "songB", PlayCount: 1}}
	if !reflect.DeepEqual(country["US"], wantUS) {
		t.Errorf("Expected US ranking %v, got %v", wantUS, country["US"])
	}

	wantU1 := []Entry{{Rank: 1, SongId: "songA", PlayCount: 2}}
	if !reflect.DeepEqual(user["u1"], wantU1) {
		t.Errorf("Expected u1 ranking %v, got %v", wantU1, user["u1"])
	}

	wantU2 := []Entry{{Rank: 1, SongId: "songB", PlayCount: 1}}
	if !reflect.DeepEqual(user["u2"], wantU2) {
		t.Errorf("Expected u2 ranking %v, got %v", wantU2, user["u2"])
	}
}

func TestRankTieBreaksBySongId(t *testing.T) {
	country, _ := Rank(batchOf(
		event("u1", "FR", "songY"),
		event("u1", "FR", "songX"),
	))

	fr := country["FR"]
	if len(fr) != 2 {
		t.Fatalf("Expected 2 entries for FR, got %d", len(fr))
	}
	if fr[0].SongId != "songX" || fr[1].SongId != "songY" {
		t.Errorf("Expected songX before songY on equal plays, got %s then %s", fr[0].SongId, fr[1].SongId)
	}
}

func TestRankTruncatesToTopSize(t *testing.T) {
	events := make([]listen.Event, 0, 60)
	for i := 0; i < 60; i++ {
		events = append(events, event("u1", "FR", fmt.Sprintf("song%03d", i)))
	}

	country, user := Rank(batchOf(events...))
	if len(country["FR"]) != TopSize {
		t.Errorf("Expected country ranking capped at %d, got %d", TopSize, len(country["FR"]))
	}
	if len(user["u1"]) != TopSize {
		t.Errorf("Expected user ranking capped at %d, got %d", TopSize, len(user["u1"]))
	}
}

func TestRankInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	events := make([]listen.Event, 0, 500)
	for i := 0; i < 500; i++ {
		events = append(events, event(
			fmt.Sprintf("u%d", rng.Intn(5)),
			[]string{"FR", "GB", "BE"}[rng.Intn(3)],
			fmt.Sprintf("song%02d", rng.Intn(70)),
		))
	}

	country, user := Rank(batchOf(events...))
	for _, rankings := range []map[string][]Entry{country, user} {
		for key, entries := range rankings {
			if len(entries) == 0 {
				t.Errorf("Group %s should never be emitted empty", key)
			}
			if len(entries) > TopSize {
				t.Errorf("Group %s exceeds %d entries: %d", key, TopSize, len(entries))
			}
			for i, e := range entries {
				if e.Rank != i+1 {
					t.Errorf("Group %s: expected rank %d at position %d, got %d", key, i+1, i, e.Rank)
				}
				if i > 0 && entries[i-1].PlayCount < e.PlayCount {
					t.Errorf("Group %s: play counts increase at rank %d", key, e.Rank)
				}
			}
		}
	}
}

func TestRankIsInputOrderIndependent(t *testing.T) {
	events := []listen.Event{
		event("u1", "FR", "songB"),
		event("u1", "FR", "songA"),
		event("u2", "FR", "songA"),
		event("u2", "FR", "songC"),
		event("u3", "GB", "songB"),
	}

	country1, user1 := Rank(batchOf(events...))

	shuffled := make([]listen.Event, len(events))
	copy(shuffled, events)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	country2, user2 := Rank(batchOf(shuffled...))
	if !reflect.DeepEqual(country1, country2) {
		t.Errorf("Country rankings differ after reshuffling input: %v vs %v", country1, country2)
	}
	if !reflect.DeepEqual(user1, user2) {
		t.Errorf("User rankings differ after reshuffling input: %v vs %v", user1, user2)
	}
}

func TestRankEmptyBatch(t *testing.T) {
	country, user := Rank(batchOf())
	if len(country) != 0 || len(user) != 0 {
		t.Errorf("Expected two empty mappings, got %d countries and %d users", len(country), len(user))
	}
}
