package testdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/jask/queuedesk/internal/database/repository"
)

// Locations seeded by the demo data, matching the default option set.
var Locations = []string{"Canteen", "Admin Office", "Library", "Hostel Office"}

// opening windows in minutes after midnight
var openHours = map[string][][2]int{
	"Canteen":       {{7 * 60, 9 * 60}, {11 * 60, 14 * 60}, {17 * 60, 19 * 60}},
	"Admin Office":  {{9 * 60, 12 * 60}, {14 * 60, 17 * 60}},
	"Library":       {{8 * 60, 12 * 60}, {14 * 60, 20 * 60}},
	"Hostel Office": {{10 * 60, 12 * 60}, {15 * 60, 17 * 60}},
}

var rushHours = map[string][]int{
	"Canteen":       {12, 13},
	"Admin Office":  {15, 16},
	"Library":       {12, 13},
	"Hostel Office": {16, 17},
}

// Visits generates days worth of queue entries ending the day before now,
// spread across userIDs. The same seed yields the same entries.
func Visits(seed uint64, now time.Time, days int, userIDs []string) []repository.QueueEntry {
	if len(userIDs) == 0 || days <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	start := now.AddDate(0, 0, -days)
	var out []repository.QueueEntry
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d).Format("2006-01-02")
		for n := 20 + r.IntN(11); n > 0; n-- {
			loc := Locations[r.IntN(len(Locations))]
			window := openHours[loc][r.IntN(len(openHours[loc]))]
			entry := window[0] + r.IntN(window[1]-10-window[0]+1)
			wait := waitFor(r, loc, entry/60)
			done := (entry + wait) % (24 * 60)
			out = append(out, repository.QueueEntry{
				ID:             uuid.NewString(),
				UserID:         userIDs[r.IntN(len(userIDs))],
				Location:       loc,
				Date:           date,
				EntryTime:      clock(entry),
				CompletionTime: clock(done),
				WaitingMinutes: wait,
			})
		}
	}
	return out
}

func waitFor(r *rand.Rand, location string, hour int) int {
	base := 5 + r.IntN(26)
	for _, h := range rushHours[location] {
		if h == hour {
			return min(base*3/2, 120)
		}
	}
	if hour == 14 || hour == 19 {
		return max(base/2, 2)
	}
	return base
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
