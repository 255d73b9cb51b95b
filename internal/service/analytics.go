package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jask/queuedesk/internal/database/repository"
)

type LocationStats struct {
	Location     string
	AverageWait  float64
	PeakHour     string
	BestHour     string
	TotalEntries int
}

type HourlyAverage struct {
	Hour    string // HH:00
	Average float64
}

type Summary struct {
	Locations []LocationStats
	Hourly    []HourlyAverage
}

// AnalyticsService aggregates waiting times for administrators.
type AnalyticsService struct {
	Entries *repository.QueueEntryRepo
}

func (s *AnalyticsService) Summarise(ctx context.Context, actor Actor) (Summary, error) {
	if !actor.IsAdmin() {
		return Summary{}, ErrForbidden
	}
	entries, err := s.Entries.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list queue entries: %w", err)
	}
	return Summarise(entries), nil
}

// Summarise groups entries by location. Averages only count entries with a
// positive wait; TotalEntries counts all of them. Locations are sorted by name.
func Summarise(entries []repository.QueueEntry) Summary {
	byLocation := map[string][]repository.QueueEntry{}
	var names []string
	overall := hourBuckets{}
	for _, e := range entries {
		if _, ok := byLocation[e.Location]; !ok {
			names = append(names, e.Location)
		}
		byLocation[e.Location] = append(byLocation[e.Location], e)
		overall.add(e)
	}
	sort.Strings(names)

	out := Summary{Locations: make([]LocationStats, 0, len(names))}
	for _, name := range names {
		group := byLocation[name]
		stats := LocationStats{Location: name, TotalEntries: len(group)}
		hours := hourBuckets{}
		sum, n := 0, 0
		for _, e := range group {
			if e.WaitingMinutes <= 0 {
				continue
			}
			sum += e.WaitingMinutes
			n++
			hours.add(e)
		}
		if n > 0 {
			stats.AverageWait = round2(float64(sum) / float64(n))
		}
		stats.PeakHour, stats.BestHour = hours.extremes()
		out.Locations = append(out.Locations, stats)
	}
	for _, h := range overall.sortedHours() {
		out.Hourly = append(out.Hourly, HourlyAverage{Hour: FormatClock(h * 60), Average: round2(overall.average(h))})
	}
	return out
}

// hourBuckets collects positive waits by entry hour.
type hourBuckets map[int][]int

func (b hourBuckets) add(e repository.QueueEntry) {
	if e.WaitingMinutes <= 0 {
		return
	}
	start, err := ParseClock(e.EntryTime)
	if err != nil {
		return
	}
	b[start/60] = append(b[start/60], e.WaitingMinutes)
}

func (b hourBuckets) average(h int) float64 {
	waits := b[h]
	if len(waits) == 0 {
		return 0
	}
	sum := 0
	for _, w := range waits {
		sum += w
	}
	return float64(sum) / float64(len(waits))
}

func (b hourBuckets) sortedHours() []int {
	hours := make([]int, 0, len(b))
	for h := range b {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// extremes returns the hours with the highest and lowest average wait as
// "HH:00-HH:00" ranges. The earliest hour wins ties.
func (b hourBuckets) extremes() (peak, best string) {
	peakAvg, bestAvg := 0.0, math.Inf(1)
	peakHour, bestHour := -1, -1
	for _, h := range b.sortedHours() {
		avg := b.average(h)
		if avg > peakAvg {
			peakAvg, peakHour = avg, h
		}
		if avg > 0 && avg < bestAvg {
			bestAvg, bestHour = avg, h
		}
	}
	return hourRange(peakHour), hourRange(bestHour)
}

func hourRange(h int) string {
	if h < 0 {
		return ""
	}
	return fmt.Sprintf("%02d:00-%02d:00", h, h+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
