package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportService loads queue entries recorded elsewhere.
type ImportService struct {
	Queue *QueueService
}

// ImportResult counts every data row once: Imported plus Skipped is the
// number of rows after the optional header. Errors holds one entry per
// skipped row.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

func (r *ImportResult) reject(err error) {
	r.Skipped++
	r.Errors = append(r.Errors, err)
}

// ImportCSV reads rows of date, location, entry, completion and records each
// one for actor. An optional header row is skipped. Locations are matched to
// the configured options allowing small typos; rows whose location matches
// nothing are skipped.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader, actor Actor) (ImportResult, error) {
	if !actor.SignedIn() {
		return ImportResult{}, ErrForbidden
	}
	res := ImportResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.reject(fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "date") {
			continue
		}
		if len(rec) < 4 { // date, location, entry, completion
			res.reject(fmt.Errorf("line %d: expected 4 columns", line))
			continue
		}
		location, ok := s.Queue.Options.Canonical(rec[1])
		if !ok {
			res.reject(fmt.Errorf("line %d location %q: %w", line, rec[1], ErrUnknownOption))
			continue
		}
		_, err = s.Queue.Record(ctx, actor, QueueInput{
			Date:           rec[0],
			Location:       location,
			EntryTime:      rec[2],
			CompletionTime: rec[3],
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return res, err
			}
			res.reject(fmt.Errorf("line %d: %w", line, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}
