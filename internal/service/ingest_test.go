package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportCSVCanonicalisesLocations(t *testing.T) {
	t.Parallel()
	ctx, env := newTestEnv(t)
	student := env.register(t, ctx, "s@college.edu", "student")

	data := strings.Join([]string{
		"date,location,entry,completion",
		"2026-03-02, canteen ,12:00,12:30",
		"2026-03-02,Libary,9:00,9:15",
		"2026-03-02,Cafeteria,9:00,9:15",
		"2026-03-02,Library,9:00",
		"2026-03-02,Library,nine,9:15",
	}, "\n")

	res, err := env.importer.ImportCSV(ctx, strings.NewReader(data), student)
	require.NoError(t, err)
	require.Equal(t, 2, res.Imported)
	require.Equal(t, 3, res.Skipped)
	require.Len(t, res.Errors, 3)
	require.ErrorIs(t, res.Errors[0], ErrUnknownOption)
	require.ErrorIs(t, res.Errors[2], ErrInvalidTime)

	entries, err := env.queue.List(ctx, student, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	locations := []string{entries[0].Location, entries[1].Location}
	require.ElementsMatch(t, []string{"Canteen", "Library"}, locations)
}

func TestImportCSVCountsEveryRejectedRow(t *testing.T) {
	t.Parallel()
	ctx, env := newTestEnv(t)
	student := env.register(t, ctx, "s@college.edu", "student")

	rows := []string{
		"2026-03-02,Library,9:00,9:15",
		"02/03/2026,Library,9:00,9:15",
		"2026-03-02,Library,,9:15",
		"2026-03-02,Library,9:00,25:00",
		"2026-03-02,Gym,9:00,9:15",
		"2026-03-02,Library",
	}
	res, err := env.importer.ImportCSV(ctx, strings.NewReader(strings.Join(rows, "\n")), student)
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)
	require.Equal(t, 5, res.Skipped)
	require.Equal(t, len(rows), res.Imported+res.Skipped)
	require.Len(t, res.Errors, res.Skipped)
	require.ErrorIs(t, res.Errors[0], ErrInvalidTime)
	require.ErrorIs(t, res.Errors[1], ErrMissingFields)
}

func TestImportCSVNeedsSignedInActor(t *testing.T) {
	t.Parallel()
	ctx, env := newTestEnv(t)
	_, err := env.importer.ImportCSV(ctx, strings.NewReader("2026-03-02,Canteen,12:00,12:30"), Actor{})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestClearHistoryIsAdminOnly(t *testing.T) {
	t.Parallel()
	ctx, env := newTestEnv(t)
	student := env.register(t, ctx, "s@college.edu", "student")
	admin := env.register(t, ctx, "a@college.edu", "admin")
	_, err := env.queue.Record(ctx, student, QueueInput{Date: "2026-03-02", Location: "Canteen", EntryTime: "12:00", CompletionTime: "12:30"})
	require.NoError(t, err)

	svc := &MaintenanceService{DB: env.db}
	_, err = svc.ClearHistory(ctx, student)
	require.ErrorIs(t, err, ErrForbidden)

	removed, err := svc.ClearHistory(ctx, admin)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	_, err = env.accounts.Login(ctx, "a@college.edu", "secret1")
	require.NoError(t, err)
}
