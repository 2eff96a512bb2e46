package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXPForEntryTable(t *testing.T) {
	cases := []struct {
		entry WissenEntry
		want  int
	}{
		{WissenEntry{Category: WissenMedien}, 15},
		{WissenEntry{Category: WissenMedien, Difficulty: DifficultyAnspruchsvoll}, 15},
		{WissenEntry{Category: WissenProjekt, Difficulty: DifficultyKlein}, 10},
		{WissenEntry{Category: WissenProjekt, Difficulty: DifficultyMittel}, 20},
		{WissenEntry{Category: WissenProjekt, Difficulty: DifficultyAnspruchsvoll}, 30},
		{WissenEntry{Category: WissenProjekt}, 0},
	}
	for _, tc := range cases {
		if got := XPForEntry(tc.entry); got != tc.want {
			t.Fatalf("XPForEntry(%v/%v)=%d, want %d", tc.entry.Category, tc.entry.Difficulty, got, tc.want)
		}
	}
}

func TestWissenStatusTransitionsSettleXP(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateWissenEntry(ctx, WissenEntry{
		Title:      "Seitenprojekt",
		Category:   WissenProjekt,
		Difficulty: DifficultyMittel,
	})
	require.NoError(t, err)
	require.False(t, entry.XPAwarded)
	require.Equal(t, StatusGeplant, entry.Status)

	done := StatusBeendet
	entry, err = svc.UpdateWissenEntry(ctx, entry.ID, WissenUpdate{Status: &done})
	require.NoError(t, err)
	require.True(t, entry.XPAwarded)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 20, stats.TotalXP)

	// Leaving Beendet reverses exactly the granted amount.
	planned := StatusGeplant
	entry, err = svc.UpdateWissenEntry(ctx, entry.ID, WissenUpdate{Status: &planned})
	require.NoError(t, err)
	require.False(t, entry.XPAwarded)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalXP)

	// Re-entering Beendet re-grants; idempotency is per transition.
	entry, err = svc.UpdateWissenEntry(ctx, entry.ID, WissenUpdate{Status: &done})
	require.NoError(t, err)
	require.True(t, entry.XPAwarded)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 20, stats.TotalXP)
}

func TestWissenReversalUsesOldFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateWissenEntry(ctx, WissenEntry{
		Title:      "Hausbau-Doku",
		Category:   WissenProjekt,
		Difficulty: DifficultyAnspruchsvoll,
	})
	require.NoError(t, err)

	done := StatusBeendet
	_, err = svc.UpdateWissenEntry(ctx, entry.ID, WissenUpdate{Status: &done})
	require.NoError(t, err)

	// Change difficulty and leave Beendet in one call: the reversal must
	// match the 30 XP that was granted, not the new difficulty's 10.
	planned := StatusGeplant
	klein := DifficultyKlein
	_, err = svc.UpdateWissenEntry(ctx, entry.ID, WissenUpdate{Status: &planned, Difficulty: &klein})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalXP)
}

func TestDeleteWissenEntryReversesAwardedXP(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateWissenEntry(ctx, WissenEntry{Title: "Buch", Category: WissenMedien})
	require.NoError(t, err)

	done := StatusBeendet
	_, err = svc.UpdateWissenEntry(ctx, entry.ID, WissenUpdate{Status: &done})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWissenEntry(ctx, entry.ID))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalXP)

	entries, err := svc.WissenEntries(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRunningMediaCapAndOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	titles := []string{"Erstes", "Zweites", "Drittes", "Viertes"}
	for _, title := range titles {
		_, err := svc.CreateWissenEntry(ctx, WissenEntry{
			Title:    title,
			Category: WissenMedien,
			Status:   StatusLaufend,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateWissenEntry(ctx, WissenEntry{
		Title:    "Projekt läuft",
		Category: WissenProjekt,
		Status:   StatusLaufend,
	})
	require.NoError(t, err)

	entries, err := svc.WissenEntries(ctx)
	require.NoError(t, err)
	// Creation unshifts, so the collection is newest first.
	require.Equal(t, "Projekt läuft", entries[0].Title)

	running := RunningMedia(entries)
	require.Len(t, running, 3)
	require.Equal(t, "Viertes", running[0].Title)
	require.Equal(t, "Drittes", running[1].Title)
	require.Equal(t, "Zweites", running[2].Title)
}
