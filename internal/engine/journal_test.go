package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddJournalEntryPrependsNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddJournalEntry(ctx, "erster Eintrag", JournalGratitude)
	require.NoError(t, err)
	second, err := svc.AddJournalEntry(ctx, "zweiter Eintrag", JournalIdea)
	require.NoError(t, err)

	entries, err := svc.JournalEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, second.ID, entries[0].ID)
	require.Equal(t, JournalIdea, entries[0].Type)
}

func TestAddJournalEntryDefaultsInvalidType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.AddJournalEntry(ctx, "notiz", JournalType("quatsch"))
	require.NoError(t, err)
	require.Equal(t, JournalReflection, e.Type)
}

func TestAddJournalEntryRejectsEmptyContent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddJournalEntry(context.Background(), "   ", JournalIdea)
	require.Error(t, err)
}
