package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkGroupsSeedDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	groups, err := svc.LinkGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, "Produktivität", groups[0].Title)

	// Seeding happens once; a second read returns the stored set.
	again, err := svc.LinkGroups(ctx)
	require.NoError(t, err)
	require.Equal(t, groups[0].ID, again[0].ID)
}

func TestLinkGroupOperations(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	groups, err := svc.AddLinkGroup(ctx, "Arbeit", "💼", "--xp")
	require.NoError(t, err)
	require.Len(t, groups, 4)
	work := groups[3]
	require.Equal(t, 3, work.Order)

	groups, err = svc.AddLink(ctx, work.ID, "Jira", "https://jira.example.com", "🎫")
	require.NoError(t, err)
	require.Len(t, groups[3].Links, 1)

	groups, err = svc.ToggleGroupCollapse(ctx, work.ID)
	require.NoError(t, err)
	require.True(t, groups[3].Collapsed)

	groups, err = svc.RemoveLink(ctx, work.ID, groups[3].Links[0].ID)
	require.NoError(t, err)
	require.Empty(t, groups[3].Links)

	groups, err = svc.DeleteLinkGroup(ctx, work.ID)
	require.NoError(t, err)
	require.Len(t, groups, 3)
}

func TestReorderGroupsReindexes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	groups, err := svc.LinkGroups(ctx)
	require.NoError(t, err)
	first := groups[0].ID

	groups, err = svc.ReorderGroups(ctx, 0, 2)
	require.NoError(t, err)
	require.Equal(t, first, groups[2].ID)
	for i, g := range groups {
		require.Equal(t, i, g.Order)
	}

	_, err = svc.ReorderGroups(ctx, 0, 9)
	require.Error(t, err)
}
