package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidgetOrderFallsBackToDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.WidgetOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultWidgetOrder, order)

	custom := []string{"garden", "progress", "header"}
	require.NoError(t, svc.SetWidgetOrder(ctx, custom))

	order, err = svc.WidgetOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, custom, order)
}

func TestProfileSingletonsRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	name, err := svc.Username(ctx)
	require.NoError(t, err)
	require.Empty(t, name)

	require.NoError(t, svc.SetUsername(ctx, "Marc"))
	require.NoError(t, svc.SetAccentColor(ctx, "39"))

	name, err = svc.Username(ctx)
	require.NoError(t, err)
	require.Equal(t, "Marc", name)

	accent, err := svc.AccentColor(ctx)
	require.NoError(t, err)
	require.Equal(t, "39", accent)
}
