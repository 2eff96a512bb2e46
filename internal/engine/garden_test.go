package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaterGardenAutoPlantsOnEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.WaterGarden(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, WaterResult{Watered: 1, Evolved: 0}, res)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	require.Len(t, garden, 1)
	require.Equal(t, StageSeed, garden[0].Stage)
	require.Equal(t, 10, garden[0].GrowthProgress)
	require.Equal(t, "sunflower", garden[0].Type)
}

func TestWaterGardenEvolvesAtThreshold(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// 10 + 15 = exactly 25: seed -> sprout with progress 0.
	_, err := svc.WaterGarden(ctx, 10)
	require.NoError(t, err)
	res, err := svc.WaterGarden(ctx, 15)
	require.NoError(t, err)
	require.Equal(t, 1, res.Evolved)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	require.Equal(t, StageSprout, garden[0].Stage)
	require.Equal(t, 0, garden[0].GrowthProgress)
}

func TestWaterGardenCarriesOverSurplus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.WaterGarden(ctx, 30)
	require.NoError(t, err)
	require.Equal(t, WaterResult{Watered: 1, Evolved: 1}, res)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	require.Equal(t, StageSprout, garden[0].Stage)
	require.Equal(t, 5, garden[0].GrowthProgress)
}

func TestWaterGardenSingleEvolutionPerCall(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// 80 minutes spans the seed (25) and sprout (50) thresholds, but one
	// call advances at most one stage.
	res, err := svc.WaterGarden(ctx, 80)
	require.NoError(t, err)
	require.Equal(t, 1, res.Evolved)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	require.Equal(t, StageSprout, garden[0].Stage)
	require.Equal(t, 55, garden[0].GrowthProgress)
}

func TestWaterGardenTargetsNewestActivePlant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.PlantSeed(ctx, "rose")
	require.NoError(t, err)
	second, err := svc.PlantSeed(ctx, "tree")
	require.NoError(t, err)

	_, err = svc.WaterGarden(ctx, 10)
	require.NoError(t, err)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	byID := map[string]Plant{}
	for _, p := range garden {
		byID[p.ID] = p
	}
	require.Equal(t, 0, byID[first.ID].GrowthProgress)
	require.Equal(t, 10, byID[second.ID].GrowthProgress)
}

func TestWaterGardenFullOfBloomedPlantsDoesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxGardenSize; i++ {
		p, err := svc.PlantSeed(ctx, "cactus")
		require.NoError(t, err)
		require.NotNil(t, p)
		// Grow each seed all the way to blooming: four evolutions.
		for _, minutes := range []int{25, 50, 75, 100} {
			res, err := svc.WaterGarden(ctx, minutes)
			require.NoError(t, err)
			require.Equal(t, 1, res.Evolved)
		}
	}

	res, err := svc.WaterGarden(ctx, 60)
	require.NoError(t, err)
	require.Equal(t, WaterResult{Watered: 0, Evolved: 0}, res)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	require.Len(t, garden, MaxGardenSize)
	for _, p := range garden {
		require.Equal(t, StageBlooming, p.Stage)
	}
}

func TestPlantSeedRespectsCap(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxGardenSize; i++ {
		p, err := svc.PlantSeed(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, p)
	}
	p, err := svc.PlantSeed(ctx, "")
	require.NoError(t, err)
	require.Nil(t, p)
}
