package engine

import (
	"context"
	"time"
)

type PlantStage string

const (
	StageSeed     PlantStage = "seed"
	StageSprout   PlantStage = "sprout"
	StageSmall    PlantStage = "small"
	StageMature   PlantStage = "mature"
	StageBlooming PlantStage = "blooming"
)

// MaxGardenSize is the hard cap; no pruning or recycling of bloomed plants.
const MaxGardenSize = 12

// PlantSpecies lists the species in a fixed order so random selection is
// reproducible under an injected rng.
var PlantSpecies = []string{"sunflower", "rose", "tree", "cactus", "palm"}

// PlantArt maps species and stage to the dashboard glyph.
var PlantArt = map[string]map[PlantStage]string{
	"sunflower": {StageSeed: "🌱", StageSprout: "🌿", StageSmall: "🪴", StageMature: "🌽", StageBlooming: "🌻"},
	"rose":      {StageSeed: "🌰", StageSprout: "🌱", StageSmall: "🌿", StageMature: "🥀", StageBlooming: "🌹"},
	"tree":      {StageSeed: "🌰", StageSprout: "🌱", StageSmall: "🌲", StageMature: "🌳", StageBlooming: "🍎"},
	"cactus":    {StageSeed: "🌵", StageSprout: "🌵", StageSmall: "🌵", StageMature: "🌵", StageBlooming: "🌸"},
	"palm":      {StageSeed: "🥥", StageSprout: "🌱", StageSmall: "🌴", StageMature: "🌴", StageBlooming: "🥥"},
}

// Plant grows through strictly ordered, one-directional stages. Progress
// resets by threshold subtraction on each transition (carry-over).
type Plant struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Stage          PlantStage `json:"stage"`
	PlantedAt      time.Time  `json:"plantedAt"`
	LastWatered    time.Time  `json:"lastWatered"`
	GrowthProgress int        `json:"growthProgress"`
}

// stageThreshold is the minutes needed to leave the given stage.
func stageThreshold(stage PlantStage) int {
	switch stage {
	case StageSprout:
		return 50
	case StageSmall:
		return 75
	case StageMature:
		return 100
	default: // seed
		return 25
	}
}

func nextStage(stage PlantStage) PlantStage {
	switch stage {
	case StageSeed:
		return StageSprout
	case StageSprout:
		return StageSmall
	case StageSmall:
		return StageMature
	case StageMature:
		return StageBlooming
	default:
		return stage
	}
}

// WaterResult counts what one watering did; both values are 0 or 1.
type WaterResult struct {
	Watered int `json:"watered"`
	Evolved int `json:"evolved"`
}

func (s *Service) loadGarden(ctx context.Context) ([]Plant, error) {
	var out []Plant
	if err := s.store.LoadJSON(ctx, keyGarden, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Garden(ctx context.Context) ([]Plant, error) {
	return s.loadGarden(ctx)
}

func (s *Service) newPlant(species string) Plant {
	now := s.now()
	return Plant{
		ID:          s.newID(),
		Type:        species,
		Stage:       StageSeed,
		PlantedAt:   now,
		LastWatered: now,
	}
}

// PlantSeed adds a seed of the given species (empty = random) unless the
// garden is full.
func (s *Service) PlantSeed(ctx context.Context, species string) (*Plant, error) {
	garden, err := s.loadGarden(ctx)
	if err != nil {
		return nil, err
	}
	if len(garden) >= MaxGardenSize {
		return nil, nil
	}
	if species == "" {
		species = PlantSpecies[s.randIntn(len(PlantSpecies))]
	}
	p := s.newPlant(species)
	garden = append(garden, p)
	if err := s.store.SaveJSON(ctx, keyGarden, garden); err != nil {
		return nil, err
	}
	return &p, nil
}

// WaterGarden feeds focus minutes into exactly one plant: the most recently
// added non-blooming one. With no active plant a random seed is auto-planted
// first, unless the garden already holds MaxGardenSize plants, in which case
// nothing happens. Crossing a stage threshold advances exactly one stage and
// carries the surplus over; a single call never evolves twice even if
// minutes spans two thresholds.
func (s *Service) WaterGarden(ctx context.Context, minutes int) (WaterResult, error) {
	garden, err := s.loadGarden(ctx)
	if err != nil {
		return WaterResult{}, err
	}

	target := -1
	for i, p := range garden {
		if p.Stage != StageBlooming {
			target = i
		}
	}

	if target == -1 {
		if len(garden) >= MaxGardenSize {
			return WaterResult{}, nil
		}
		species := PlantSpecies[s.randIntn(len(PlantSpecies))]
		garden = append(garden, s.newPlant(species))
		target = len(garden) - 1
	}

	res := WaterResult{}
	p := &garden[target]
	p.GrowthProgress += minutes
	p.LastWatered = s.now()
	res.Watered = 1

	if threshold := stageThreshold(p.Stage); p.GrowthProgress >= threshold {
		p.GrowthProgress -= threshold
		p.Stage = nextStage(p.Stage)
		res.Evolved = 1
	}

	if err := s.store.SaveJSON(ctx, keyGarden, garden); err != nil {
		return WaterResult{}, err
	}
	return res, nil
}
