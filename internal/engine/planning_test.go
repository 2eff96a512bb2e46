package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDailyPlanBucketsByPriority(t *testing.T) {
	tasks := []Task{
		{Title: "Steuer", Priority: PriorityHigh},
		{Title: "Bericht", Priority: PriorityMedium},
		{Title: "Mails", Priority: PriorityLow},
		{Title: "Ablage"}, // no priority counts as low
	}

	plan := GenerateDailyPlan(tasks)
	require.NotEmpty(t, plan)

	require.Equal(t, "09:00 - 10:30", plan[0].Time)
	require.Equal(t, BlockFocus, plan[0].Type)
	require.Contains(t, plan[0].Activity, "Steuer")

	require.Equal(t, BlockBreak, plan[1].Type)

	var admin *TimeBlock
	for i := range plan {
		if plan[i].Type == BlockAdmin {
			admin = &plan[i]
			break
		}
	}
	require.NotNil(t, admin)
	require.Contains(t, admin.Activity, "Mails")
	require.Contains(t, admin.Activity, "Ablage")

	// The wrap-up block is always last.
	last := plan[len(plan)-1]
	require.Equal(t, BlockAdmin, last.Type)
	require.Contains(t, last.Activity, "Tagesabschluss")
}

func TestGenerateDailyPlanEmptyStillWrapsUp(t *testing.T) {
	plan := GenerateDailyPlan(nil)
	// Lunch jump plus wrap-up.
	require.Len(t, plan, 2)
	require.Equal(t, "13:00 - 13:30", plan[0].Time)
}
