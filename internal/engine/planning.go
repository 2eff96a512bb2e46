package engine

import (
	"fmt"
	"strings"
)

type TimeBlockType string

const (
	BlockFocus TimeBlockType = "focus"
	BlockAdmin TimeBlockType = "admin"
	BlockBreak TimeBlockType = "break"
)

// TimeBlock is one slot of the generated day plan.
type TimeBlock struct {
	Time     string        `json:"time"`
	Activity string        `json:"activity"`
	Type     TimeBlockType `json:"type"`
}

type dayCursor struct {
	hour   int
	minute int
}

func (c *dayCursor) stamp() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c *dayCursor) advance(minutes int) {
	c.minute += minutes
	for c.minute >= 60 {
		c.minute -= 60
		c.hour++
	}
}

func (c *dayCursor) block(minutes int, activity string, typ TimeBlockType) TimeBlock {
	start := c.stamp()
	c.advance(minutes)
	return TimeBlock{Time: start + " - " + c.stamp(), Activity: activity, Type: typ}
}

func titles(tasks []Task) string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Title
	}
	return strings.Join(names, ", ")
}

// GenerateDailyPlan buckets the given (pending) tasks by priority into a
// fixed-shape schedule starting at 09:00: deep work first, breaks, lunch at
// 13:00, admin in the afternoon, wrap-up last.
func GenerateDailyPlan(tasks []Task) []TimeBlock {
	var high, medium, low []Task
	for _, t := range tasks {
		switch t.Priority {
		case PriorityHigh:
			high = append(high, t)
		case PriorityMedium:
			medium = append(medium, t)
		default:
			low = append(low, t)
		}
	}

	cursor := dayCursor{hour: 9}
	var schedule []TimeBlock

	if len(high) > 0 {
		schedule = append(schedule, cursor.block(90, "Deep Work: "+titles(high), BlockFocus))
		schedule = append(schedule, cursor.block(15, "Pause & Kaffee", BlockBreak))
	}

	if len(medium) > 0 {
		schedule = append(schedule, cursor.block(60, "Projektarbeit: "+medium[0].Title, BlockFocus))
		if len(medium) > 1 {
			schedule = append(schedule, cursor.block(45, "Weiterführen: "+titles(medium[1:]), BlockFocus))
		}
	}

	if cursor.hour < 13 {
		cursor = dayCursor{hour: 13}
		schedule = append(schedule, cursor.block(30, "Mittagspause", BlockBreak))
	}

	if len(low) > 0 {
		schedule = append(schedule, cursor.block(45, "Admin & Kleinkram: "+titles(low), BlockAdmin))
	}

	schedule = append(schedule, cursor.block(15, "Tagesabschluss & Planung für morgen", BlockAdmin))
	return schedule
}
