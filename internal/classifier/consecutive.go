package classifier

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// maxRunGap is the longest pause between meetings that still counts as
// back-to-back.
const maxRunGap = 30 * time.Minute

// minConsecutiveRun is the run length at which back-to-back meetings become
// worth flagging.
const minConsecutiveRun = 3

// MeetingRun describes the longest chain of back-to-back meetings in a day.
type MeetingRun struct {
	Longest     int
	Consecutive bool
}

// DetectConsecutiveMeetings finds the longest run of meeting-like events
// where each starts within maxRunGap of the previous one ending. The run is
// flagged only when it reaches minConsecutiveRun meetings.
func DetectConsecutiveMeetings(events []domain.ClassifiedEvent) MeetingRun {
	meetings := make([]domain.ClassifiedEvent, 0, len(events))
	for _, e := range events {
		if e.Category.IsMeetingLike() && e.Status != domain.StatusCancelled {
			meetings = append(meetings, e)
		}
	}
	if len(meetings) == 0 {
		return MeetingRun{}
	}

	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].Start.Before(meetings[j].Start)
	})

	longest, run := 1, 1
	for i := 1; i < len(meetings); i++ {
		gap := meetings[i].Start.Sub(meetings[i-1].End)
		if gap <= maxRunGap {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return MeetingRun{
		Longest:     longest,
		Consecutive: longest >= minConsecutiveRun,
	}
}
