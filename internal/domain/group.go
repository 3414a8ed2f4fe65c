package domain

// GroupType identifies one of the two weekly class cohorts
type GroupType string

const (
	// GroupA meets Monday, Wednesday and Friday
	GroupA GroupType = "A"
	// GroupB meets Tuesday, Thursday and Saturday
	GroupB GroupType = "B"
)

// groupADays and groupBDays are ISO weekday numbers (1 = Monday ... 6 = Saturday)
var (
	groupADays = []int{1, 3, 5}
	groupBDays = []int{2, 4, 6}
)

// IsValid returns true if the group is one of the two known cohorts
func (g GroupType) IsValid() bool {
	return g == GroupA || g == GroupB
}

// Days returns the three ISO weekday numbers the group meets on.
// Returns nil for an unknown group.
func (g GroupType) Days() []int {
	switch g {
	case GroupA:
		return append([]int(nil), groupADays...)
	case GroupB:
		return append([]int(nil), groupBDays...)
	default:
		return nil
	}
}

// GroupForWeekday maps an ISO weekday number to its class group.
// Both 0 and 7 are accepted for Sunday. Sunday has no group, so the
// second return value is false for it (and for out-of-range input).
func GroupForWeekday(dayOfWeek int) (GroupType, bool) {
	switch dayOfWeek {
	case 1, 3, 5:
		return GroupA, true
	case 2, 4, 6:
		return GroupB, true
	default:
		return "", false
	}
}
