package domain

type EventKind string

const (
	EventWork     EventKind = "work"
	EventShipping EventKind = "shipping"
	EventInHand   EventKind = "in_hand"
)

type MilestoneKind string

const (
	MilestoneShipping MilestoneKind = "shipping"
	MilestoneInHand   MilestoneKind = "in_hand"
)

// ValidMilestoneKinds is the canonical set of accepted milestone kind strings.
var ValidMilestoneKinds = map[string]bool{
	"shipping": true, "in_hand": true,
}

// OverrunColorKey is the reserved color key used when a projected entry
// would consume more hours than the job has remaining.
const OverrunColorKey = "red"
