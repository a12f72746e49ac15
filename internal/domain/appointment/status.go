package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transições permitidas; completed e cancelled são terminais
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition valida a mudança de status pedida
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// CanCreate valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
