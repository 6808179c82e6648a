package domain

// transitions is the exhaustive lifecycle table. The only alternate
// branch is Posted -> Cancelled; Verified and Cancelled are terminal.
// Disputed is a reserved status with an empty transition set: nothing
// targets it and nothing leaves it until a dispute workflow exists.
var transitions = map[TaskStatus][]TaskStatus{
	TaskStatusPosted:     {TaskStatusInProgress, TaskStatusCancelled},
	TaskStatusInProgress: {TaskStatusCompleted},
	TaskStatusCompleted:  {TaskStatusVerified},
	TaskStatusVerified:   {},
	TaskStatusDisputed:   {},
	TaskStatusCancelled:  {},
}

// CanTransition reports whether the lifecycle table allows from -> to.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition ever leaves s.
func (s TaskStatus) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// Valid reports whether s is a known status value.
func (s TaskStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}
