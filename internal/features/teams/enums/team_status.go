package teams_enums

type TeamStatus string

const (
	TeamStatusRecruiting TeamStatus = "recruiting"
	TeamStatusActive     TeamStatus = "active"
	TeamStatusCompleted  TeamStatus = "completed"
)

func (s TeamStatus) IsValid() bool {
	switch s {
	case TeamStatusRecruiting, TeamStatusActive, TeamStatusCompleted:
		return true
	default:
		return false
	}
}
