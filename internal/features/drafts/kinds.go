package drafts

type DraftKind string

const (
	DraftKindProject DraftKind = "project"
	DraftKindTeam    DraftKind = "team"
	DraftKindProfile DraftKind = "profile"
)

func (k DraftKind) IsValid() bool {
	switch k {
	case DraftKindProject, DraftKindTeam, DraftKindProfile:
		return true
	default:
		return false
	}
}

// Label is the capitalized noun used in notifications, e.g. "Project".
func (k DraftKind) Label() string {
	switch k {
	case DraftKindProject:
		return "Project"
	case DraftKindTeam:
		return "Team"
	case DraftKindProfile:
		return "Profile"
	default:
		return string(k)
	}
}
