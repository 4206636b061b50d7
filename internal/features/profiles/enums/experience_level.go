package profiles_enums

import "strings"

type ExperienceLevel string

const (
	ExperienceLevelBeginner     ExperienceLevel = "beginner"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelAdvanced     ExperienceLevel = "advanced"
	ExperienceLevelExpert       ExperienceLevel = "expert"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceLevelBeginner,
		ExperienceLevelIntermediate,
		ExperienceLevelAdvanced,
		ExperienceLevelExpert:
		return true
	}

	return false
}

// Label renders the level as shown on cards, e.g. "Advanced Level".
func (l ExperienceLevel) Label() string {
	level := string(l)
	if level == "" {
		level = string(ExperienceLevelBeginner)
	}

	return strings.ToUpper(level[:1]) + level[1:] + " Level"
}
