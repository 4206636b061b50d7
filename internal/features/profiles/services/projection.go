package profiles_services

import (
	"strings"

	profiles_dto "devcollab/internal/features/profiles/dto"
	profiles_enums "devcollab/internal/features/profiles/enums"
	profiles_models "devcollab/internal/features/profiles/models"
	"devcollab/internal/features/search"
)

const defaultAvatarFallback = "DV"

// ToDeveloperCard maps a profile row to its directory card. Empty optional
// text is treated as absent.
func ToDeveloperCard(profile *profiles_models.Profile) profiles_dto.DeveloperCard {
	skills := []string{}
	if profile.Skills != nil {
		skills = append(skills, profile.Skills...)
	}

	level := profile.ExperienceLevel
	if level == "" {
		level = profiles_enums.ExperienceLevelBeginner
	}

	displayName := profile.Username
	if fullName := presentOrNil(profile.FullName); fullName != nil {
		displayName = *fullName
	}

	return profiles_dto.DeveloperCard{
		ID:              profile.ID,
		Username:        profile.Username,
		DisplayName:     displayName,
		Handle:          "@" + profile.Username,
		AvatarURL:       presentOrNil(profile.AvatarURL),
		AvatarFallback:  AvatarFallback(profile.Username),
		Bio:             presentOrNil(profile.Bio),
		Location:        presentOrNil(profile.Location),
		ExperienceLevel: level,
		ExperienceLabel: level.Label(),
		Skills:          skills,
		SkillsPreview:   search.PreviewTags(skills),
		Links: profiles_dto.DeveloperLinks{
			Website:  presentOrNil(profile.Website),
			Github:   presentOrNil(profile.GithubURL),
			Linkedin: presentOrNil(profile.LinkedinURL),
		},
		AvailableForHire: profile.AvailableForHire,
	}
}

// AvatarFallback is the first two letters of the username, upper-cased.
func AvatarFallback(username string) string {
	runes := []rune(username)
	if len(runes) == 0 {
		return defaultAvatarFallback
	}

	return strings.ToUpper(string(runes[:min(2, len(runes))]))
}

func presentOrNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}
