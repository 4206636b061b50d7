package drafts

import (
	"fmt"
	"math"
	"strings"
	"time"

	profiles_enums "devcollab/internal/features/profiles/enums"
	teams_models "devcollab/internal/features/teams/models"

	"github.com/google/uuid"
)

// Draft is the not yet submitted input of a creation form. It is owned by
// the user who created it and lives in Valkey until submitted or expired.
type Draft struct {
	ID        uuid.UUID         `json:"id"`
	OwnerID   uuid.UUID         `json:"ownerId"`
	Kind      DraftKind         `json:"kind"`
	Text      map[string]string `json:"text"`
	Flags     map[string]bool   `json:"flags"`
	Numbers   map[string]int    `json:"numbers"`
	Items     ListField         `json:"items"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func NewDraft(kind DraftKind, ownerID uuid.UUID) *Draft {
	now := time.Now().UTC()

	draft := &Draft{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Kind:      kind,
		Text:      map[string]string{},
		Flags:     map[string]bool{},
		Numbers:   map[string]int{},
		Items:     ListField{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, field := range formSchemas[kind].fields {
		switch field.Type {
		case FieldTypeText:
			draft.Text[field.Name] = ""
		case FieldTypeBool:
			draft.Flags[field.Name] = false
		}
	}

	if kind == DraftKindTeam {
		draft.Numbers["maxMembers"] = teams_models.DefaultMaxMembers
	}

	return draft
}

// ApplyEdit sets one field. Unknown fields and values of the wrong type are
// rejected and leave the draft untouched. Numbers arrive as JSON numbers and
// must be whole.
func (d *Draft) ApplyEdit(name string, value any) error {
	field, ok := formSchemas[d.Kind].field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	switch field.Type {
	case FieldTypeText:
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s must be a string", ErrInvalidFieldValue, name)
		}
		d.Text[name] = text
	case FieldTypeBool:
		flag, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s must be a boolean", ErrInvalidFieldValue, name)
		}
		d.Flags[name] = flag
	case FieldTypeNumber:
		number, ok := wholeNumber(value)
		if !ok {
			return fmt.Errorf("%w: %s must be a whole number", ErrInvalidFieldValue, name)
		}
		d.Numbers[name] = number
	}

	d.UpdatedAt = time.Now().UTC()
	return nil
}

func (d *Draft) AddListItem(item string) bool {
	changed := d.Items.Add(item)
	if changed {
		d.UpdatedAt = time.Now().UTC()
	}

	return changed
}

func (d *Draft) RemoveListItem(item string) bool {
	changed := d.Items.Remove(item)
	if changed {
		d.UpdatedAt = time.Now().UTC()
	}

	return changed
}

// Validate checks required fields only, plus the team size bounds and the
// profile experience level. Keys are field names.
func (d *Draft) Validate() map[string]string {
	fieldErrors := map[string]string{}

	for _, field := range formSchemas[d.Kind].fields {
		if field.Required && strings.TrimSpace(d.Text[field.Name]) == "" {
			fieldErrors[field.Name] = fmt.Sprintf("%s is required", field.Label)
		}
	}

	switch d.Kind {
	case DraftKindTeam:
		maxMembers := d.Numbers["maxMembers"]
		if maxMembers < teams_models.MinMaxMembers || maxMembers > teams_models.MaxMaxMembers {
			fieldErrors["maxMembers"] = fmt.Sprintf(
				"Maximum members must be between %d and %d",
				teams_models.MinMaxMembers,
				teams_models.MaxMaxMembers,
			)
		}
	case DraftKindProfile:
		level := profiles_enums.ExperienceLevel(strings.TrimSpace(d.Text["experienceLevel"]))
		if level != "" && !level.IsValid() {
			fieldErrors["experienceLevel"] = "Experience level must be beginner, intermediate, advanced or expert"
		}
	}

	return fieldErrors
}

// optionalText returns nil for empty (or blank) text so the insert carries
// NULL rather than an empty string.
func (d *Draft) optionalText(name string) *string {
	value := strings.TrimSpace(d.Text[name])
	if value == "" {
		return nil
	}

	return &value
}

func (d *Draft) requiredText(name string) string {
	return strings.TrimSpace(d.Text[name])
}

func wholeNumber(value any) (int, bool) {
	switch number := value.(type) {
	case int:
		return number, true
	case float64:
		if math.IsNaN(number) || math.IsInf(number, 0) || number != math.Trunc(number) {
			return 0, false
		}
		return int(number), true
	default:
		return 0, false
	}
}
