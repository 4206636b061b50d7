package drafts

type CreateDraftRequestDTO struct {
	Kind DraftKind `json:"kind" binding:"required"`
}

// EditFieldRequestDTO is one field-edit event. Value is a JSON string, boolean
// or number depending on the field.
type EditFieldRequestDTO struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type ListItemRequestDTO struct {
	Item string `json:"item" binding:"required"`
}

type NotificationVariant string

const (
	NotificationVariantDefault     NotificationVariant = "default"
	NotificationVariantDestructive NotificationVariant = "destructive"
)

type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
}

type SignInPromptDTO struct {
	Message     string `json:"message"`
	ActionLabel string `json:"actionLabel"`
	Action      string `json:"action"`
}

type FormResponseDTO struct {
	Kind           DraftKind        `json:"kind"`
	SignInRequired bool             `json:"signInRequired"`
	SignInPrompt   *SignInPromptDTO `json:"signInPrompt,omitempty"`
	Title          string           `json:"title,omitempty"`
	SubmitLabel    string           `json:"submitLabel,omitempty"`
	Fields         []FormField      `json:"fields,omitempty"`
	ListField      *FormField       `json:"listField,omitempty"`
}

type SubmitOutcome string

const (
	SubmitOutcomeCreated     SubmitOutcome = "created"
	SubmitOutcomeInvalid     SubmitOutcome = "invalid"
	SubmitOutcomeRateLimited SubmitOutcome = "rate_limited"
	SubmitOutcomeFailed      SubmitOutcome = "failed"
)

// SubmitResponseDTO carries either the validation state, a failure
// notification with the intact draft, or a success notification with the
// redirect target.
type SubmitResponseDTO struct {
	Outcome       SubmitOutcome     `json:"outcome"`
	Notification  *Notification     `json:"notification,omitempty"`
	FieldErrors   map[string]string `json:"fieldErrors,omitempty"`
	Draft         *Draft            `json:"draft,omitempty"`
	RedirectTo    string            `json:"redirectTo,omitempty"`
	RetryAfterSec int               `json:"retryAfterSec,omitempty"`
}
