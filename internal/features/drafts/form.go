package drafts

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeBool   FieldType = "bool"
	FieldTypeNumber FieldType = "number"
	FieldTypeList   FieldType = "list"
)

type FormField struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

type formSchema struct {
	title       string
	submitLabel string
	fields      []FormField
	listField   FormField
}

var formSchemas = map[DraftKind]formSchema{
	DraftKindProject: {
		title:       "Create New Project",
		submitLabel: "Create Project",
		fields: []FormField{
			{Name: "title", Label: "Project Title", Type: FieldTypeText, Required: true},
			{Name: "description", Label: "Description", Type: FieldTypeText},
			{Name: "imageUrl", Label: "Project Image URL", Type: FieldTypeText},
			{Name: "demoUrl", Label: "Demo URL", Type: FieldTypeText},
			{Name: "githubUrl", Label: "GitHub URL", Type: FieldTypeText},
			{Name: "isPrivate", Label: "Private project", Type: FieldTypeBool},
			{Name: "lookingForCollaborators", Label: "Looking for collaborators", Type: FieldTypeBool},
		},
		listField: FormField{Name: "techStack", Label: "Tech Stack", Type: FieldTypeList},
	},
	DraftKindTeam: {
		title:       "Create New Team",
		submitLabel: "Create Team",
		fields: []FormField{
			{Name: "name", Label: "Team Name", Type: FieldTypeText, Required: true},
			{Name: "description", Label: "Description", Type: FieldTypeText},
			{Name: "imageUrl", Label: "Team Image URL", Type: FieldTypeText},
			{Name: "maxMembers", Label: "Maximum Members", Type: FieldTypeNumber},
		},
		listField: FormField{Name: "requiredSkills", Label: "Required Skills", Type: FieldTypeList},
	},
	DraftKindProfile: {
		title:       "Create Your Profile",
		submitLabel: "Create Profile",
		fields: []FormField{
			{Name: "username", Label: "Username", Type: FieldTypeText, Required: true},
			{Name: "fullName", Label: "Full Name", Type: FieldTypeText},
			{Name: "bio", Label: "Bio", Type: FieldTypeText},
			{Name: "avatarUrl", Label: "Avatar URL", Type: FieldTypeText},
			{Name: "location", Label: "Location", Type: FieldTypeText},
			{Name: "website", Label: "Website", Type: FieldTypeText},
			{Name: "githubUrl", Label: "GitHub URL", Type: FieldTypeText},
			{Name: "linkedinUrl", Label: "LinkedIn URL", Type: FieldTypeText},
			{Name: "experienceLevel", Label: "Experience Level", Type: FieldTypeText},
			{Name: "availableForHire", Label: "Available for hire", Type: FieldTypeBool},
		},
		listField: FormField{Name: "skills", Label: "Skills", Type: FieldTypeList},
	},
}

func (s formSchema) field(name string) (FormField, bool) {
	for _, field := range s.fields {
		if field.Name == name {
			return field, true
		}
	}

	return FormField{}, false
}
