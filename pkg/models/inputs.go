package models

type TicketInput struct {
	Title               string
	DescriptionMarkdown string
	Images              []string
}

// TicketPatch carries a partial update. Nil fields are left untouched.
type TicketPatch struct {
	Title               *string
	DescriptionMarkdown *string
	Status              *TicketStatus
	Images              []string
	// Version, when set, must equal the stored version.
	Version *int
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type UserPatch struct {
	Role     *Role
	IsActive *bool
}
