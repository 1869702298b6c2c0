package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.NewString()
}

// Task status values.
const (
	StatusIncomplete = "incomplete"
	StatusComplete   = "complete"
)

type Organization struct {
	OrganizationID string
	Name           string
	Domain         string
	IsOrganization bool
	CreatedAt      time.Time
}

type Team struct {
	TeamID         string
	OrganizationID string
	Name           string
	Description    string
	TeamType       string
	CreatedAt      time.Time
}

type User struct {
	UserID         string
	OrganizationID string
	Email          string
	FirstName      string
	LastName       string
	Role           string
	JobTitle       string
	Department     string
	IsActive       bool
	CreatedAt      time.Time
	LastActiveAt   *time.Time
}

type TeamMembership struct {
	MembershipID string
	TeamID       string
	UserID       string
	IsTeamLead   bool
	JoinedAt     time.Time
}

type Project struct {
	ProjectID      string
	OrganizationID string
	TeamID         string
	Name           string
	Description    string
	ProjectType    string
	WorkflowType   string
	Status         string
	OwnerID        string
	IsPublic       bool
	Color          string
	CreatedAt      time.Time
	DueDate        *time.Time
	CompletedAt    *time.Time
	ArchivedAt     *time.Time
}

type Section struct {
	SectionID string
	ProjectID string
	Name      string
	Position  int
	CreatedAt time.Time
}

// Task covers both top-level tasks and subtasks. A subtask carries a
// ParentTaskID and never has subtasks of its own.
type Task struct {
	TaskID       string
	ProjectID    string
	SectionID    string
	ParentTaskID *string
	Name         string
	Description  string
	AssigneeID   *string
	CreatedBy    string
	Status       string
	DueDate      *time.Time
	StartDate    *time.Time
	CreatedAt    time.Time
	ModifiedAt   time.Time
	CompletedAt  *time.Time
	CompletedBy  *string
	IsMilestone  bool
	NumLikes     int
	NumSubtasks  int
	NumComments  int
}

type Comment struct {
	CommentID   string
	TaskID      string
	UserID      string
	CommentType string
	Text        string
	CreatedAt   time.Time
	IsPinned    bool
	NumLikes    int
}

type CustomFieldDefinition struct {
	FieldID        string
	OrganizationID string
	Name           string
	Description    string
	FieldType      string
	IsGlobal       bool
	CreatedAt      time.Time
}

type CustomFieldEnumOption struct {
	OptionID string
	FieldID  string
	Name     string
	Color    string
	Position int
	Enabled  bool
}

type CustomFieldValue struct {
	ValueID      string
	TaskID       string
	FieldID      string
	TextValue    *string
	NumberValue  *float64
	DateValue    *time.Time
	EnumOptionID *string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

type Tag struct {
	TagID          string
	OrganizationID string
	Name           string
	Color          string
	CreatedAt      time.Time
}

type TaskTag struct {
	TaskTagID string
	TaskID    string
	TagID     string
	CreatedAt time.Time
}

type Attachment struct {
	AttachmentID string
	TaskID       string
	UploadedBy   string
	Filename     string
	FileType     string
	FileSize     int64
	StorageURL   string
	CreatedAt    time.Time
}
