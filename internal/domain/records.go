package domain

import "time"

// Collection names, matching the table names in the schema.
const (
	CollectionOrganizations          = "organizations"
	CollectionTeams                  = "teams"
	CollectionUsers                  = "users"
	CollectionTeamMemberships        = "team_memberships"
	CollectionProjects               = "projects"
	CollectionSections               = "sections"
	CollectionTasks                  = "tasks"
	CollectionComments               = "comments"
	CollectionCustomFieldDefinitions = "custom_field_definitions"
	CollectionCustomFieldEnumOptions = "custom_field_enum_options"
	CollectionCustomFieldValues      = "custom_field_values"
	CollectionTags                   = "tags"
	CollectionTaskTags               = "task_tags"
	CollectionAttachments            = "attachments"
)

// collectionColumns fixes the insert column order per collection. Each list
// must match the schema and the Record method for its entity; store.BulkInsert
// rejects records that drift from it.
var collectionColumns = map[string][]string{
	CollectionOrganizations: {
		"organization_id", "name", "domain", "is_organization", "created_at",
	},
	CollectionTeams: {
		"team_id", "organization_id", "name", "description", "team_type", "created_at",
	},
	CollectionUsers: {
		"user_id", "organization_id", "email", "first_name", "last_name", "role",
		"job_title", "department", "is_active", "created_at", "last_active_at",
	},
	CollectionTeamMemberships: {
		"membership_id", "team_id", "user_id", "is_team_lead", "joined_at",
	},
	CollectionProjects: {
		"project_id", "organization_id", "team_id", "name", "description",
		"project_type", "workflow_type", "status", "owner_id", "is_public",
		"color", "created_at", "due_date", "completed_at", "archived_at",
	},
	CollectionSections: {
		"section_id", "project_id", "name", "position", "created_at",
	},
	CollectionTasks: {
		"task_id", "project_id", "section_id", "parent_task_id", "name",
		"description", "assignee_id", "created_by", "status", "due_date",
		"start_date", "created_at", "modified_at", "completed_at", "completed_by",
		"is_milestone", "num_likes", "num_subtasks", "num_comments",
	},
	CollectionComments: {
		"comment_id", "task_id", "user_id", "comment_type", "text",
		"created_at", "is_pinned", "num_likes",
	},
	CollectionCustomFieldDefinitions: {
		"field_id", "organization_id", "name", "description", "field_type",
		"is_global", "created_at",
	},
	CollectionCustomFieldEnumOptions: {
		"option_id", "field_id", "name", "color", "position", "enabled",
	},
	CollectionCustomFieldValues: {
		"value_id", "task_id", "field_id", "text_value", "number_value",
		"date_value", "enum_option_id", "created_at", "modified_at",
	},
	CollectionTags: {
		"tag_id", "organization_id", "name", "color", "created_at",
	},
	CollectionTaskTags: {
		"task_tag_id", "task_id", "tag_id", "created_at",
	},
	CollectionAttachments: {
		"attachment_id", "task_id", "uploaded_by", "filename", "file_type",
		"file_size", "storage_url", "created_at",
	},
}

// Columns returns the fixed insert column order for collection.
func Columns(collection string) []string {
	return collectionColumns[collection]
}

const dateLayout = "2006-01-02"

func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func tsPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func datePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func strPtr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func floatPtr(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Record returns the row representation consumed by store.BulkInsert.

func (o Organization) Record() map[string]any {
	return map[string]any{
		"organization_id": o.OrganizationID,
		"name":            o.Name,
		"domain":          o.Domain,
		"is_organization": boolInt(o.IsOrganization),
		"created_at":      ts(o.CreatedAt),
	}
}

func (t Team) Record() map[string]any {
	return map[string]any{
		"team_id":         t.TeamID,
		"organization_id": t.OrganizationID,
		"name":            t.Name,
		"description":     nullable(t.Description),
		"team_type":       t.TeamType,
		"created_at":      ts(t.CreatedAt),
	}
}

func (u User) Record() map[string]any {
	return map[string]any{
		"user_id":         u.UserID,
		"organization_id": u.OrganizationID,
		"email":           u.Email,
		"first_name":      u.FirstName,
		"last_name":       u.LastName,
		"role":            u.Role,
		"job_title":       nullable(u.JobTitle),
		"department":      nullable(u.Department),
		"is_active":       boolInt(u.IsActive),
		"created_at":      ts(u.CreatedAt),
		"last_active_at":  tsPtr(u.LastActiveAt),
	}
}

func (m TeamMembership) Record() map[string]any {
	return map[string]any{
		"membership_id": m.MembershipID,
		"team_id":       m.TeamID,
		"user_id":       m.UserID,
		"is_team_lead":  boolInt(m.IsTeamLead),
		"joined_at":     ts(m.JoinedAt),
	}
}

func (p Project) Record() map[string]any {
	return map[string]any{
		"project_id":      p.ProjectID,
		"organization_id": p.OrganizationID,
		"team_id":         p.TeamID,
		"name":            p.Name,
		"description":     nullable(p.Description),
		"project_type":    p.ProjectType,
		"workflow_type":   p.WorkflowType,
		"status":          p.Status,
		"owner_id":        nullable(p.OwnerID),
		"is_public":       boolInt(p.IsPublic),
		"color":           nullable(p.Color),
		"created_at":      ts(p.CreatedAt),
		"due_date":        datePtr(p.DueDate),
		"completed_at":    tsPtr(p.CompletedAt),
		"archived_at":     tsPtr(p.ArchivedAt),
	}
}

func (s Section) Record() map[string]any {
	return map[string]any{
		"section_id": s.SectionID,
		"project_id": s.ProjectID,
		"name":       s.Name,
		"position":   s.Position,
		"created_at": ts(s.CreatedAt),
	}
}

func (t Task) Record() map[string]any {
	return map[string]any{
		"task_id":        t.TaskID,
		"project_id":     t.ProjectID,
		"section_id":     t.SectionID,
		"parent_task_id": strPtr(t.ParentTaskID),
		"name":           t.Name,
		"description":    nullable(t.Description),
		"assignee_id":    strPtr(t.AssigneeID),
		"created_by":     t.CreatedBy,
		"status":         t.Status,
		"due_date":       datePtr(t.DueDate),
		"start_date":     datePtr(t.StartDate),
		"created_at":     ts(t.CreatedAt),
		"modified_at":    ts(t.ModifiedAt),
		"completed_at":   tsPtr(t.CompletedAt),
		"completed_by":   strPtr(t.CompletedBy),
		"is_milestone":   boolInt(t.IsMilestone),
		"num_likes":      t.NumLikes,
		"num_subtasks":   t.NumSubtasks,
		"num_comments":   t.NumComments,
	}
}

func (c Comment) Record() map[string]any {
	return map[string]any{
		"comment_id":   c.CommentID,
		"task_id":      c.TaskID,
		"user_id":      c.UserID,
		"comment_type": c.CommentType,
		"text":         c.Text,
		"created_at":   ts(c.CreatedAt),
		"is_pinned":    boolInt(c.IsPinned),
		"num_likes":    c.NumLikes,
	}
}

func (d CustomFieldDefinition) Record() map[string]any {
	return map[string]any{
		"field_id":        d.FieldID,
		"organization_id": d.OrganizationID,
		"name":            d.Name,
		"description":     nullable(d.Description),
		"field_type":      d.FieldType,
		"is_global":       boolInt(d.IsGlobal),
		"created_at":      ts(d.CreatedAt),
	}
}

func (o CustomFieldEnumOption) Record() map[string]any {
	return map[string]any{
		"option_id": o.OptionID,
		"field_id":  o.FieldID,
		"name":      o.Name,
		"color":     nullable(o.Color),
		"position":  o.Position,
		"enabled":   boolInt(o.Enabled),
	}
}

func (v CustomFieldValue) Record() map[string]any {
	return map[string]any{
		"value_id":       v.ValueID,
		"task_id":        v.TaskID,
		"field_id":       v.FieldID,
		"text_value":     strPtr(v.TextValue),
		"number_value":   floatPtr(v.NumberValue),
		"date_value":     datePtr(v.DateValue),
		"enum_option_id": strPtr(v.EnumOptionID),
		"created_at":     ts(v.CreatedAt),
		"modified_at":    ts(v.ModifiedAt),
	}
}

func (t Tag) Record() map[string]any {
	return map[string]any{
		"tag_id":          t.TagID,
		"organization_id": t.OrganizationID,
		"name":            t.Name,
		"color":           nullable(t.Color),
		"created_at":      ts(t.CreatedAt),
	}
}

func (t TaskTag) Record() map[string]any {
	return map[string]any{
		"task_tag_id": t.TaskTagID,
		"task_id":     t.TaskID,
		"tag_id":      t.TagID,
		"created_at":  ts(t.CreatedAt),
	}
}

func (a Attachment) Record() map[string]any {
	return map[string]any{
		"attachment_id": a.AttachmentID,
		"task_id":       a.TaskID,
		"uploaded_by":   a.UploadedBy,
		"filename":      a.Filename,
		"file_type":     nullable(a.FileType),
		"file_size":     a.FileSize,
		"storage_url":   nullable(a.StorageURL),
		"created_at":    ts(a.CreatedAt),
	}
}
