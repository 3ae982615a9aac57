package dataset

import (
	"time"

	"github.com/rshade/adminboard/internal/listctl"
)

// User statuses shown as badges.
const (
	UserActive    = "Active"
	UserInactive  = "Inactive"
	UserSuspended = "Suspended"
)

// lastActiveLayout is the date format of the lastActive field.
const lastActiveLayout = "2006-01-02"

// Users returns the schema of the Users page.
func Users() *listctl.Schema {
	return &listctl.Schema{
		Name:       "users",
		Singular:   "User",
		TitleField: "name",
		Fields: []listctl.Field{
			{Name: "name", Label: "Name", Required: true, Searchable: true, Editable: true},
			{Name: "email", Label: "Email", Required: true, Searchable: true, Editable: true},
			{Name: "role", Label: "Role", Required: true, Searchable: true, Editable: true},
			{
				Name:     "status",
				Label:    "Status",
				Editable: true,
				Default:  func() any { return UserActive },
			},
			{
				Name:    "lastActive",
				Label:   "Last Active",
				Default: func() any { return time.Now().Format(lastActiveLayout) },
			},
		},
	}
}

// SampleUsers returns the twelve users the Users page starts with.
func SampleUsers() []listctl.Record {
	rows := []struct {
		id, name, email, role, status, lastActive string
	}{
		{"1", "John Doe", "john@example.com", "Admin", UserActive, "2025-05-01"},
		{"2", "Sarah Johnson", "sarah@example.com", "Manager", UserActive, "2025-05-01"},
		{"3", "Michael Brown", "michael@example.com", "User", UserInactive, "2025-04-28"},
		{"4", "Emily Davis", "emily@example.com", "User", UserActive, "2025-04-30"},
		{"5", "David Wilson", "david@example.com", "Manager", UserActive, "2025-05-01"},
		{"6", "Lisa Thompson", "lisa@example.com", "User", UserSuspended, "2025-04-25"},
		{"7", "Kevin Martin", "kevin@example.com", "User", UserActive, "2025-04-29"},
		{"8", "Jessica White", "jessica@example.com", "User", UserInactive, "2025-04-27"},
		{"9", "Robert Taylor", "robert@example.com", "Manager", UserActive, "2025-04-30"},
		{"10", "Amanda Garcia", "amanda@example.com", "User", UserActive, "2025-05-01"},
		{"11", "Thomas Robinson", "thomas@example.com", "User", UserActive, "2025-04-29"},
		{"12", "Jennifer Lewis", "jennifer@example.com", "User", UserSuspended, "2025-04-26"},
	}
	out := make([]listctl.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, listctl.NewRecord(r.id, map[string]any{
			"name":       r.name,
			"email":      r.email,
			"role":       r.role,
			"status":     r.status,
			"lastActive": r.lastActive,
		}))
	}
	return out
}
