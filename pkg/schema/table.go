package schema

import (
	"fmt"

	// Packages
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// UserTable implements table.Data for a list of users.
type UserTable []User

// ChatTable implements table.Data for a list of chats.
type ChatTable []ChatTitleID

// ModelTable implements table.Data for a list of unified models.
// DefaultModel is rendered in bold when it matches a row.
type ModelTable struct {
	Models       []UnifiedModel
	DefaultModel string
}

// FileTable implements table.Data for a list of files.
type FileTable []File

// KnowledgeTable implements table.Data for a list of knowledge bases.
type KnowledgeTable []Knowledge

// NoteTable implements table.Data for a list of notes.
type NoteTable []Note

// GroupTable implements table.Data for a list of groups.
type GroupTable []Group

///////////////////////////////////////////////////////////////////////////////
// USER TABLE (LIST)

func (t UserTable) Header() []string {
	return []string{"NAME", "EMAIL", "ROLE", "LAST ACTIVE"}
}

func (t UserTable) Len() int {
	return len(t)
}

func (t UserTable) Row(i int) []any {
	u := t[i]
	return []any{u.Name, u.Email, u.Role, uitable.Timestamp(u.LastActiveAt)}
}

///////////////////////////////////////////////////////////////////////////////
// CHAT TABLE (LIST)

func (t ChatTable) Header() []string {
	return []string{"ID", "TITLE", "UPDATED"}
}

func (t ChatTable) Len() int {
	return len(t)
}

func (t ChatTable) Row(i int) []any {
	c := t[i]
	return []any{c.ID, uitable.Truncate(c.Title, 60), uitable.Timestamp(c.UpdatedAt)}
}

///////////////////////////////////////////////////////////////////////////////
// MODEL TABLE (LIST)

func (t ModelTable) Header() []string {
	return []string{"ID", "NAME", "OWNED BY"}
}

func (t ModelTable) Len() int {
	return len(t.Models)
}

func (t ModelTable) Row(i int) []any {
	m := t.Models[i]
	row := []any{m.ID, m.Name, m.OwnedBy}
	if t.DefaultModel != "" && m.ID == t.DefaultModel {
		for j, v := range row {
			row[j] = uitable.Bold{Value: v}
		}
	}
	return row
}

///////////////////////////////////////////////////////////////////////////////
// FILE TABLE (LIST)

func (t FileTable) Header() []string {
	return []string{"ID", "FILENAME", "SIZE", "CREATED"}
}

func (t FileTable) Len() int {
	return len(t)
}

func (t FileTable) Row(i int) []any {
	f := t[i]
	size := "-"
	if f.Meta.Size > 0 {
		size = formatBytes(f.Meta.Size)
	}
	return []any{f.ID, f.Filename, size, uitable.Timestamp(f.CreatedAt)}
}

///////////////////////////////////////////////////////////////////////////////
// KNOWLEDGE TABLE (LIST)

func (t KnowledgeTable) Header() []string {
	return []string{"ID", "NAME", "DESCRIPTION", "FILES", "UPDATED"}
}

func (t KnowledgeTable) Len() int {
	return len(t)
}

func (t KnowledgeTable) Row(i int) []any {
	k := t[i]
	return []any{k.ID, k.Name, uitable.Truncate(k.Description, 40), len(k.Files), uitable.Timestamp(k.UpdatedAt)}
}

///////////////////////////////////////////////////////////////////////////////
// NOTE TABLE (LIST)

func (t NoteTable) Header() []string {
	return []string{"ID", "TITLE", "UPDATED"}
}

func (t NoteTable) Len() int {
	return len(t)
}

func (t NoteTable) Row(i int) []any {
	n := t[i]
	return []any{n.ID, uitable.Truncate(n.Title, 60), uitable.Timestamp(n.UpdatedAt)}
}

///////////////////////////////////////////////////////////////////////////////
// GROUP TABLE (LIST)

func (t GroupTable) Header() []string {
	return []string{"ID", "NAME", "DESCRIPTION", "MEMBERS"}
}

func (t GroupTable) Len() int {
	return len(t)
}

func (t GroupTable) Row(i int) []any {
	g := t[i]
	members := len(g.UserIDs)
	if g.MemberCount != nil {
		members = *g.MemberCount
	}
	return []any{g.ID, g.Name, uitable.Truncate(g.Description, 40), members}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
