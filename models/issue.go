package models

type Issue struct {
	ID             int64         `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       IssueCategory `json:"category"`
	Priority       IssuePriority `json:"priority"`
	Status         IssueStatus   `json:"status"`
	LocationInUnit string        `json:"locationInUnit,omitempty"`
	AdminNotes     string        `json:"adminNotes,omitempty"`
	Tenant         *Tenant       `json:"tenant,omitempty"`
	Unit           *Unit         `json:"unit,omitempty"`
	AssignedTo     *Tenant       `json:"assignedTo,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	UpdatedAt      string        `json:"updatedAt,omitempty"`
	ResolvedAt     string        `json:"resolvedAt,omitempty"`
}

type IssueRequest struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       IssueCategory `json:"category"`
	Priority       IssuePriority `json:"priority"`
	LocationInUnit string        `json:"locationInUnit,omitempty"`
}

// IssueStatusUpdate changes an issue's status, optionally with notes for the owner.
type IssueStatusUpdate struct {
	Status     IssueStatus `json:"status"`
	AdminNotes string      `json:"adminNotes,omitempty"`
}
