// Package model defines the CRM domain records shared by the stores, the
// HTTP handlers, and the spreadsheet sync engine.
package model

import "time"

// Lead status values. Informational only; no transition rules are enforced.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Lead pipeline stages.
const (
	StageProspect    = "prospect"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed-won"
	StageClosedLost  = "closed-lost"
)

// Priority levels shared by leads and follow-ups.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Lead is a sales lead. Natural key for sheet matching is Email.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	Designation string    `json:"designation"`
	Status      string    `json:"status"`
	Stage       string    `json:"stage"`
	Priority    string    `json:"priority"`
	Score       int       `json:"score"`
	AssignedTo  string    `json:"assignedTo"`
	Notes       string    `json:"notes"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Company is an organization a lead belongs to. Natural key is Name.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Size      string    `json:"size"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is a CRM user that leads and follow-ups can be assigned to.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FollowUp is a scheduled follow-up action against a lead.
type FollowUp struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"leadId"`
	AssignedTo string    `json:"assignedTo"`
	DueDate    time.Time `json:"dueDate"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"` // pending | done | overdue
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CallNote records the outcome of a call with a lead.
type CallNote struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	UserID    string    `json:"userId"`
	Outcome   string    `json:"outcome"`
	Notes     string    `json:"notes"`
	CalledAt  time.Time `json:"calledAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// EmailRecord tracks an email sent to or received from a lead.
type EmailRecord struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	UserID    string    `json:"userId"`
	Direction string    `json:"direction"` // inbound | outbound
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sentAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is an in-app notification for a user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
