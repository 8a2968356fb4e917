// Package store provides record storage for the CRM entities.
//
// The sheet sync engine only depends on the ListAll/Create/Update subset of
// these interfaces; the REST handlers use the full CRUD surface. Two
// implementations exist: Postgres (pgx) and Memory (tests and dev mode).
package store

import (
	"context"
	"errors"

	"github.com/shamscripts/crm-followup/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// LeadStore stores leads.
type LeadStore interface {
	ListAll(ctx context.Context) ([]model.Lead, error)
	Get(ctx context.Context, id string) (model.Lead, error)
	Create(ctx context.Context, l model.Lead) (model.Lead, error)
	Update(ctx context.Context, l model.Lead) (model.Lead, error)
	Delete(ctx context.Context, id string) error
}

// CompanyStore stores companies.
type CompanyStore interface {
	ListAll(ctx context.Context) ([]model.Company, error)
	Get(ctx context.Context, id string) (model.Company, error)
	Create(ctx context.Context, c model.Company) (model.Company, error)
	Update(ctx context.Context, c model.Company) (model.Company, error)
	Delete(ctx context.Context, id string) error
}

// UserStore stores CRM users.
type UserStore interface {
	ListAll(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
}

// FollowUpStore stores follow-ups.
type FollowUpStore interface {
	ListAll(ctx context.Context) ([]model.FollowUp, error)
	Get(ctx context.Context, id string) (model.FollowUp, error)
	Create(ctx context.Context, f model.FollowUp) (model.FollowUp, error)
	Update(ctx context.Context, f model.FollowUp) (model.FollowUp, error)
	Delete(ctx context.Context, id string) error
}

// CallNoteStore stores call notes.
type CallNoteStore interface {
	ListAll(ctx context.Context) ([]model.CallNote, error)
	Get(ctx context.Context, id string) (model.CallNote, error)
	Create(ctx context.Context, n model.CallNote) (model.CallNote, error)
	Delete(ctx context.Context, id string) error
}

// EmailStore stores email records.
type EmailStore interface {
	ListAll(ctx context.Context) ([]model.EmailRecord, error)
	Get(ctx context.Context, id string) (model.EmailRecord, error)
	Create(ctx context.Context, e model.EmailRecord) (model.EmailRecord, error)
	Delete(ctx context.Context, id string) error
}

// NotificationStore stores user notifications.
type NotificationStore interface {
	ListForUser(ctx context.Context, userID string) ([]model.Notification, error)
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// Stores bundles every per-kind store behind one value so callers can wire a
// single implementation (Postgres or Memory) through the server.
type Stores struct {
	Leads         LeadStore
	Companies     CompanyStore
	Users         UserStore
	FollowUps     FollowUpStore
	CallNotes     CallNoteStore
	Emails        EmailStore
	Notifications NotificationStore
}
