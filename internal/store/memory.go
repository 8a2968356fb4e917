package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shamscripts/crm-followup/internal/model"
)

// NewMemoryStores wires in-memory implementations of every store interface.
// Used by the test suite and the STORE=memory dev mode. All implementations
// are safe for concurrent use.
func NewMemoryStores() Stores {
	return Stores{
		Leads:         NewMemoryLeads(),
		Companies:     NewMemoryCompanies(),
		Users:         NewMemoryUsers(),
		FollowUps:     NewMemoryFollowUps(),
		CallNotes:     NewMemoryCallNotes(),
		Emails:        NewMemoryEmails(),
		Notifications: NewMemoryNotifications(),
	}
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func ensureTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func sortByCreated[T any](s []T, key func(T) (time.Time, string)) {
	sort.Slice(s, func(i, j int) bool {
		ti, idi := key(s[i])
		tj, idj := key(s[j])
		if ti.Equal(tj) {
			return idi < idj
		}
		return ti.Before(tj)
	})
}

// --- Leads ---

// MemoryLeads is an in-memory LeadStore.
type MemoryLeads struct {
	mu    sync.RWMutex
	leads map[string]model.Lead
}

func NewMemoryLeads() *MemoryLeads {
	return &MemoryLeads{leads: make(map[string]model.Lead)}
}

func (m *MemoryLeads) ListAll(ctx context.Context) ([]model.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		l.Tags = append([]string(nil), l.Tags...)
		out = append(out, l)
	}
	sortByCreated(out, func(l model.Lead) (time.Time, string) { return l.CreatedAt, l.ID })
	return out, nil
}

func (m *MemoryLeads) Get(ctx context.Context, id string) (model.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.leads[id]
	if !ok {
		return model.Lead{}, ErrNotFound
	}
	l.Tags = append([]string(nil), l.Tags...)
	return l, nil
}

func (m *MemoryLeads) Create(ctx context.Context, l model.Lead) (model.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.ID = ensureID(l.ID)
	l.CreatedAt = ensureTime(l.CreatedAt)
	l.UpdatedAt = ensureTime(l.UpdatedAt)
	m.leads[l.ID] = l
	return l, nil
}

func (m *MemoryLeads) Update(ctx context.Context, l model.Lead) (model.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.leads[l.ID]; !ok {
		return model.Lead{}, ErrNotFound
	}
	m.leads[l.ID] = l
	return l, nil
}

func (m *MemoryLeads) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.leads[id]; !ok {
		return ErrNotFound
	}
	delete(m.leads, id)
	return nil
}

// --- Companies ---

// MemoryCompanies is an in-memory CompanyStore.
type MemoryCompanies struct {
	mu        sync.RWMutex
	companies map[string]model.Company
}

func NewMemoryCompanies() *MemoryCompanies {
	return &MemoryCompanies{companies: make(map[string]model.Company)}
}

func (m *MemoryCompanies) ListAll(ctx context.Context) ([]model.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, c)
	}
	sortByCreated(out, func(c model.Company) (time.Time, string) { return c.CreatedAt, c.ID })
	return out, nil
}

func (m *MemoryCompanies) Get(ctx context.Context, id string) (model.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.companies[id]
	if !ok {
		return model.Company{}, ErrNotFound
	}
	return c, nil
}

func (m *MemoryCompanies) Create(ctx context.Context, c model.Company) (model.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = ensureID(c.ID)
	c.CreatedAt = ensureTime(c.CreatedAt)
	c.UpdatedAt = ensureTime(c.UpdatedAt)
	m.companies[c.ID] = c
	return c, nil
}

func (m *MemoryCompanies) Update(ctx context.Context, c model.Company) (model.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.companies[c.ID]; !ok {
		return model.Company{}, ErrNotFound
	}
	m.companies[c.ID] = c
	return c, nil
}

func (m *MemoryCompanies) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.companies[id]; !ok {
		return ErrNotFound
	}
	delete(m.companies, id)
	return nil
}

// --- Users ---

// MemoryUsers is an in-memory UserStore.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string]model.User)}
}

func (m *MemoryUsers) ListAll(ctx context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sortByCreated(out, func(u model.User) (time.Time, string) { return u.CreatedAt, u.ID })
	return out, nil
}

func (m *MemoryUsers) Get(ctx context.Context, id string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryUsers) Create(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = ensureID(u.ID)
	u.CreatedAt = ensureTime(u.CreatedAt)
	m.users[u.ID] = u
	return u, nil
}

// --- Follow-ups ---

// MemoryFollowUps is an in-memory FollowUpStore.
type MemoryFollowUps struct {
	mu        sync.RWMutex
	followUps map[string]model.FollowUp
}

func NewMemoryFollowUps() *MemoryFollowUps {
	return &MemoryFollowUps{followUps: make(map[string]model.FollowUp)}
}

func (m *MemoryFollowUps) ListAll(ctx context.Context) ([]model.FollowUp, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.FollowUp, 0, len(m.followUps))
	for _, f := range m.followUps {
		out = append(out, f)
	}
	sortByCreated(out, func(f model.FollowUp) (time.Time, string) { return f.CreatedAt, f.ID })
	return out, nil
}

func (m *MemoryFollowUps) Get(ctx context.Context, id string) (model.FollowUp, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.followUps[id]
	if !ok {
		return model.FollowUp{}, ErrNotFound
	}
	return f, nil
}

func (m *MemoryFollowUps) Create(ctx context.Context, f model.FollowUp) (model.FollowUp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f.ID = ensureID(f.ID)
	f.CreatedAt = ensureTime(f.CreatedAt)
	f.UpdatedAt = ensureTime(f.UpdatedAt)
	m.followUps[f.ID] = f
	return f, nil
}

func (m *MemoryFollowUps) Update(ctx context.Context, f model.FollowUp) (model.FollowUp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.followUps[f.ID]; !ok {
		return model.FollowUp{}, ErrNotFound
	}
	m.followUps[f.ID] = f
	return f, nil
}

func (m *MemoryFollowUps) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.followUps[id]; !ok {
		return ErrNotFound
	}
	delete(m.followUps, id)
	return nil
}

// --- Call notes ---

// MemoryCallNotes is an in-memory CallNoteStore.
type MemoryCallNotes struct {
	mu    sync.RWMutex
	notes map[string]model.CallNote
}

func NewMemoryCallNotes() *MemoryCallNotes {
	return &MemoryCallNotes{notes: make(map[string]model.CallNote)}
}

func (m *MemoryCallNotes) ListAll(ctx context.Context) ([]model.CallNote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.CallNote, 0, len(m.notes))
	for _, n := range m.notes {
		out = append(out, n)
	}
	sortByCreated(out, func(n model.CallNote) (time.Time, string) { return n.CreatedAt, n.ID })
	return out, nil
}

func (m *MemoryCallNotes) Get(ctx context.Context, id string) (model.CallNote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.notes[id]
	if !ok {
		return model.CallNote{}, ErrNotFound
	}
	return n, nil
}

func (m *MemoryCallNotes) Create(ctx context.Context, n model.CallNote) (model.CallNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n.ID = ensureID(n.ID)
	n.CreatedAt = ensureTime(n.CreatedAt)
	m.notes[n.ID] = n
	return n, nil
}

func (m *MemoryCallNotes) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

// --- Email records ---

// MemoryEmails is an in-memory EmailStore.
type MemoryEmails struct {
	mu     sync.RWMutex
	emails map[string]model.EmailRecord
}

func NewMemoryEmails() *MemoryEmails {
	return &MemoryEmails{emails: make(map[string]model.EmailRecord)}
}

func (m *MemoryEmails) ListAll(ctx context.Context) ([]model.EmailRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.EmailRecord, 0, len(m.emails))
	for _, e := range m.emails {
		out = append(out, e)
	}
	sortByCreated(out, func(e model.EmailRecord) (time.Time, string) { return e.CreatedAt, e.ID })
	return out, nil
}

func (m *MemoryEmails) Get(ctx context.Context, id string) (model.EmailRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.emails[id]
	if !ok {
		return model.EmailRecord{}, ErrNotFound
	}
	return e, nil
}

func (m *MemoryEmails) Create(ctx context.Context, e model.EmailRecord) (model.EmailRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = ensureID(e.ID)
	e.CreatedAt = ensureTime(e.CreatedAt)
	m.emails[e.ID] = e
	return e, nil
}

func (m *MemoryEmails) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.emails[id]; !ok {
		return ErrNotFound
	}
	delete(m.emails, id)
	return nil
}

// --- Notifications ---

// MemoryNotifications is an in-memory NotificationStore.
type MemoryNotifications struct {
	mu            sync.RWMutex
	notifications map[string]model.Notification
}

func NewMemoryNotifications() *MemoryNotifications {
	return &MemoryNotifications{notifications: make(map[string]model.Notification)}
}

func (m *MemoryNotifications) ListForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Notification, 0)
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sortByCreated(out, func(n model.Notification) (time.Time, string) { return n.CreatedAt, n.ID })
	return out, nil
}

func (m *MemoryNotifications) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n.ID = ensureID(n.ID)
	n.CreatedAt = ensureTime(n.CreatedAt)
	m.notifications[n.ID] = n
	return n, nil
}

func (m *MemoryNotifications) MarkRead(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.Read = true
	m.notifications[id] = n
	return nil
}
