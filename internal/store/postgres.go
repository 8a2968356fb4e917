package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shamscripts/crm-followup/internal/model"
)

// NewPostgresStores wires pgx-backed implementations of every store
// interface over one shared pool.
func NewPostgresStores(pool *pgxpool.Pool) Stores {
	return Stores{
		Leads:         &PostgresLeads{Pool: pool},
		Companies:     &PostgresCompanies{Pool: pool},
		Users:         &PostgresUsers{Pool: pool},
		FollowUps:     &PostgresFollowUps{Pool: pool},
		CallNotes:     &PostgresCallNotes{Pool: pool},
		Emails:        &PostgresEmails{Pool: pool},
		Notifications: &PostgresNotifications{Pool: pool},
	}
}

// InitSchema creates the CRM tables if they do not exist.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lead (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL DEFAULT '',
			email        TEXT NOT NULL DEFAULT '',
			phone        TEXT NOT NULL DEFAULT '',
			company      TEXT NOT NULL DEFAULT '',
			designation  TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT 'active',
			stage        TEXT NOT NULL DEFAULT 'prospect',
			priority     TEXT NOT NULL DEFAULT 'medium',
			score        INT  NOT NULL DEFAULT 0,
			assigned_to  TEXT NOT NULL DEFAULT '',
			notes        TEXT NOT NULL DEFAULT '',
			tags         TEXT[] NOT NULL DEFAULT '{}',
			created_at   TIMESTAMPTZ NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS company (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			industry   TEXT NOT NULL DEFAULT '',
			size       TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			notes      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS crm_user (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			role       TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS follow_up (
			id          TEXT PRIMARY KEY,
			lead_id     TEXT NOT NULL,
			assigned_to TEXT NOT NULL DEFAULT '',
			due_date    TIMESTAMPTZ NOT NULL,
			priority    TEXT NOT NULL DEFAULT 'medium',
			status      TEXT NOT NULL DEFAULT 'pending',
			notes       TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS call_note (
			id         TEXT PRIMARY KEY,
			lead_id    TEXT NOT NULL,
			user_id    TEXT NOT NULL DEFAULT '',
			outcome    TEXT NOT NULL DEFAULT '',
			notes      TEXT NOT NULL DEFAULT '',
			called_at  TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS email_record (
			id         TEXT PRIMARY KEY,
			lead_id    TEXT NOT NULL,
			user_id    TEXT NOT NULL DEFAULT '',
			direction  TEXT NOT NULL DEFAULT 'outbound',
			subject    TEXT NOT NULL DEFAULT '',
			body       TEXT NOT NULL DEFAULT '',
			sent_at    TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notification (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			kind       TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL DEFAULT '',
			read       BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init: %w", err)
		}
	}
	return nil
}

// --- Leads ---

// PostgresLeads is a pgx-backed LeadStore.
type PostgresLeads struct {
	Pool *pgxpool.Pool
}

const leadColumns = `id, name, email, phone, company, designation, status, stage,
	priority, score, assigned_to, notes, tags, created_at, updated_at`

func scanLead(row pgx.Row) (model.Lead, error) {
	var l model.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Designation,
		&l.Status, &l.Stage, &l.Priority, &l.Score, &l.AssignedTo, &l.Notes,
		&l.Tags, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (s *PostgresLeads) ListAll(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT `+leadColumns+` FROM lead ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []model.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *PostgresLeads) Get(ctx context.Context, id string) (model.Lead, error) {
	l, err := scanLead(s.Pool.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM lead WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Lead{}, ErrNotFound
	}
	if err != nil {
		return model.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

func (s *PostgresLeads) Create(ctx context.Context, l model.Lead) (model.Lead, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO lead (`+leadColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, l.ID, l.Name, l.Email, l.Phone, l.Company, l.Designation, l.Status,
		l.Stage, l.Priority, l.Score, l.AssignedTo, l.Notes, l.Tags,
		l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return model.Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return l, nil
}

func (s *PostgresLeads) Update(ctx context.Context, l model.Lead) (model.Lead, error) {
	if l.Tags == nil {
		l.Tags = []string{}
	}
	tag, err := s.Pool.Exec(ctx, `
		UPDATE lead SET name = $2, email = $3, phone = $4, company = $5,
			designation = $6, status = $7, stage = $8, priority = $9,
			score = $10, assigned_to = $11, notes = $12, tags = $13,
			updated_at = $14
		WHERE id = $1
	`, l.ID, l.Name, l.Email, l.Phone, l.Company, l.Designation, l.Status,
		l.Stage, l.Priority, l.Score, l.AssignedTo, l.Notes, l.Tags, l.UpdatedAt)
	if err != nil {
		return model.Lead{}, fmt.Errorf("update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Lead{}, ErrNotFound
	}
	return l, nil
}

func (s *PostgresLeads) Delete(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM lead WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Companies ---

// PostgresCompanies is a pgx-backed CompanyStore.
type PostgresCompanies struct {
	Pool *pgxpool.Pool
}

const companyColumns = `id, name, industry, size, phone, email, notes, created_at, updated_at`

func scanCompany(row pgx.Row) (model.Company, error) {
	var c model.Company
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Size, &c.Phone, &c.Email,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *PostgresCompanies) ListAll(ctx context.Context) ([]model.Company, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT `+companyColumns+` FROM company ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresCompanies) Get(ctx context.Context, id string) (model.Company, error) {
	c, err := scanCompany(s.Pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM company WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Company{}, ErrNotFound
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func (s *PostgresCompanies) Create(ctx context.Context, c model.Company) (model.Company, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO company (`+companyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, c.ID, c.Name, c.Industry, c.Size, c.Phone, c.Email, c.Notes,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return model.Company{}, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

func (s *PostgresCompanies) Update(ctx context.Context, c model.Company) (model.Company, error) {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE company SET name = $2, industry = $3, size = $4, phone = $5,
			email = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`, c.ID, c.Name, c.Industry, c.Size, c.Phone, c.Email, c.Notes, c.UpdatedAt)
	if err != nil {
		return model.Company{}, fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Company{}, ErrNotFound
	}
	return c, nil
}

func (s *PostgresCompanies) Delete(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM company WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Users ---

// PostgresUsers is a pgx-backed UserStore.
type PostgresUsers struct {
	Pool *pgxpool.Pool
}

func (s *PostgresUsers) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, name, email, role, created_at FROM crm_user ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresUsers) Get(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := s.Pool.QueryRow(ctx,
		`SELECT id, name, email, role, created_at FROM crm_user WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *PostgresUsers) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO crm_user (id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Name, u.Email, u.Role, u.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// --- Follow-ups ---

// PostgresFollowUps is a pgx-backed FollowUpStore.
type PostgresFollowUps struct {
	Pool *pgxpool.Pool
}

const followUpColumns = `id, lead_id, assigned_to, due_date, priority, status, notes, created_at, updated_at`

func scanFollowUp(row pgx.Row) (model.FollowUp, error) {
	var f model.FollowUp
	err := row.Scan(&f.ID, &f.LeadID, &f.AssignedTo, &f.DueDate, &f.Priority,
		&f.Status, &f.Notes, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (s *PostgresFollowUps) ListAll(ctx context.Context) ([]model.FollowUp, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT `+followUpColumns+` FROM follow_up ORDER BY due_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	defer rows.Close()

	var out []model.FollowUp
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *PostgresFollowUps) Get(ctx context.Context, id string) (model.FollowUp, error) {
	f, err := scanFollowUp(s.Pool.QueryRow(ctx,
		`SELECT `+followUpColumns+` FROM follow_up WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.FollowUp{}, ErrNotFound
	}
	if err != nil {
		return model.FollowUp{}, fmt.Errorf("get follow-up: %w", err)
	}
	return f, nil
}

func (s *PostgresFollowUps) Create(ctx context.Context, f model.FollowUp) (model.FollowUp, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO follow_up (`+followUpColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, f.ID, f.LeadID, f.AssignedTo, f.DueDate, f.Priority, f.Status, f.Notes,
		f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return model.FollowUp{}, fmt.Errorf("create follow-up: %w", err)
	}
	return f, nil
}

func (s *PostgresFollowUps) Update(ctx context.Context, f model.FollowUp) (model.FollowUp, error) {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE follow_up SET lead_id = $2, assigned_to = $3, due_date = $4,
			priority = $5, status = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`, f.ID, f.LeadID, f.AssignedTo, f.DueDate, f.Priority, f.Status, f.Notes,
		f.UpdatedAt)
	if err != nil {
		return model.FollowUp{}, fmt.Errorf("update follow-up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.FollowUp{}, ErrNotFound
	}
	return f, nil
}

func (s *PostgresFollowUps) Delete(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM follow_up WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete follow-up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Call notes ---

// PostgresCallNotes is a pgx-backed CallNoteStore.
type PostgresCallNotes struct {
	Pool *pgxpool.Pool
}

func (s *PostgresCallNotes) ListAll(ctx context.Context) ([]model.CallNote, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, lead_id, user_id, outcome, notes, called_at, created_at
		FROM call_note ORDER BY called_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list call notes: %w", err)
	}
	defer rows.Close()

	var out []model.CallNote
	for rows.Next() {
		var n model.CallNote
		if err := rows.Scan(&n.ID, &n.LeadID, &n.UserID, &n.Outcome, &n.Notes,
			&n.CalledAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan call note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *PostgresCallNotes) Get(ctx context.Context, id string) (model.CallNote, error) {
	var n model.CallNote
	err := s.Pool.QueryRow(ctx, `
		SELECT id, lead_id, user_id, outcome, notes, called_at, created_at
		FROM call_note WHERE id = $1`, id).
		Scan(&n.ID, &n.LeadID, &n.UserID, &n.Outcome, &n.Notes, &n.CalledAt, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CallNote{}, ErrNotFound
	}
	if err != nil {
		return model.CallNote{}, fmt.Errorf("get call note: %w", err)
	}
	return n, nil
}

func (s *PostgresCallNotes) Create(ctx context.Context, n model.CallNote) (model.CallNote, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.CalledAt.IsZero() {
		n.CalledAt = now
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO call_note (id, lead_id, user_id, outcome, notes, called_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.LeadID, n.UserID, n.Outcome, n.Notes, n.CalledAt, n.CreatedAt)
	if err != nil {
		return model.CallNote{}, fmt.Errorf("create call note: %w", err)
	}
	return n, nil
}

func (s *PostgresCallNotes) Delete(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM call_note WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete call note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Email records ---

// PostgresEmails is a pgx-backed EmailStore.
type PostgresEmails struct {
	Pool *pgxpool.Pool
}

func (s *PostgresEmails) ListAll(ctx context.Context) ([]model.EmailRecord, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, lead_id, user_id, direction, subject, body, sent_at, created_at
		FROM email_record ORDER BY sent_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list email records: %w", err)
	}
	defer rows.Close()

	var out []model.EmailRecord
	for rows.Next() {
		var e model.EmailRecord
		if err := rows.Scan(&e.ID, &e.LeadID, &e.UserID, &e.Direction, &e.Subject,
			&e.Body, &e.SentAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan email record: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresEmails) Get(ctx context.Context, id string) (model.EmailRecord, error) {
	var e model.EmailRecord
	err := s.Pool.QueryRow(ctx, `
		SELECT id, lead_id, user_id, direction, subject, body, sent_at, created_at
		FROM email_record WHERE id = $1`, id).
		Scan(&e.ID, &e.LeadID, &e.UserID, &e.Direction, &e.Subject, &e.Body,
			&e.SentAt, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.EmailRecord{}, ErrNotFound
	}
	if err != nil {
		return model.EmailRecord{}, fmt.Errorf("get email record: %w", err)
	}
	return e, nil
}

func (s *PostgresEmails) Create(ctx context.Context, e model.EmailRecord) (model.EmailRecord, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.SentAt.IsZero() {
		e.SentAt = now
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO email_record (id, lead_id, user_id, direction, subject, body, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, e.LeadID, e.UserID, e.Direction, e.Subject, e.Body, e.SentAt, e.CreatedAt)
	if err != nil {
		return model.EmailRecord{}, fmt.Errorf("create email record: %w", err)
	}
	return e, nil
}

func (s *PostgresEmails) Delete(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM email_record WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete email record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Notifications ---

// PostgresNotifications is a pgx-backed NotificationStore.
type PostgresNotifications struct {
	Pool *pgxpool.Pool
}

func (s *PostgresNotifications) ListForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, user_id, kind, message, read, created_at
		FROM notification WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.Read,
			&n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *PostgresNotifications) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO notification (id, user_id, kind, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, n.ID, n.UserID, n.Kind, n.Message, n.Read, n.CreatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *PostgresNotifications) MarkRead(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx,
		`UPDATE notification SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
