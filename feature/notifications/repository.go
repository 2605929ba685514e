package notifications

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists notification messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the notification table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Message{})
}

// Create stores a message.
func (r *Repository) Create(ctx context.Context, m *Message) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// List returns messages newest first, optionally restricted to one type.
func (r *Repository) List(ctx context.Context, typ Type, limit int) ([]Message, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []Message
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}

// Count returns the number of stored messages.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Message{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return n, nil
}

// Publisher emits messages under a fixed title.
type Publisher struct {
	repo  *Repository
	title string
}

// Publisher returns a publisher writing messages with the given title.
func (r *Repository) Publisher(title string) *Publisher {
	return &Publisher{repo: r, title: title}
}

// Emit stores one message. Info messages get a generic summary with the
// message as detail; error messages carry the message in both fields.
func (p *Publisher) Emit(ctx context.Context, message string, isError bool) error {
	m := &Message{
		Title:           p.title,
		Type:            TypeInfo,
		SummaryMessage:  "The synchronization was performed successfully.",
		DetailedMessage: message,
	}
	if isError {
		m.Type = TypeError
		m.SummaryMessage = message
	}
	return p.repo.Create(ctx, m)
}
