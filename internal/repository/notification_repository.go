package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"moonwise/internal/domain"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create relies on the unique index over (user_id, phase_type, phase_day):
// concurrent scheduling runs for the same user cannot produce duplicate
// records even when both pass the scheduler's own dedup check.
func (r *notificationRepository) Create(ctx context.Context, notif *domain.PhaseNotification) error {
	if notif.ID == uuid.Nil {
		notif.ID = uuid.New()
	}

	query := `
		INSERT INTO phase_notifications (
			id, user_id, phase_type, phase_date, phase_day, notification_date, sent
		) VALUES ($1, $2, $3, $4, $5, $6, false)
		ON CONFLICT (user_id, phase_type, phase_day) DO NOTHING
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.PhaseType, notif.PhaseDate,
		notif.PhaseDay(), notif.NotificationDate,
	).Scan(&notif.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Conflict with an existing record: nothing inserted.
		return nil
	}
	return err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PhaseNotification, error) {
	var notifications []domain.PhaseNotification
	query := `
		SELECT id, user_id, phase_type, phase_date, notification_date, sent, created_at
		FROM phase_notifications
		WHERE user_id = $1
		ORDER BY phase_date`
	err := r.db.SelectContext(ctx, &notifications, query, userID)
	return notifications, err
}

func (r *notificationRepository) ListPending(ctx context.Context, now time.Time) ([]domain.PhaseNotification, error) {
	var notifications []domain.PhaseNotification
	query := `
		SELECT id, user_id, phase_type, phase_date, notification_date, sent, created_at
		FROM phase_notifications
		WHERE sent = false AND notification_date <= $1
		ORDER BY notification_date`
	err := r.db.SelectContext(ctx, &notifications, query, now)
	return notifications, err
}

func (r *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE phase_notifications SET sent = true WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
