package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"moonwise/internal/domain"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	var prefs domain.NotificationPreferences
	query := `SELECT * FROM notification_preferences WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &prefs, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *settingsRepository) Create(ctx context.Context, prefs *domain.NotificationPreferences) error {
	if prefs.ID == uuid.Nil {
		prefs.ID = uuid.New()
	}

	query := `
		INSERT INTO notification_preferences (
			id, user_id, notifications, new_moon_alerts, full_moon_alerts,
			quarter_moon_alerts, notification_time, alert_email,
			daily_insights, wellness_tips
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		prefs.ID, prefs.UserID, prefs.Notifications, prefs.NewMoonAlerts,
		prefs.FullMoonAlerts, prefs.QuarterMoonAlerts, prefs.NotificationTime,
		prefs.AlertEmail, prefs.DailyInsights, prefs.WellnessTips,
	).Scan(&prefs.CreatedAt, &prefs.UpdatedAt)
}

func (r *settingsRepository) Update(ctx context.Context, prefs *domain.NotificationPreferences) error {
	query := `
		UPDATE notification_preferences SET
			notifications = $2, new_moon_alerts = $3, full_moon_alerts = $4,
			quarter_moon_alerts = $5, notification_time = $6, alert_email = $7,
			daily_insights = $8, wellness_tips = $9, updated_at = NOW()
		WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query,
		prefs.UserID, prefs.Notifications, prefs.NewMoonAlerts,
		prefs.FullMoonAlerts, prefs.QuarterMoonAlerts, prefs.NotificationTime,
		prefs.AlertEmail, prefs.DailyInsights, prefs.WellnessTips,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
