package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SettingsRepository struct {
	db DBTX
}

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var (
		s         settings.Settings
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `SELECT hotel_name, address_line1, address_line2, phone, email, logo_url,
		language, currency, updated_at FROM settings WHERE id = 1`).
		Scan(&s.HotelName, &s.AddressLine1, &s.AddressLine2, &s.Phone, &s.Email, &s.LogoURL,
			&s.Language, &s.Currency, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return settings.Default(), nil
		}
		return settings.Settings{}, infra.WrapRepoErr("failed to read settings", err)
	}
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	_, err := r.db.Exec(ctx, `INSERT INTO settings
		(id, hotel_name, address_line1, address_line2, phone, email, logo_url, language, currency, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			hotel_name = EXCLUDED.hotel_name,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			logo_url = EXCLUDED.logo_url,
			language = EXCLUDED.language,
			currency = EXCLUDED.currency,
			updated_at = EXCLUDED.updated_at`,
		s.HotelName, s.AddressLine1, s.AddressLine2, s.Phone, s.Email, s.LogoURL,
		s.Language, s.Currency, pgconv.TimeToPgtype(s.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save settings", err)
	}
	return nil
}
