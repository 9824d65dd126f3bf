package postgres

import (
	"context"

	"carmarket/internal/domain/service"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdentityMirror writes the local copy of identity-provider users that profiles reference.
// Production rows come from the provider's sync; marketctl uses this for development users.
type IdentityMirror struct {
	db *gorm.DB
}

// NewIdentityMirror is the constructor for IdentityMirror.
func NewIdentityMirror(db *gorm.DB) *IdentityMirror {
	return &IdentityMirror{db: db}
}

// Upsert inserts the identity or refreshes its display fields.
func (m *IdentityMirror) Upsert(ctx context.Context, identity *service.Identity) error {
	row := &model.IdentityUserModel{
		ID:           identity.ID,
		DisplayName:  optional(identity.DisplayName),
		PrimaryEmail: optional(identity.PrimaryEmail),
	}

	if err := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "primary_email", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to upsert identity user")
	}

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
