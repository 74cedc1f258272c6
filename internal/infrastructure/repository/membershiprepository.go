package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stratplan/internal/domain/access"
	"stratplan/internal/infrastructure/persistence/mappers"
	"stratplan/internal/infrastructure/persistence/models"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
)

type MembershipRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db, mapper: mappers.NewOrganizationMapper()}
}

func (r *MembershipRepository) Create(ctx context.Context, m *access.Membership) error {
	model := r.mapper.MembershipToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user already holds this role in the organization").
				WithData("user_id", m.UserID).
				WithData("organization_id", m.OrganizationID).
				WithData("role", m.Role.String())
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}
	m.ID = model.ID
	return nil
}

// Delete revokes one role. Reviews written under the membership keep
// their record with no evaluator.
func (r *MembershipRepository) Delete(ctx context.Context, userID, organizationID uint, role access.Role) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		ids, err := pluckIDs(tx, &models.MembershipModel{},
			"user_id = ? AND organization_id = ? AND role = ?", userID, organizationID, role.String())
		if err != nil {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if len(ids) == 0 {
			return errors.NewNotFoundError("membership not found")
		}
		if err := detachEvaluators(tx, ids); err != nil {
			return err
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.MembershipModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete membership: %w", err)
		}
		return nil
	})
}

func (r *MembershipRepository) GetByID(ctx context.Context, id uint) (*access.Membership, error) {
	var model models.MembershipModel
	if err := findOne(ctx, r.db, &model, id, "membership"); err != nil {
		return nil, err
	}
	m := r.mapper.MembershipToDomain(&model)
	return &m, nil
}

func (r *MembershipRepository) ListByUser(ctx context.Context, userID uint) ([]access.Membership, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *MembershipRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]access.Membership, error) {
	return r.list(ctx, "organization_id = ?", organizationID)
}

func (r *MembershipRepository) ListAll(ctx context.Context) ([]access.Membership, error) {
	return r.list(ctx, "1 = 1")
}

func (r *MembershipRepository) list(ctx context.Context, query string, args ...interface{}) ([]access.Membership, error) {
	var list []*models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where(query, args...).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	out := make([]access.Membership, 0, len(list))
	for _, model := range list {
		out = append(out, r.mapper.MembershipToDomain(model))
	}
	return out, nil
}
