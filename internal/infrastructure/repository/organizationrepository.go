package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stratplan/internal/domain/organization"
	"stratplan/internal/infrastructure/persistence/mappers"
	"stratplan/internal/infrastructure/persistence/models"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
)

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db, mapper: mappers.NewOrganizationMapper()}
}

func (r *OrganizationRepository) Create(ctx context.Context, o *organization.Organization) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return o.SetID(model.ID)
}

func (r *OrganizationRepository) Update(ctx context.Context, o *organization.Organization) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.OrganizationModel{}).Where("id = ?", model.ID).
		Select("name", "type", "parent_id", "vision", "mission", "core_values", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	return nil
}

// Delete removes the organization with its memberships and plans. Child
// organizations become roots.
func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		var model models.OrganizationModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("organization not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to get organization: %w", err)
		}

		if err := tx.Model(&models.OrganizationModel{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach child organizations: %w", err)
		}

		membershipIDs, err := pluckIDs(tx, &models.MembershipModel{}, "organization_id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to list memberships: %w", err)
		}
		if err := detachEvaluators(tx, membershipIDs); err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.MembershipModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}

		if err := cascadePlans(tx, "organization_id = ?", id); err != nil {
			return err
		}

		if err := tx.Delete(&models.OrganizationModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}
		return nil
	})
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := findOne(ctx, r.db, &model, id, "organization"); err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*organization.Organization, error) {
	var list []*models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return r.toDomainList(list)
}

func (r *OrganizationRepository) ListByIDs(ctx context.Context, ids []uint) ([]*organization.Organization, error) {
	if len(ids) == 0 {
		return []*organization.Organization{}, nil
	}
	var list []*models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return r.toDomainList(list)
}

// PathToRoot walks parent links one row at a time. A cycle in stored data
// stops the walk instead of looping.
func (r *OrganizationRepository) PathToRoot(ctx context.Context, id uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var path []uint
	seen := make(map[uint]bool)

	current := &id
	for current != nil && !seen[*current] {
		var rows []struct {
			ID       uint
			ParentID *uint
		}
		if err := tx.Model(&models.OrganizationModel{}).Select("id", "parent_id").Where("id = ?", *current).Limit(1).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to walk organization ancestors: %w", err)
		}
		if len(rows) == 0 {
			if len(path) == 0 {
				return nil, errors.NewNotFoundError("organization not found", fmt.Sprintf("id=%d", id))
			}
			break
		}
		row := rows[0]
		seen[row.ID] = true
		path = append(path, row.ID)
		current = row.ParentID
	}
	return path, nil
}

func (r *OrganizationRepository) toDomainList(list []*models.OrganizationModel) ([]*organization.Organization, error) {
	out := make([]*organization.Organization, 0, len(list))
	for _, model := range list {
		o, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
