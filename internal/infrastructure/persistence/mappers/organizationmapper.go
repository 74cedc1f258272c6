package mappers

import (
	"fmt"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/infrastructure/persistence/models"
)

// OrganizationMapper converts organizations and memberships.
type OrganizationMapper interface {
	ToModel(o *organization.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*organization.Organization, error)
	MembershipToModel(m *access.Membership) *models.MembershipModel
	MembershipToDomain(model *models.MembershipModel) access.Membership
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(o *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:         o.ID(),
		Name:       o.Name(),
		Type:       o.Type().String(),
		ParentID:   o.ParentID(),
		Vision:     o.Vision(),
		Mission:    o.Mission(),
		CoreValues: stringsToJSON(o.CoreValues()),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	coreValues, err := stringsFromJSON(model.CoreValues)
	if err != nil {
		return nil, fmt.Errorf("failed to decode core values of organization %d: %w", model.ID, err)
	}
	return organization.ReconstructOrganization(
		model.ID,
		model.Name,
		organization.Type(model.Type),
		model.ParentID,
		model.Vision,
		model.Mission,
		coreValues,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *OrganizationMapperImpl) MembershipToModel(ms *access.Membership) *models.MembershipModel {
	return &models.MembershipModel{
		ID:             ms.ID,
		UserID:         ms.UserID,
		OrganizationID: ms.OrganizationID,
		Role:           ms.Role.String(),
		CreatedAt:      ms.CreatedAt,
	}
}

func (m *OrganizationMapperImpl) MembershipToDomain(model *models.MembershipModel) access.Membership {
	return access.Membership{
		ID:             model.ID,
		UserID:         model.UserID,
		OrganizationID: model.OrganizationID,
		Role:           access.Role(model.Role),
		CreatedAt:      model.CreatedAt,
	}
}
