package models

import (
	"time"

	"gorm.io/datatypes"

	"stratplan/internal/shared/constants"
)

// OrganizationModel is one node of the organization forest. ParentID is
// null for roots.
type OrganizationModel struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null;size:255"`
	Type       string `gorm:"not null;size:20;index:idx_organization_type"`
	ParentID   *uint  `gorm:"index:idx_organization_parent"`
	Vision     string `gorm:"type:text"`
	Mission    string `gorm:"type:text"`
	CoreValues datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}

// MembershipModel grants one role in one organization to one user.
type MembershipModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;uniqueIndex:uk_membership,priority:1;index:idx_membership_user"`
	OrganizationID uint   `gorm:"not null;uniqueIndex:uk_membership,priority:2;index:idx_membership_organization"`
	Role           string `gorm:"not null;size:20;uniqueIndex:uk_membership,priority:3"`
	CreatedAt      time.Time
}

func (MembershipModel) TableName() string {
	return constants.TableOrganizationUsers
}
