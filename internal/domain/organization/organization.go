// Package organization models the organizational forest that owns plans
// and memberships.
package organization

import (
	"fmt"
	"strings"
	"time"

	"stratplan/internal/shared/biztime"
)

type Type string

const (
	TypeMinister       Type = "MINISTER"
	TypeStateMinister  Type = "STATE_MINISTER"
	TypeChiefExecutive Type = "CHIEF_EXECUTIVE"
	TypeLeadExecutive  Type = "LEAD_EXECUTIVE"
	TypeExecutive      Type = "EXECUTIVE"
	TypeTeamLead       Type = "TEAM_LEAD"
	TypeDesk           Type = "DESK"
)

var typeRanks = map[Type]int{
	TypeMinister:       1,
	TypeStateMinister:  2,
	TypeChiefExecutive: 3,
	TypeLeadExecutive:  4,
	TypeExecutive:      5,
	TypeTeamLead:       6,
	TypeDesk:           7,
}

func (t Type) IsValid() bool {
	_, ok := typeRanks[t]
	return ok
}

// Rank orders types from the minister (1) down to the desk (7).
func (t Type) Rank() int {
	return typeRanks[t]
}

func (t Type) String() string {
	return string(t)
}

type Organization struct {
	id         uint
	name       string
	orgType    Type
	parentID   *uint
	vision     string
	mission    string
	coreValues []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewOrganization(name string, orgType Type, parentID *uint) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("organization name exceeds maximum length of 255 characters")
	}
	if !orgType.IsValid() {
		return nil, fmt.Errorf("invalid organization type %q", orgType)
	}
	if parentID != nil && *parentID == 0 {
		parentID = nil
	}
	now := biztime.NowUTC()
	return &Organization{
		name:       name,
		orgType:    orgType,
		parentID:   parentID,
		coreValues: []string{},
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructOrganization(
	id uint,
	name string,
	orgType Type,
	parentID *uint,
	vision, mission string,
	coreValues []string,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if coreValues == nil {
		coreValues = []string{}
	}
	return &Organization{
		id:         id,
		name:       name,
		orgType:    orgType,
		parentID:   parentID,
		vision:     vision,
		mission:    mission,
		coreValues: coreValues,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ChangeParent re-parents the organization. parentPath lists the new
// parent and its ancestors up to the root; the organization itself must
// not appear in it. A nil parentID makes it a root.
func (o *Organization) ChangeParent(parentID *uint, parentPath []uint) error {
	if parentID == nil || *parentID == 0 {
		o.parentID = nil
		o.updatedAt = biztime.NowUTC()
		return nil
	}
	if *parentID == o.id {
		return fmt.Errorf("an organization cannot be its own parent")
	}
	for _, id := range parentPath {
		if id == o.id {
			return fmt.Errorf("organization %d is a descendant of %d and cannot become its parent", *parentID, o.id)
		}
	}
	pid := *parentID
	o.parentID = &pid
	o.updatedAt = biztime.NowUTC()
	return nil
}

// Profile is a partial update of the descriptive fields. Nil fields are kept.
type Profile struct {
	Name       *string
	Vision     *string
	Mission    *string
	CoreValues []string
}

func (o *Organization) UpdateProfile(p Profile) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("organization name is required")
		}
		o.name = name
	}
	if p.Vision != nil {
		o.vision = *p.Vision
	}
	if p.Mission != nil {
		o.mission = *p.Mission
	}
	if p.CoreValues != nil {
		values := make([]string, 0, len(p.CoreValues))
		for _, v := range p.CoreValues {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		o.coreValues = values
	}
	o.updatedAt = biztime.NowUTC()
	return nil
}

func (o *Organization) ID() uint             { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) Type() Type           { return o.orgType }
func (o *Organization) ParentID() *uint      { return o.parentID }
func (o *Organization) Vision() string       { return o.vision }
func (o *Organization) Mission() string      { return o.mission }
func (o *Organization) CoreValues() []string { return o.coreValues }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}
