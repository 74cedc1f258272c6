package dto

import (
	"time"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/user"
)

// OrganizationDTO carries vision and mission both as written and rendered
// to sanitized HTML.
type OrganizationDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ParentID    *uint     `json:"parent"`
	Vision      string    `json:"vision"`
	VisionHTML  string    `json:"vision_html"`
	Mission     string    `json:"mission"`
	MissionHTML string    `json:"mission_html"`
	CoreValues  []string  `json:"core_values"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrganizationNodeDTO struct {
	OrganizationDTO
	Children []*OrganizationNodeDTO `json:"children"`
}

// MyOrganizationDTO is an organization together with the roles the caller
// holds in it.
type MyOrganizationDTO struct {
	OrganizationDTO
	Roles []string `json:"roles"`
}

type MembershipDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user"`
	Username       string    `json:"username,omitempty"`
	DisplayName    string    `json:"display_name,omitempty"`
	OrganizationID uint      `json:"organization"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// HTMLFunc renders markdown fields; it is supplied by the caller so the DTO
// package stays free of rendering dependencies.
type HTMLFunc func(markdown string) string

func ToOrganizationDTO(o *organization.Organization, html HTMLFunc) *OrganizationDTO {
	if o == nil {
		return nil
	}
	d := &OrganizationDTO{
		ID:         o.ID(),
		Name:       o.Name(),
		Type:       o.Type().String(),
		ParentID:   o.ParentID(),
		Vision:     o.Vision(),
		Mission:    o.Mission(),
		CoreValues: o.CoreValues(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
	if html != nil {
		d.VisionHTML = html(o.Vision())
		d.MissionHTML = html(o.Mission())
	}
	return d
}

func ToOrganizationNodeDTOs(nodes []*organization.Node, html HTMLFunc) []*OrganizationNodeDTO {
	out := make([]*OrganizationNodeDTO, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &OrganizationNodeDTO{
			OrganizationDTO: *ToOrganizationDTO(n.Organization, html),
			Children:        ToOrganizationNodeDTOs(n.Children, html),
		})
	}
	return out
}

// ToMembershipDTO fills the user fields when u is known.
func ToMembershipDTO(m access.Membership, u *user.User) *MembershipDTO {
	d := &MembershipDTO{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           m.Role.String(),
		CreatedAt:      m.CreatedAt,
	}
	if u != nil {
		d.Username = u.Username()
		d.DisplayName = u.DisplayName()
	}
	return d
}
