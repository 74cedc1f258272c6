package dto

import (
	"time"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/user"
)

type UserDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

type MembershipDTO struct {
	ID             uint   `json:"id"`
	OrganizationID uint   `json:"organization"`
	Role           string `json:"role"`
}

type LoginDTO struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	User        *UserDTO `json:"user"`
}

// SessionDTO answers "who am I": the caller and every membership it holds.
type SessionDTO struct {
	IsAuthenticated bool             `json:"is_authenticated"`
	User            *UserDTO         `json:"user"`
	Memberships     []*MembershipDTO `json:"memberships"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		CreatedAt:   u.CreatedAt(),
	}
}

func ToMembershipDTOs(memberships []access.Membership) []*MembershipDTO {
	out := make([]*MembershipDTO, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, &MembershipDTO{
			ID:             m.ID,
			OrganizationID: m.OrganizationID,
			Role:           m.Role.String(),
		})
	}
	return out
}
