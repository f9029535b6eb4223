package model

import "github.com/cloudbridge-lab/minwon/pkg/domain/types"

// Member is one registered member record from the backend.
type Member struct {
	MemberID types.MemberID `json:"memberId"`
	Name     string         `json:"name"`
	Phone    string         `json:"phone,omitempty" masq:"secret"`
	Role     string         `json:"role,omitempty"`
}
