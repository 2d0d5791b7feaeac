package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberRole is the role a member has within the organization.
type MemberRole string

const (
	MemberRoleMember    MemberRole = "Member"
	MemberRoleCommittee MemberRole = "Committee"
	MemberRoleAdmin     MemberRole = "Admin"
)

// Valid reports whether the role is one of the known roles.
func (r MemberRole) Valid() bool {
	return r == MemberRoleMember || r == MemberRoleCommittee || r == MemberRoleAdmin
}

// Member represents a registered member of the organization.
//
// Contributions maps a fiscal year label to the cumulative amount the member
// contributed in that year. It is only ever changed as a side effect of
// recording an income transaction that references the member.
type Member struct {
	ID            uuid.UUID                  `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	FullName      string                     `json:"fullName" example:"Saikat Saha"`
	Phone         string                     `json:"phone" example:"+91 98300 00000"`
	Address       string                     `json:"address" example:"12 Lake Road, Kolkata"`
	Role          MemberRole                 `json:"role" example:"Member"`
	SpouseName    string                     `json:"spouseName,omitempty"`
	ProfilePhoto  string                     `json:"profilePhoto,omitempty"` // Base64 image payload
	SpousePhoto   string                     `json:"spousePhoto,omitempty"`  // Base64 image payload
	JoinDate      time.Time                  `json:"joinDate" example:"2023-01-14T10:00:00Z"`
	CreatedAt     time.Time                  `json:"createdAt" example:"2023-01-14T10:00:00Z"`
	CreditScore   int                        `json:"creditScore" example:"100"`
	Contributions map[string]decimal.Decimal `json:"contributions"`
}

// Contribution returns the amount the member contributed in the given year.
// Years without a recorded contribution count as zero.
func (m Member) Contribution(year string) decimal.Decimal {
	if m.Contributions == nil {
		return decimal.Zero
	}

	amount, ok := m.Contributions[year]
	if !ok {
		return decimal.Zero
	}

	return amount
}
