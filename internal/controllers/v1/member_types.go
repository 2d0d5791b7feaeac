package v1

import (
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/models"
)

// MemberEditable represents all user configurable parameters of a member.
type MemberEditable struct {
	FullName     string            `json:"fullName" example:"Saikat Saha"`
	Phone        string            `json:"phone" example:"+91 98300 00000"`
	Address      string            `json:"address" example:"12 Lake Road, Kolkata"`
	Role         models.MemberRole `json:"role" example:"Member" default:"Member"`
	SpouseName   string            `json:"spouseName" example:"Mita Saha"`
	ProfilePhoto string            `json:"profilePhoto"` // Base64 image payload
	SpousePhoto  string            `json:"spousePhoto"`  // Base64 image payload
	CreditScore  int               `json:"creditScore" example:"100" default:"100"`
}

func (editable MemberEditable) model() models.Member {
	return models.Member{
		FullName:     editable.FullName,
		Phone:        editable.Phone,
		Address:      editable.Address,
		Role:         editable.Role,
		SpouseName:   editable.SpouseName,
		ProfilePhoto: editable.ProfilePhoto,
		SpousePhoto:  editable.SpousePhoto,
		CreditScore:  editable.CreditScore,
	}
}

type MemberResponse struct {
	Data  *models.Member `json:"data"`
	Error *string        `json:"error"`
}

type MemberListResponse struct {
	Data  []models.Member `json:"data"`
	Error *string         `json:"error"`
}

// Contributor is a member's rank entry in the top contributor list.
type Contributor struct {
	Member models.Member   `json:"member"`
	Amount decimal.Decimal `json:"amount" example:"500"` // Contribution in the requested year
}

type ContributorListResponse struct {
	Data  []Contributor `json:"data"`
	Error *string       `json:"error"`
}
