package models

import (
	"time"

	"github.com/google/uuid"
)

// Rule is a single organizational rule shown to members.
type Rule struct {
	ID          uuid.UUID `json:"id" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`
	Text        string    `json:"text" example:"All members must pay chanda before the puja week."`
	LastUpdated time.Time `json:"lastUpdated" example:"2024-01-02T12:00:00Z"`
}

// AppSettings holds the identity and configuration of the organization.
//
// AdminPassword is a plaintext shared secret. It gates the UI only and is
// explicitly not a security control.
type AppSettings struct {
	ClubName        string `json:"clubName" example:"Annapurna Boys Saraswati Puja Committee"`
	EstablishedYear int    `json:"establishedYear" example:"2023"`
	Logo            string `json:"logo,omitempty"` // Base64 image payload
	AdminPassword   string `json:"adminPassword,omitempty"`
	Rules           []Rule `json:"rules"`
}

// BankDetails is the single bank account record of the organization.
type BankDetails struct {
	HolderName    string `json:"holderName" example:"Annapurna Boys Club"`
	AccountNumber string `json:"accountNumber" example:"1234567890"`
	IFSC          string `json:"ifsc" example:"SBIN0001234"`
	Branch        string `json:"branch" example:"Kolkata Main"`
	QRCode        string `json:"qrCode,omitempty"` // Base64 image payload
}
