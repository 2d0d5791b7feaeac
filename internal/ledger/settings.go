package ledger

import (
	"strings"

	"github.com/samiti-app/backend/internal/models"
)

// Identity is the subset of the settings the identity form can change.
type Identity struct {
	ClubName        string `json:"clubName"`
	EstablishedYear int    `json:"establishedYear"`
	Logo            string `json:"logo"`
}

// UpdateIdentity replaces the organization identity within the settings.
// Password and rules are not touched.
func (l *Ledger) UpdateIdentity(identity Identity) (models.AppSettings, error) {
	if strings.TrimSpace(identity.ClubName) == "" {
		return models.AppSettings{}, models.ErrNameEmpty
	}

	var settings models.AppSettings

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Settings.ClubName = identity.ClubName
		s.Settings.EstablishedYear = identity.EstablishedYear
		s.Settings.Logo = identity.Logo

		settings = s.Settings
		return s, nil
	})
	if err != nil {
		return models.AppSettings{}, err
	}

	return settings, nil
}

// SetAdminPassword replaces the shared admin secret.
func (l *Ledger) SetAdminPassword(password string) error {
	if password == "" {
		return models.ErrPasswordEmpty
	}

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Settings.AdminPassword = password
		return s, nil
	})

	return err
}

// UpdateBankDetails replaces the bank record.
func (l *Ledger) UpdateBankDetails(details models.BankDetails) (models.BankDetails, error) {
	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.BankDetails = details
		return s, nil
	})
	if err != nil {
		return models.BankDetails{}, err
	}

	return details, nil
}
