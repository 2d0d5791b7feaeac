package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samiti-app/backend/internal/models"
)

// AddRule appends a rule to the settings.
func (l *Ledger) AddRule(text string) (models.Rule, error) {
	if strings.TrimSpace(text) == "" {
		return models.Rule{}, models.ErrTextEmpty
	}

	rule := models.Rule{
		ID:          uuid.New(),
		Text:        text,
		LastUpdated: time.Now().In(time.UTC),
	}

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Settings.Rules = append(s.Settings.Rules, rule)
		return s, nil
	})
	if err != nil {
		return models.Rule{}, err
	}

	return rule, nil
}

// ReplaceRules replaces the whole rule list. Every rule gets a fresh ID and
// timestamp.
func (l *Ledger) ReplaceRules(texts []string) ([]models.Rule, error) {
	now := time.Now().In(time.UTC)

	rules := make([]models.Rule, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, models.ErrTextEmpty
		}

		rules = append(rules, models.Rule{ID: uuid.New(), Text: text, LastUpdated: now})
	}

	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		s.Settings.Rules = rules
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// RemoveRule deletes the rule with the given ID.
func (l *Ledger) RemoveRule(id uuid.UUID) error {
	_, err := l.store.Apply(func(s models.Snapshot) (models.Snapshot, error) {
		rules := make([]models.Rule, 0, len(s.Settings.Rules))
		for _, rule := range s.Settings.Rules {
			if rule.ID != id {
				rules = append(rules, rule)
			}
		}

		if len(rules) == len(s.Settings.Rules) {
			return models.Snapshot{}, fmt.Errorf("%w rule matching your query", models.ErrResourceNotFound)
		}

		s.Settings.Rules = rules
		return s, nil
	})

	return err
}
