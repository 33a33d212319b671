// Package seed populates an empty store with default content on startup.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/ethanbaker/funfacts/internal/stores/fact"
	"github.com/ethanbaker/funfacts/internal/stores/setting"
	"github.com/ethanbaker/funfacts/pkg/password"
	"gopkg.in/yaml.v3"
)

// DefaultAdminPassword is the password stored on first startup. Operators are
// expected to change it from the admin panel.
const DefaultAdminPassword = "admin"

//go:embed seeds.yaml
var seedsRaw []byte

type seedData struct {
	Facts   []string `yaml:"facts"`
	Loading []string `yaml:"loading"`
}

// Defaults returns the built-in fact and loading-line lists
func Defaults() ([]string, []string, error) {
	var data seedData
	if err := yaml.Unmarshal(seedsRaw, &data); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	return data.Facts, data.Loading, nil
}

// Run seeds default facts, loading lines, and the admin password hash when
// each is absent. Every check is independent, so running it again against a
// populated store inserts nothing.
func Run(ctx context.Context, facts fact.Store, settings setting.Store) error {
	factTexts, loadingTexts, err := Defaults()
	if err != nil {
		return err
	}

	// Seed: facts
	if err := seedKind(ctx, facts, fact.KindFact, factTexts); err != nil {
		return err
	}

	// Seed: loading lines
	if err := seedKind(ctx, facts, fact.KindLoading, loadingTexts); err != nil {
		return err
	}

	// Default admin password
	_, err = settings.Get(ctx, setting.KeyAdminPasswordHash)
	if errors.Is(err, setting.ErrNotFound) {
		hash, err := password.Hash(DefaultAdminPassword)
		if err != nil {
			return err
		}
		if err := settings.Set(ctx, setting.KeyAdminPasswordHash, hash); err != nil {
			return err
		}
		log.Printf("[SEED]: Stored default admin password hash")
	} else if err != nil {
		return fmt.Errorf("failed to check admin password hash: %w", err)
	}

	return nil
}

// seedKind inserts the given texts when no row of that kind exists yet
func seedKind(ctx context.Context, facts fact.Store, kind string, texts []string) error {
	count, err := facts.CountByKind(ctx, kind)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, text := range texts {
		if _, err := facts.Create(ctx, kind, text); err != nil {
			return err
		}
	}

	log.Printf("[SEED]: Inserted %d default %s rows", len(texts), kind)
	return nil
}
