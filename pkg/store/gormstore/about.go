package gormstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sarefinport/sarefinport/pkg/store"
)

type aboutStore struct{ s *Store }

func (a *aboutStore) Get(ctx context.Context) (*store.AboutMe, error) {
	db, cancel := a.s.conn(ctx)
	defer cancel()

	var about store.AboutMe
	if err := preloadSkills(db).First(&about, "id = ?", store.AboutMeID).Error; err != nil {
		return nil, classify(err)
	}
	return normalizeAbout(&about), nil
}

func (a *aboutStore) Upsert(ctx context.Context, f store.AboutFields) (*store.AboutMe, error) {
	var about store.AboutMe
	err := a.s.transaction(ctx, func(tx *gorm.DB) error {
		if err := upsertSingleton(tx, &store.AboutMe{ID: store.AboutMeID}, f.Updates()); err != nil {
			return err
		}
		return preloadSkills(tx).First(&about, "id = ?", store.AboutMeID).Error
	})
	if err != nil {
		return nil, err
	}
	return normalizeAbout(&about), nil
}

// upsertSingleton inserts row if its key is free, then merges updates into
// the stored row. Repeated calls never create a second row.
func upsertSingleton(tx *gorm.DB, row any, updates map[string]any) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(row).Error
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return tx.Model(row).Updates(updates).Error
}

func preloadSkills(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("id ASC")
		}).
		Preload("Skills.Items", orderItems)
}

func normalizeAbout(a *store.AboutMe) *store.AboutMe {
	if a.Skills == nil {
		a.Skills = []*store.Skill{}
	}
	for _, sk := range a.Skills {
		normalizeSkill(sk)
	}
	return a
}
