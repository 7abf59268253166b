package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sarefinport/sarefinport/pkg/store"
)

type skillStore struct{ s *Store }

func (k *skillStore) List(ctx context.Context) ([]*store.Skill, error) {
	db, cancel := k.s.conn(ctx)
	defer cancel()

	out := []*store.Skill{}
	err := db.Preload("Items", orderItems).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, classify(err)
	}
	for _, sk := range out {
		normalizeSkill(sk)
	}
	return out, nil
}

func (k *skillStore) Get(ctx context.Context, id string) (*store.Skill, error) {
	db, cancel := k.s.conn(ctx)
	defer cancel()

	var sk store.Skill
	if err := loadSkill(db, &sk, id); err != nil {
		return nil, classify(err)
	}
	return &sk, nil
}

func (k *skillStore) Create(ctx context.Context, f store.SkillFields) (*store.Skill, error) {
	if err := f.ValidateCreate(); err != nil {
		return nil, err
	}
	sk := store.Skill{
		ID:        k.s.opts.newID(),
		Title:     strings.TrimSpace(*f.Title),
		AboutMeID: f.AboutMeIDPtr(),
	}
	if f.Description != nil {
		sk.Description = *f.Description
	}
	items := f.SkillItems(sk.ID, k.s.opts.newID)

	var out store.Skill
	err := k.s.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&sk).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return loadSkill(tx, &out, sk.ID)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (k *skillStore) Update(ctx context.Context, id string, f store.SkillFields) (*store.Skill, error) {
	if err := f.ValidateUpdate(); err != nil {
		return nil, err
	}

	var out store.Skill
	err := k.s.transaction(ctx, func(tx *gorm.DB) error {
		var sk store.Skill
		if err := tx.First(&sk, "id = ?", id).Error; err != nil {
			return err
		}
		if updates := f.Updates(); len(updates) > 0 {
			if err := tx.Model(&sk).Omit(clause.Associations).Updates(updates).Error; err != nil {
				return err
			}
		}
		if f.Items != nil {
			if err := tx.Where("skill_id = ?", id).Delete(&store.SkillItem{}).Error; err != nil {
				return err
			}
			if items := f.SkillItems(id, k.s.opts.newID); len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}
		return loadSkill(tx, &out, id)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (k *skillStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, k.s, &store.Skill{}, id)
}

func loadSkill(db *gorm.DB, dst *store.Skill, id string) error {
	if err := db.Preload("Items", orderItems).First(dst, "id = ?", id).Error; err != nil {
		return err
	}
	normalizeSkill(dst)
	return nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("id ASC")
}

func normalizeSkill(sk *store.Skill) *store.Skill {
	if sk.Items == nil {
		sk.Items = []*store.SkillItem{}
	}
	return sk
}
