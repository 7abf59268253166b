package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/sarefinport/sarefinport/pkg/store"
)

type educationStore struct{ s *Store }

func (e *educationStore) List(ctx context.Context) ([]*store.Education, error) {
	db, cancel := e.s.conn(ctx)
	defer cancel()

	out := []*store.Education{}
	err := db.Order("start_year DESC").Order("created_at DESC").Order("id DESC").Find(&out).Error
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (e *educationStore) Get(ctx context.Context, id string) (*store.Education, error) {
	db, cancel := e.s.conn(ctx)
	defer cancel()

	var edu store.Education
	if err := db.First(&edu, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &edu, nil
}

func (e *educationStore) Create(ctx context.Context, f store.EducationFields) (*store.Education, error) {
	if err := f.ValidateCreate(); err != nil {
		return nil, err
	}
	edu := &store.Education{
		ID:          e.s.opts.newID(),
		Degree:      strings.TrimSpace(*f.Degree),
		Institution: strings.TrimSpace(*f.Institution),
		StartYear:   *f.StartYear,
	}
	if f.EndYear.Set {
		edu.EndYear = f.EndYear.Ptr()
	}
	if f.Description != nil {
		edu.Description = *f.Description
	}

	db, cancel := e.s.conn(ctx)
	defer cancel()
	if err := db.Create(edu).Error; err != nil {
		return nil, classify(err)
	}
	return edu, nil
}

func (e *educationStore) Update(ctx context.Context, id string, f store.EducationFields) (*store.Education, error) {
	if err := f.ValidateUpdate(); err != nil {
		return nil, err
	}
	var edu store.Education
	err := e.s.transaction(ctx, func(tx *gorm.DB) error {
		return updateAndReload(tx, &edu, id, f.Updates())
	})
	if err != nil {
		return nil, err
	}
	return &edu, nil
}

func (e *educationStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, e.s, &store.Education{}, id)
}

// updateAndReload loads the row into dst, merges updates and reloads it.
// A missing row yields gorm.ErrRecordNotFound.
func updateAndReload(tx *gorm.DB, dst any, id string, updates map[string]any) error {
	if err := tx.First(dst, "id = ?", id).Error; err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	if err := tx.Model(dst).Updates(updates).Error; err != nil {
		return err
	}
	return tx.First(dst, "id = ?", id).Error
}
