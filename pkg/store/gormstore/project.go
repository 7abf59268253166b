package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/sarefinport/sarefinport/pkg/store"
)

type projectStore struct{ s *Store }

func (p *projectStore) List(ctx context.Context) ([]*store.Project, error) {
	db, cancel := p.s.conn(ctx)
	defer cancel()

	out := []*store.Project{}
	if err := db.Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	for _, proj := range out {
		normalizeProject(proj)
	}
	return out, nil
}

func (p *projectStore) Get(ctx context.Context, id string) (*store.Project, error) {
	db, cancel := p.s.conn(ctx)
	defer cancel()

	var proj store.Project
	if err := db.First(&proj, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return normalizeProject(&proj), nil
}

func (p *projectStore) Create(ctx context.Context, f store.ProjectFields) (*store.Project, error) {
	if err := f.ValidateCreate(); err != nil {
		return nil, err
	}
	proj := &store.Project{
		ID:       p.s.opts.newID(),
		Name:     strings.TrimSpace(*f.Name),
		TechUsed: store.NormalizeTech(nil),
	}
	if f.Stack != nil {
		proj.Stack = *f.Stack
	}
	if f.TechUsed != nil {
		proj.TechUsed = store.NormalizeTech(*f.TechUsed)
	}
	if f.LiveURL != nil {
		proj.LiveURL = *f.LiveURL
	}
	if f.GithubURL != nil {
		proj.GithubURL = *f.GithubURL
	}

	db, cancel := p.s.conn(ctx)
	defer cancel()
	if err := db.Create(proj).Error; err != nil {
		return nil, classify(err)
	}
	return proj, nil
}

func (p *projectStore) Update(ctx context.Context, id string, f store.ProjectFields) (*store.Project, error) {
	if err := f.ValidateUpdate(); err != nil {
		return nil, err
	}
	var proj store.Project
	err := p.s.transaction(ctx, func(tx *gorm.DB) error {
		return updateAndReload(tx, &proj, id, f.Updates())
	})
	if err != nil {
		return nil, err
	}
	return normalizeProject(&proj), nil
}

func (p *projectStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, p.s, &store.Project{}, id)
}

func normalizeProject(p *store.Project) *store.Project {
	if p.TechUsed == nil {
		p.TechUsed = store.NormalizeTech(nil)
	}
	return p
}
