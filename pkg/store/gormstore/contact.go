package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/sarefinport/sarefinport/pkg/store"
)

type contactStore struct{ s *Store }

func (c *contactStore) GetInfo(ctx context.Context) (*store.ContactInfo, error) {
	db, cancel := c.s.conn(ctx)
	defer cancel()

	var info store.ContactInfo
	if err := db.First(&info, "id = ?", store.ContactInfoID).Error; err != nil {
		return nil, classify(err)
	}
	return &info, nil
}

func (c *contactStore) UpsertInfo(ctx context.Context, f store.ContactInfoFields) (*store.ContactInfo, error) {
	var info store.ContactInfo
	err := c.s.transaction(ctx, func(tx *gorm.DB) error {
		if err := upsertSingleton(tx, &store.ContactInfo{ID: store.ContactInfoID}, f.Updates()); err != nil {
			return err
		}
		return tx.First(&info, "id = ?", store.ContactInfoID).Error
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *contactStore) ListMessages(ctx context.Context) ([]*store.ContactMessage, error) {
	db, cancel := c.s.conn(ctx)
	defer cancel()

	msgs := []*store.ContactMessage{}
	if err := db.Order("created_at DESC").Order("id DESC").Find(&msgs).Error; err != nil {
		return nil, classify(err)
	}
	return msgs, nil
}

func (c *contactStore) CreateMessage(ctx context.Context, f store.ContactMessageFields) (*store.ContactMessage, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	msg := &store.ContactMessage{
		ID:        c.s.opts.newID(),
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Phone:     strings.TrimSpace(f.Phone),
		Subject:   strings.TrimSpace(f.Subject),
		Message:   f.Message,
	}

	db, cancel := c.s.conn(ctx)
	defer cancel()
	if err := db.Create(msg).Error; err != nil {
		return nil, classify(err)
	}
	return msg, nil
}

func (c *contactStore) DeleteMessage(ctx context.Context, id string) error {
	return deleteByID(ctx, c.s, &store.ContactMessage{}, id)
}

// deleteByID removes one row and reports store.ErrNotFound when none matched.
func deleteByID(ctx context.Context, s *Store, model any, id string) error {
	db, cancel := s.conn(ctx)
	defer cancel()

	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
