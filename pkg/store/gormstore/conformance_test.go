package gormstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarefinport/sarefinport/pkg/store"
)

func ptr[T any](v T) *T { return &v }

func projectFields(name string, tech ...string) store.ProjectFields {
	f := store.ProjectFields{Name: ptr(name)}
	if tech != nil {
		f.TechUsed = &tech
	}
	return f
}

func countRows(t *testing.T, s *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

// runConformance exercises every store operation against a fresh store per
// subtest.
func runConformance(t *testing.T, newStore func(t *testing.T) *Store) {
	t.Run("about singleton", func(t *testing.T) { testAboutSingleton(t, newStore(t)) })
	t.Run("contact info singleton", func(t *testing.T) { testContactInfo(t, newStore(t)) })
	t.Run("contact messages", func(t *testing.T) { testContactMessages(t, newStore(t)) })
	t.Run("education", func(t *testing.T) { testEducation(t, newStore(t)) })
	t.Run("projects", func(t *testing.T) { testProjects(t, newStore(t)) })
	t.Run("skills", func(t *testing.T) { testSkills(t, newStore(t)) })
	t.Run("skill owner", func(t *testing.T) { testSkillOwner(t, newStore(t)) })
}

func testAboutSingleton(t *testing.T, s *Store) {
	ctx := context.Background()
	about := s.About()

	_, err := about.Get(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := about.Upsert(ctx, store.AboutFields{WhoAmI: ptr("Backend developer")})
	require.NoError(t, err)
	assert.Equal(t, store.AboutMeID, got.ID)
	assert.Equal(t, "Backend developer", got.WhoAmI)
	assert.NotNil(t, got.Skills)

	got, err = about.Upsert(ctx, store.AboutFields{Description: ptr("Builds APIs"), YearsExp: ptr("5+")})
	require.NoError(t, err)
	assert.Equal(t, "Backend developer", got.WhoAmI, "omitted fields are kept")
	assert.Equal(t, "Builds APIs", got.Description)
	assert.Equal(t, "5+", got.YearsExp)

	for range 5 {
		_, err = about.Upsert(ctx, store.AboutFields{})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, countRows(t, s, &store.AboutMe{}))

	got, err = about.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Builds APIs", got.Description)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func testContactInfo(t *testing.T, s *Store) {
	ctx := context.Background()
	contact := s.Contact()

	_, err := contact.GetInfo(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = contact.UpsertInfo(ctx, store.ContactInfoFields{Email: ptr("me@example.com")})
	require.NoError(t, err)
	info, err := contact.UpsertInfo(ctx, store.ContactInfoFields{Location: ptr("Lisbon")})
	require.NoError(t, err)

	assert.Equal(t, store.ContactInfoID, info.ID)
	assert.Equal(t, "me@example.com", info.Email)
	assert.Equal(t, "Lisbon", info.Location)
	assert.EqualValues(t, 1, countRows(t, s, &store.ContactInfo{}))

	got, err := contact.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, info.Email, got.Email)
}

func testContactMessages(t *testing.T, s *Store) {
	ctx := context.Background()
	contact := s.Contact()

	msgs, err := contact.ListMessages(ctx)
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)

	var ids []string
	for _, subject := range []string{"first", "second", "third"} {
		m, err := contact.CreateMessage(ctx, store.ContactMessageFields{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			Subject: subject, Message: "Hello",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.False(t, m.CreatedAt.IsZero())
		ids = append(ids, m.ID)
	}

	msgs, err = contact.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{msgs[0].Subject, msgs[1].Subject, msgs[2].Subject})

	_, err = contact.CreateMessage(ctx, store.ContactMessageFields{FirstName: "No", LastName: "Email", Subject: "x", Message: "y"})
	assert.ErrorIs(t, err, store.ErrValidation)

	require.NoError(t, contact.DeleteMessage(ctx, ids[1]))
	assert.ErrorIs(t, contact.DeleteMessage(ctx, ids[1]), store.ErrNotFound)

	msgs, err = contact.ListMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func testEducation(t *testing.T, s *Store) {
	ctx := context.Background()
	edu := s.Education()

	_, err := edu.Create(ctx, store.EducationFields{Degree: ptr("BSc")})
	require.ErrorIs(t, err, store.ErrValidation)

	mk := func(degree string, start int) *store.Education {
		e, err := edu.Create(ctx, store.EducationFields{
			Degree: ptr(degree), Institution: ptr("Uni"), StartYear: ptr(start),
			EndYear: store.NullableOf(start + 3),
		})
		require.NoError(t, err)
		return e
	}
	bsc := mk("BSc", 2012)
	msc := mk("MSc", 2016)
	hs := mk("High school", 2008)

	list, err := edu.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{msc.ID, bsc.ID, hs.ID}, []string{list[0].ID, list[1].ID, list[2].ID})

	updated, err := edu.Update(ctx, bsc.ID, store.EducationFields{
		Description: ptr("Computer science"),
		EndYear:     store.Nullable[int]{Set: true, Null: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "BSc", updated.Degree)
	assert.Equal(t, "Computer science", updated.Description)
	assert.Nil(t, updated.EndYear)

	unchanged, err := edu.Update(ctx, msc.ID, store.EducationFields{})
	require.NoError(t, err)
	require.NotNil(t, unchanged.EndYear)
	assert.Equal(t, 2019, *unchanged.EndYear)

	_, err = edu.Update(ctx, "missing", store.EducationFields{Degree: ptr("PhD")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, edu.Delete(ctx, hs.ID))
	_, err = edu.Get(ctx, hs.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, edu.Delete(ctx, hs.ID), store.ErrNotFound)
}

func testProjects(t *testing.T, s *Store) {
	ctx := context.Background()
	projects := s.Projects()

	_, err := projects.Create(ctx, store.ProjectFields{Stack: ptr("Go")})
	require.ErrorIs(t, err, store.ErrValidation)

	first, err := projects.Create(ctx, projectFields("First", "Go", "SQL"))
	require.NoError(t, err)
	second, err := projects.Create(ctx, projectFields("Second"))
	require.NoError(t, err)
	assert.NotNil(t, second.TechUsed)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	got, err := projects.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, []string(got.TechUsed))

	updated, err := projects.Update(ctx, first.ID, store.ProjectFields{
		LiveURL:  ptr("https://example.com"),
		TechUsed: &[]string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "First", updated.Name)
	assert.Equal(t, "https://example.com", updated.LiveURL)
	assert.Equal(t, []string{"Go"}, []string(updated.TechUsed))

	_, err = projects.Update(ctx, first.ID, store.ProjectFields{Name: ptr("")})
	assert.ErrorIs(t, err, store.ErrValidation)

	assert.ErrorIs(t, projects.Delete(ctx, "does-not-exist"), store.ErrNotFound)
	require.NoError(t, projects.Delete(ctx, first.ID))
	_, err = projects.Get(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testSkills(t *testing.T, s *Store) {
	ctx := context.Background()
	skills := s.Skills()

	_, err := skills.Create(ctx, store.SkillFields{})
	require.ErrorIs(t, err, store.ErrValidation)

	backend, err := skills.Create(ctx, store.SkillFields{
		Title: ptr("Backend"),
		Items: &[]store.SkillItemInput{
			{Name: "Postgres", Position: ptr(2)},
			{Name: "Go", Icon: "go.svg", Position: ptr(1)},
		},
	})
	require.NoError(t, err)
	require.Len(t, backend.Items, 2)
	assert.Equal(t, "Go", backend.Items[0].Name)
	assert.Equal(t, "Postgres", backend.Items[1].Name)

	frontend, err := skills.Create(ctx, store.SkillFields{Title: ptr("Frontend")})
	require.NoError(t, err)
	assert.NotNil(t, frontend.Items)

	list, err := skills.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, backend.ID, list[0].ID)
	assert.Len(t, list[0].Items, 2)

	// Without skillsArray the items are untouched.
	renamed, err := skills.Update(ctx, backend.ID, store.SkillFields{Title: ptr("Server side")})
	require.NoError(t, err)
	assert.Equal(t, "Server side", renamed.Title)
	assert.Len(t, renamed.Items, 2)

	replaced, err := skills.Update(ctx, backend.ID, store.SkillFields{
		Items: &[]store.SkillItemInput{{Name: "Rust"}, {Name: "Kafka"}, {Name: "Redis"}},
	})
	require.NoError(t, err)
	require.Len(t, replaced.Items, 3)
	assert.Equal(t, []string{"Rust", "Kafka", "Redis"},
		[]string{replaced.Items[0].Name, replaced.Items[1].Name, replaced.Items[2].Name})
	assert.EqualValues(t, 3, countRows(t, s, &store.SkillItem{}))

	cleared, err := skills.Update(ctx, backend.ID, store.SkillFields{Items: &[]store.SkillItemInput{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)

	_, err = skills.Update(ctx, backend.ID, store.SkillFields{Items: &[]store.SkillItemInput{{Name: "Go"}}})
	require.NoError(t, err)

	_, err = skills.Update(ctx, "missing", store.SkillFields{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, skills.Delete(ctx, backend.ID))
	_, err = skills.Get(ctx, backend.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, s, &store.SkillItem{}), "items cascade with their skill")
	assert.ErrorIs(t, skills.Delete(ctx, backend.ID), store.ErrNotFound)
}

func testSkillOwner(t *testing.T, s *Store) {
	ctx := context.Background()

	_, err := s.Skills().Create(ctx, store.SkillFields{
		Title:     ptr("Orphan"),
		AboutMeID: store.NullableOf("no-such-about"),
	})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = s.About().Upsert(ctx, store.AboutFields{WhoAmI: ptr("Me")})
	require.NoError(t, err)

	owned, err := s.Skills().Create(ctx, store.SkillFields{
		Title:     ptr("Cloud"),
		AboutMeID: store.NullableOf(store.AboutMeID),
		Items:     &[]store.SkillItemInput{{Name: "AWS"}},
	})
	require.NoError(t, err)
	require.NotNil(t, owned.AboutMeID)

	_, err = s.Skills().Create(ctx, store.SkillFields{Title: ptr("Unlinked")})
	require.NoError(t, err)

	about, err := s.About().Get(ctx)
	require.NoError(t, err)
	require.Len(t, about.Skills, 1)
	assert.Equal(t, "Cloud", about.Skills[0].Title)
	require.Len(t, about.Skills[0].Items, 1)
	assert.Equal(t, "AWS", about.Skills[0].Items[0].Name)

	detached, err := s.Skills().Update(ctx, owned.ID, store.SkillFields{AboutMeID: store.Nullable[string]{Set: true, Null: true}})
	require.NoError(t, err)
	assert.Nil(t, detached.AboutMeID)
}
