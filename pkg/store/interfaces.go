package store

import "context"

// Store is the persistence gateway used by the HTTP layer.
type Store interface {
	About() AboutStore
	Contact() ContactStore
	Education() EducationStore
	Projects() ProjectStore
	Skills() SkillStore

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}

// AboutStore handles the AboutMe singleton.
type AboutStore interface {
	// Get returns the singleton with its skills and their items.
	Get(ctx context.Context) (*AboutMe, error)

	// Upsert creates the singleton if missing, then applies the supplied fields.
	Upsert(ctx context.Context, f AboutFields) (*AboutMe, error)
}

// ContactStore handles the ContactInfo singleton and contact messages.
type ContactStore interface {
	GetInfo(ctx context.Context) (*ContactInfo, error)
	UpsertInfo(ctx context.Context, f ContactInfoFields) (*ContactInfo, error)

	// ListMessages returns messages newest first.
	ListMessages(ctx context.Context) ([]*ContactMessage, error)
	CreateMessage(ctx context.Context, f ContactMessageFields) (*ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

// EducationStore handles education entries.
type EducationStore interface {
	// List returns entries by start year, most recent first.
	List(ctx context.Context) ([]*Education, error)
	Get(ctx context.Context, id string) (*Education, error)
	Create(ctx context.Context, f EducationFields) (*Education, error)
	Update(ctx context.Context, id string, f EducationFields) (*Education, error)
	Delete(ctx context.Context, id string) error
}

// ProjectStore handles projects.
type ProjectStore interface {
	// List returns projects newest first.
	List(ctx context.Context) ([]*Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, f ProjectFields) (*Project, error)
	Update(ctx context.Context, id string, f ProjectFields) (*Project, error)
	Delete(ctx context.Context, id string) error
}

// SkillStore handles skills and their items. Every returned Skill has its
// items loaded in position order.
type SkillStore interface {
	// List returns skills oldest first.
	List(ctx context.Context) ([]*Skill, error)
	Get(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, f SkillFields) (*Skill, error)

	// Update applies the supplied fields and, when f.Items is set, replaces
	// the item set in the same transaction.
	Update(ctx context.Context, id string, f SkillFields) (*Skill, error)

	// Delete removes the skill and its items.
	Delete(ctx context.Context, id string) error
}
