package store

import (
	"time"

	"gorm.io/datatypes"
)

// Reserved singleton keys.
const (
	AboutMeID     = "default-about"
	ContactInfoID = "default-contact"
)

// AboutMe is the biography shown on the portfolio landing page.
type AboutMe struct {
	ID           string    `json:"id" gorm:"column:id;primaryKey"`
	WhoAmI       string    `json:"whoAmI" gorm:"column:who_am_i"`
	Description  string    `json:"description" gorm:"column:description"`
	ResumeURL    string    `json:"resumeUrl" gorm:"column:resume_url"`
	GithubURL    string    `json:"githubUrl" gorm:"column:github_url"`
	LinkedinURL  string    `json:"linkedinUrl" gorm:"column:linkedin_url"`
	TwitterURL   string    `json:"twitterUrl" gorm:"column:twitter_url"`
	YearsExp     string    `json:"yearsExp" gorm:"column:years_exp"`
	ProjectsDone string    `json:"projectsDone" gorm:"column:projects_done"`
	TechMastered string    `json:"techMastered" gorm:"column:tech_mastered"`
	CodeCommits  string    `json:"codeCommits" gorm:"column:code_commits"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Skills []*Skill `json:"skills" gorm:"foreignKey:AboutMeID;constraint:OnDelete:SET NULL"`
}

func (AboutMe) TableName() string { return "about_me" }

// ContactInfo holds the public contact details.
type ContactInfo struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Phone       string    `json:"phone" gorm:"column:phone"`
	Email       string    `json:"email" gorm:"column:email"`
	GithubURL   string    `json:"githubUrl" gorm:"column:github_url"`
	LinkedinURL string    `json:"linkedinUrl" gorm:"column:linkedin_url"`
	Location    string    `json:"location" gorm:"column:location"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (ContactInfo) TableName() string { return "contact_info" }

// ContactMessage is a visitor submission from the contact form.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	FirstName string    `json:"firstName" gorm:"column:first_name;not null"`
	LastName  string    `json:"lastName" gorm:"column:last_name;not null"`
	Email     string    `json:"email" gorm:"column:email;not null"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Subject   string    `json:"subject" gorm:"column:subject;not null"`
	Message   string    `json:"message" gorm:"column:message;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;index"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// Education is one entry of the education history.
type Education struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Degree      string    `json:"degree" gorm:"column:degree;not null"`
	Institution string    `json:"institution" gorm:"column:institution;not null"`
	StartYear   int       `json:"startYear" gorm:"column:start_year;not null;index"`
	EndYear     *int      `json:"endYear" gorm:"column:end_year"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Education) TableName() string { return "education" }

// Project is a portfolio project card.
type Project struct {
	ID        string                      `json:"id" gorm:"column:id;primaryKey"`
	Name      string                      `json:"name" gorm:"column:name;not null"`
	Stack     string                      `json:"stack" gorm:"column:stack"`
	TechUsed  datatypes.JSONSlice[string] `json:"techUsed" gorm:"column:tech_used"`
	LiveURL   string                      `json:"liveUrl" gorm:"column:live_url"`
	GithubURL string                      `json:"githubUrl" gorm:"column:github_url"`
	CreatedAt time.Time                   `json:"createdAt" gorm:"column:created_at;index"`
	UpdatedAt time.Time                   `json:"updatedAt" gorm:"column:updated_at"`
}

func (Project) TableName() string { return "projects" }

// Skill is a titled group of SkillItems, optionally attached to AboutMe.
type Skill struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"column:title;not null"`
	Description string    `json:"description" gorm:"column:description"`
	AboutMeID   *string   `json:"aboutMeId" gorm:"column:about_me_id;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Items []*SkillItem `json:"skillsArray" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE"`
}

func (Skill) TableName() string { return "skills" }

// SkillItem is a single technology inside a Skill.
type SkillItem struct {
	ID       string `json:"id" gorm:"column:id;primaryKey"`
	SkillID  string `json:"skillId" gorm:"column:skill_id;not null;index:idx_skill_items_order,priority:1"`
	Name     string `json:"name" gorm:"column:name;not null"`
	Icon     string `json:"icon" gorm:"column:icon"`
	Position int    `json:"position" gorm:"column:position;not null;index:idx_skill_items_order,priority:2"`
}

func (SkillItem) TableName() string { return "skill_items" }
