package store

import (
	"strings"

	"gorm.io/datatypes"
)

// The *Fields types carry partial writes. A nil pointer or an unset Nullable
// means "leave unchanged"; Updates returns only the supplied columns.

// AboutFields is the writable subset of AboutMe.
type AboutFields struct {
	WhoAmI       *string `json:"whoAmI"`
	Description  *string `json:"description"`
	ResumeURL    *string `json:"resumeUrl"`
	GithubURL    *string `json:"githubUrl"`
	LinkedinURL  *string `json:"linkedinUrl"`
	TwitterURL   *string `json:"twitterUrl"`
	YearsExp     *string `json:"yearsExp"`
	ProjectsDone *string `json:"projectsDone"`
	TechMastered *string `json:"techMastered"`
	CodeCommits  *string `json:"codeCommits"`
}

// Updates returns the supplied fields keyed by column.
func (f AboutFields) Updates() map[string]any {
	m := map[string]any{}
	setString(m, "who_am_i", f.WhoAmI)
	setString(m, "description", f.Description)
	setString(m, "resume_url", f.ResumeURL)
	setString(m, "github_url", f.GithubURL)
	setString(m, "linkedin_url", f.LinkedinURL)
	setString(m, "twitter_url", f.TwitterURL)
	setString(m, "years_exp", f.YearsExp)
	setString(m, "projects_done", f.ProjectsDone)
	setString(m, "tech_mastered", f.TechMastered)
	setString(m, "code_commits", f.CodeCommits)
	return m
}

// ContactInfoFields is the writable subset of ContactInfo.
type ContactInfoFields struct {
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	GithubURL   *string `json:"githubUrl"`
	LinkedinURL *string `json:"linkedinUrl"`
	Location    *string `json:"location"`
}

func (f ContactInfoFields) Updates() map[string]any {
	m := map[string]any{}
	setString(m, "phone", f.Phone)
	setString(m, "email", f.Email)
	setString(m, "github_url", f.GithubURL)
	setString(m, "linkedin_url", f.LinkedinURL)
	setString(m, "location", f.Location)
	return m
}

// ContactMessageFields is a contact form submission.
type ContactMessageFields struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Validate checks that every field except phone is present.
func (f ContactMessageFields) Validate() error {
	switch {
	case blank(f.FirstName):
		return required("firstName")
	case blank(f.LastName):
		return required("lastName")
	case blank(f.Email):
		return required("email")
	case blank(f.Subject):
		return required("subject")
	case blank(f.Message):
		return required("message")
	}
	return nil
}

// EducationFields is the writable subset of Education.
type EducationFields struct {
	Degree      *string       `json:"degree"`
	Institution *string       `json:"institution"`
	StartYear   *int          `json:"startYear"`
	EndYear     Nullable[int] `json:"endYear"`
	Description *string       `json:"description"`
}

// ValidateCreate checks the fields a new entry needs.
func (f EducationFields) ValidateCreate() error {
	switch {
	case f.Degree == nil || blank(*f.Degree):
		return required("degree")
	case f.Institution == nil || blank(*f.Institution):
		return required("institution")
	case f.StartYear == nil:
		return required("startYear")
	}
	return f.ValidateUpdate()
}

// ValidateUpdate rejects supplied fields that would blank a required column.
func (f EducationFields) ValidateUpdate() error {
	switch {
	case f.Degree != nil && blank(*f.Degree):
		return required("degree")
	case f.Institution != nil && blank(*f.Institution):
		return required("institution")
	}
	return nil
}

func (f EducationFields) Updates() map[string]any {
	m := map[string]any{}
	setString(m, "degree", f.Degree)
	setString(m, "institution", f.Institution)
	if f.StartYear != nil {
		m["start_year"] = *f.StartYear
	}
	if f.EndYear.Set {
		m["end_year"] = f.EndYear.Ptr()
	}
	setString(m, "description", f.Description)
	return m
}

// ProjectFields is the writable subset of Project.
type ProjectFields struct {
	Name      *string   `json:"name"`
	Stack     *string   `json:"stack"`
	TechUsed  *[]string `json:"techUsed"`
	LiveURL   *string   `json:"liveUrl"`
	GithubURL *string   `json:"githubUrl"`
}

func (f ProjectFields) ValidateCreate() error {
	if f.Name == nil || blank(*f.Name) {
		return required("name")
	}
	return nil
}

func (f ProjectFields) ValidateUpdate() error {
	if f.Name != nil && blank(*f.Name) {
		return required("name")
	}
	return nil
}

func (f ProjectFields) Updates() map[string]any {
	m := map[string]any{}
	setString(m, "name", f.Name)
	setString(m, "stack", f.Stack)
	if f.TechUsed != nil {
		m["tech_used"] = NormalizeTech(*f.TechUsed)
	}
	setString(m, "live_url", f.LiveURL)
	setString(m, "github_url", f.GithubURL)
	return m
}

// NormalizeTech trims entries and drops blanks. The result is never nil.
func NormalizeTech(in []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SkillItemInput is one item inside a skill write.
type SkillItemInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Position *int   `json:"position"`
}

// SkillFields is the writable subset of Skill. Items, when non-nil, replaces
// every item of the skill. An empty list removes them all.
type SkillFields struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	AboutMeID   Nullable[string]  `json:"aboutMeId"`
	Items       *[]SkillItemInput `json:"skillsArray"`
}

func (f SkillFields) ValidateCreate() error {
	if f.Title == nil || blank(*f.Title) {
		return required("title")
	}
	return f.ValidateUpdate()
}

func (f SkillFields) ValidateUpdate() error {
	if f.Title != nil && blank(*f.Title) {
		return required("title")
	}
	if f.Items != nil {
		for _, item := range *f.Items {
			if blank(item.Name) {
				return required("skillsArray[].name")
			}
		}
	}
	return nil
}

// Updates returns the supplied skill columns. Items are handled separately.
func (f SkillFields) Updates() map[string]any {
	m := map[string]any{}
	setString(m, "title", f.Title)
	setString(m, "description", f.Description)
	if f.AboutMeID.Set {
		m["about_me_id"] = f.AboutMeIDPtr()
	}
	return m
}

// AboutMeIDPtr returns the requested owner, treating "" like null.
func (f SkillFields) AboutMeIDPtr() *string {
	p := f.AboutMeID.Ptr()
	if p == nil || blank(*p) {
		return nil
	}
	return p
}

// SkillItems builds the item rows for skillID. Items without a position keep
// their list order.
func (f SkillFields) SkillItems(skillID string, newID func() string) []*SkillItem {
	if f.Items == nil {
		return nil
	}
	items := make([]*SkillItem, 0, len(*f.Items))
	for i, in := range *f.Items {
		pos := i
		if in.Position != nil {
			pos = *in.Position
		}
		items = append(items, &SkillItem{
			ID:       newID(),
			SkillID:  skillID,
			Name:     strings.TrimSpace(in.Name),
			Icon:     in.Icon,
			Position: pos,
		})
	}
	return items
}

func setString(m map[string]any, col string, v *string) {
	if v != nil {
		m[col] = *v
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
