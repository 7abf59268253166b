package api

import (
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/store"
)

var (
	opListSkills  = operation{name: "list skills", failed: "Failed to fetch skills"}
	opGetSkill    = operation{name: "get skill", failed: "Failed to fetch skill", notFound: "Skill not found"}
	opCreateSkill = operation{name: "create skill", failed: "Failed to create skill"}
	opUpdateSkill = operation{name: "update skill", failed: "Failed to update skill", notFound: "Skill not found"}
	opDeleteSkill = operation{name: "delete skill", failed: "Failed to delete skill", notFound: "Skill not found"}
)

func (a *API) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := a.store.Skills().List(r.Context())
	if err != nil {
		a.writeStoreError(w, r, opListSkills, err)
		return
	}
	httputil.WriteOK(w, skills)
}

func (a *API) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := a.store.Skills().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeStoreError(w, r, opGetSkill, err)
		return
	}
	httputil.WriteOK(w, skill)
}

func (a *API) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var f store.SkillFields
	if !a.decode(w, r, opCreateSkill, &f) {
		return
	}
	skill, err := a.store.Skills().Create(r.Context(), f)
	if err != nil {
		a.writeStoreError(w, r, opCreateSkill, err)
		return
	}
	httputil.WriteCreated(w, skill)
}

// handleUpdateSkill replaces every item when the body carries skillsArray.
func (a *API) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var f store.SkillFields
	if !a.decode(w, r, opUpdateSkill, &f) {
		return
	}
	skill, err := a.store.Skills().Update(r.Context(), r.PathValue("id"), f)
	if err != nil {
		a.writeStoreError(w, r, opUpdateSkill, err)
		return
	}
	httputil.WriteOK(w, skill)
}

func (a *API) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Skills().Delete(r.Context(), r.PathValue("id")); err != nil {
		a.writeStoreError(w, r, opDeleteSkill, err)
		return
	}
	httputil.WriteMessage(w, "Skill deleted successfully")
}
