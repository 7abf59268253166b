package api

import (
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/store"
)

const msgEducationNotFound = "Education entry not found"

var (
	opListEducation   = operation{name: "list education", failed: "Failed to fetch education"}
	opGetEducation    = operation{name: "get education", failed: "Failed to fetch education entry", notFound: msgEducationNotFound}
	opCreateEducation = operation{name: "create education", failed: "Failed to create education entry"}
	opUpdateEducation = operation{name: "update education", failed: "Failed to update education entry", notFound: msgEducationNotFound}
	opDeleteEducation = operation{name: "delete education", failed: "Failed to delete education entry", notFound: msgEducationNotFound}
)

func (a *API) handleListEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := a.store.Education().List(r.Context())
	if err != nil {
		a.writeStoreError(w, r, opListEducation, err)
		return
	}
	httputil.WriteOK(w, entries)
}

func (a *API) handleGetEducation(w http.ResponseWriter, r *http.Request) {
	entry, err := a.store.Education().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeStoreError(w, r, opGetEducation, err)
		return
	}
	httputil.WriteOK(w, entry)
}

func (a *API) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	var f store.EducationFields
	if !a.decode(w, r, opCreateEducation, &f) {
		return
	}
	entry, err := a.store.Education().Create(r.Context(), f)
	if err != nil {
		a.writeStoreError(w, r, opCreateEducation, err)
		return
	}
	httputil.WriteCreated(w, entry)
}

func (a *API) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	var f store.EducationFields
	if !a.decode(w, r, opUpdateEducation, &f) {
		return
	}
	entry, err := a.store.Education().Update(r.Context(), r.PathValue("id"), f)
	if err != nil {
		a.writeStoreError(w, r, opUpdateEducation, err)
		return
	}
	httputil.WriteOK(w, entry)
}

func (a *API) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Education().Delete(r.Context(), r.PathValue("id")); err != nil {
		a.writeStoreError(w, r, opDeleteEducation, err)
		return
	}
	httputil.WriteMessage(w, "Education entry deleted successfully")
}
