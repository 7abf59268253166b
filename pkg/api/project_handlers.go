package api

import (
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/store"
)

var (
	opListProjects  = operation{name: "list projects", failed: "Failed to fetch projects"}
	opGetProject    = operation{name: "get project", failed: "Failed to fetch project", notFound: "Project not found"}
	opCreateProject = operation{name: "create project", failed: "Failed to create project"}
	opUpdateProject = operation{name: "update project", failed: "Failed to update project", notFound: "Project not found"}
	opDeleteProject = operation{name: "delete project", failed: "Failed to delete project", notFound: "Project not found"}
)

func (a *API) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.store.Projects().List(r.Context())
	if err != nil {
		a.writeStoreError(w, r, opListProjects, err)
		return
	}
	httputil.WriteOK(w, projects)
}

func (a *API) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := a.store.Projects().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeStoreError(w, r, opGetProject, err)
		return
	}
	httputil.WriteOK(w, project)
}

func (a *API) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var f store.ProjectFields
	if !a.decode(w, r, opCreateProject, &f) {
		return
	}
	project, err := a.store.Projects().Create(r.Context(), f)
	if err != nil {
		a.writeStoreError(w, r, opCreateProject, err)
		return
	}
	httputil.WriteCreated(w, project)
}

func (a *API) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var f store.ProjectFields
	if !a.decode(w, r, opUpdateProject, &f) {
		return
	}
	project, err := a.store.Projects().Update(r.Context(), r.PathValue("id"), f)
	if err != nil {
		a.writeStoreError(w, r, opUpdateProject, err)
		return
	}
	httputil.WriteOK(w, project)
}

func (a *API) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Projects().Delete(r.Context(), r.PathValue("id")); err != nil {
		a.writeStoreError(w, r, opDeleteProject, err)
		return
	}
	httputil.WriteMessage(w, "Project deleted successfully")
}
