// Route registration for the portfolio API.

package api

import (
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
)

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Operational endpoints live at the root.
	mux.HandleFunc("GET /health", a.handleHealth)
	if a.metrics != nil {
		mux.Handle("GET /metrics", a.metrics.Handler())
	}

	// About me
	a.public(mux, "GET /about", a.handleGetAbout)
	a.admin(mux, "PUT /about", a.handleUpdateAbout)

	// Contact info and messages
	a.public(mux, "GET /contact/info", a.handleGetContactInfo)
	a.admin(mux, "PUT /contact/info", a.handleUpdateContactInfo)
	a.admin(mux, "GET /contact/messages", a.handleListContactMessages)
	a.public(mux, "POST /contact/message", a.handleCreateContactMessage)
	a.admin(mux, "DELETE /contact/messages/{id}", a.handleDeleteContactMessage)

	// Education
	a.public(mux, "GET /education", a.handleListEducation)
	a.public(mux, "GET /education/{id}", a.handleGetEducation)
	a.admin(mux, "POST /education", a.handleCreateEducation)
	a.admin(mux, "PUT /education/{id}", a.handleUpdateEducation)
	a.admin(mux, "DELETE /education/{id}", a.handleDeleteEducation)

	// Projects
	a.public(mux, "GET /projects", a.handleListProjects)
	a.public(mux, "GET /projects/{id}", a.handleGetProject)
	a.admin(mux, "POST /projects", a.handleCreateProject)
	a.admin(mux, "PUT /projects/{id}", a.handleUpdateProject)
	a.admin(mux, "DELETE /projects/{id}", a.handleDeleteProject)

	// Skills
	a.public(mux, "GET /skills", a.handleListSkills)
	a.public(mux, "GET /skills/{id}", a.handleGetSkill)
	a.admin(mux, "POST /skills", a.handleCreateSkill)
	a.admin(mux, "PUT /skills/{id}", a.handleUpdateSkill)
	a.admin(mux, "DELETE /skills/{id}", a.handleDeleteSkill)

	// Admin login
	if a.LoginEnabled() {
		a.public(mux, "POST /auth/login", a.handleLogin)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusNotFound, ErrMsgRouteNotFound)
	})
}

// public registers an unauthenticated route under the base path.
func (a *API) public(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(a.mount(pattern), h)
}

// admin registers a route behind the admin gate under the base path.
func (a *API) admin(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(a.mount(pattern), a.gate.Admin(h))
}

// mount prefixes the path part of "METHOD /path" with the base path.
func (a *API) mount(pattern string) string {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '/' {
			return pattern[:i] + a.basePath + pattern[i:]
		}
	}
	return pattern
}
