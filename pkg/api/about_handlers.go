package api

import (
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/store"
)

var (
	opGetAbout    = operation{name: "get about", failed: "Failed to fetch about me", notFound: "About me not found"}
	opUpdateAbout = operation{name: "update about", failed: "Failed to update about me"}
)

func (a *API) handleGetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := a.store.About().Get(r.Context())
	if err != nil {
		a.writeStoreError(w, r, opGetAbout, err)
		return
	}
	httputil.WriteOK(w, about)
}

func (a *API) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	var f store.AboutFields
	if !a.decode(w, r, opUpdateAbout, &f) {
		return
	}
	about, err := a.store.About().Upsert(r.Context(), f)
	if err != nil {
		a.writeStoreError(w, r, opUpdateAbout, err)
		return
	}
	httputil.WriteOK(w, about)
}
