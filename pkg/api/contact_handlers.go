package api

import (
	"errors"
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/store"
)

var (
	opGetContactInfo    = operation{name: "get contact info", failed: "Failed to fetch contact info"}
	opUpdateContactInfo = operation{name: "update contact info", failed: "Failed to update contact info"}
	opListMessages      = operation{name: "list contact messages", failed: "Failed to fetch contact messages"}
	opCreateMessage     = operation{name: "create contact message", failed: "Failed to submit contact message"}
	opDeleteMessage     = operation{
		name:     "delete contact message",
		failed:   "Failed to delete contact message",
		notFound: "Contact message not found",
	}
)

// contactMessageResponse wraps a created message.
type contactMessageResponse struct {
	Message string                `json:"message"`
	Data    *store.ContactMessage `json:"data"`
}

// handleGetContactInfo returns null, not 404, before the info is first set.
func (a *API) handleGetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := a.store.Contact().GetInfo(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		httputil.WriteOK(w, nil)
		return
	}
	if err != nil {
		a.writeStoreError(w, r, opGetContactInfo, err)
		return
	}
	httputil.WriteOK(w, info)
}

func (a *API) handleUpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var f store.ContactInfoFields
	if !a.decode(w, r, opUpdateContactInfo, &f) {
		return
	}
	info, err := a.store.Contact().UpsertInfo(r.Context(), f)
	if err != nil {
		a.writeStoreError(w, r, opUpdateContactInfo, err)
		return
	}
	httputil.WriteOK(w, info)
}

func (a *API) handleListContactMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := a.store.Contact().ListMessages(r.Context())
	if err != nil {
		a.writeStoreError(w, r, opListMessages, err)
		return
	}
	httputil.WriteOK(w, msgs)
}

func (a *API) handleCreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var f store.ContactMessageFields
	if !a.decode(w, r, opCreateMessage, &f) {
		return
	}
	msg, err := a.store.Contact().CreateMessage(r.Context(), f)
	if err != nil {
		a.writeStoreError(w, r, opCreateMessage, err)
		return
	}
	a.metrics.ObserveContactMessage()
	a.log.Info("contact message received", "id", msg.ID)
	httputil.WriteCreated(w, contactMessageResponse{
		Message: "Contact message submitted successfully",
		Data:    msg,
	})
}

func (a *API) handleDeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Contact().DeleteMessage(r.Context(), r.PathValue("id")); err != nil {
		a.writeStoreError(w, r, opDeleteMessage, err)
		return
	}
	httputil.WriteMessage(w, "Contact message deleted successfully")
}
