package web

import (
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jdramirez/giftmatch/internal/repositories/roster"
	"github.com/jdramirez/giftmatch/internal/services/exchange"
)

type indexData struct {
	Names   []string
	Message string
}

type resultData struct {
	Name       string
	Partner    string
	Unpaired   bool
	Candidates []string
}

// ServeIndex handles GET /. A broken roster source degrades to an empty
// name list so the page stays up.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	var names []string

	out, err := h.service.AvailableNames(r.Context())
	switch {
	case err == nil:
		names = out.Names
	case errors.Is(err, roster.ErrConfiguration):
		h.log.Warn("roster source unavailable, serving empty list", zap.Error(err))
	default:
		h.log.Error("failed to load available names", zap.Error(err))
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}

	sort.Strings(names)

	h.render(w, "index.html", indexData{
		Names:   names,
		Message: r.URL.Query().Get("msg"),
	})
}

// ServeAssign handles POST /assign: the participant picks their name
// and receives their partner, drawing one on first request.
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithMessage(w, r, "Could not read the form, try again.")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.redirectWithMessage(w, r, "Select your name before continuing.")
		return
	}

	out, err := h.service.GetOrCreateAssignment(r.Context(), &exchange.GetOrCreateAssignmentInput{
		Name: name,
	})
	if err != nil {
		if errors.Is(err, exchange.ErrInvalidParticipant) {
			h.redirectWithMessage(w, r, "The selected name is not valid.")
			return
		}
		h.log.Error("failed to create assignment", zap.String("name", name), zap.Error(err))
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}

	if out.Created {
		h.regenerateExport(r.Context())
	}

	h.render(w, "result.html", resultData{
		Name:       out.Assignment.Name,
		Partner:    out.Assignment.Partner.Display(),
		Unpaired:   out.Assignment.Partner.Unpaired,
		Candidates: out.Candidates,
	})
}

// redirectWithMessage sends the user back to the index with a notice
func (h *Handler) redirectWithMessage(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/?msg="+url.QueryEscape(message), http.StatusSeeOther)
}
