package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/jdramirez/giftmatch/internal/services/exchange"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// adminRequest is the JSON body of admin mutations
type adminRequest struct {
	Password string `json:"password"`
	Name     string `json:"name"`
	Partner  string `json:"partner"`
}

// ServePanel handles GET /panel, the admin page. The password is only
// checked by the API calls the page makes.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin.html", nil)
}

// AdminList handles GET /admin/assignments
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !h.checkPassword(w, r.URL.Query().Get("password")) {
		return
	}

	out, err := h.service.ListAssignments(r.Context())
	if err != nil {
		h.log.Error("failed to list assignments", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"assignments": out.Assignments,
	})
}

// AdminUpdate handles POST /admin/assignments, overwriting the partner
// of an existing assignment
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAdminRequest(w, r)
	if !ok {
		return
	}

	out, err := h.service.UpdateAssignment(r.Context(), &exchange.UpdateAssignmentInput{
		Name:    req.Name,
		Partner: req.Partner,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.regenerateExport(r.Context())

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "updated",
		"assignment": out.Assignment,
	})
}

// AdminDelete handles DELETE /admin/assignments
func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAdminRequest(w, r)
	if !ok {
		return
	}

	out, err := h.service.DeleteAssignment(r.Context(), &exchange.DeleteAssignmentInput{
		Name: req.Name,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.regenerateExport(r.Context())

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status": "deleted",
		"name":   out.Name,
	})
}

// AdminDownloadExcel handles GET /admin/assignments/excel
func (h *Handler) AdminDownloadExcel(w http.ResponseWriter, r *http.Request) {
	if !h.checkPassword(w, r.URL.Query().Get("password")) {
		return
	}

	if _, err := os.Stat(h.exporter.Path()); err != nil {
		h.regenerateExport(r.Context())
	}

	w.Header().Set("Content-Type", excelContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="assignments.xlsx"`)
	http.ServeFile(w, r, h.exporter.Path())
}

// decodeAdminRequest parses the JSON body and checks the password
func (h *Handler) decodeAdminRequest(w http.ResponseWriter, r *http.Request) (*adminRequest, bool) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "a JSON body is required")
		return nil, false
	}

	if !h.checkPassword(w, req.Password) {
		return nil, false
	}

	return &req, true
}

// checkPassword writes a 401 and returns false when the shared secret
// does not match
func (h *Handler) checkPassword(w http.ResponseWriter, provided string) bool {
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.adminPassword)) != 1 {
		h.writeError(w, http.StatusUnauthorized, "invalid password")
		return false
	}
	return true
}

// writeServiceError maps engine errors onto HTTP statuses
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exchange.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, exchange.ErrInvalidInput), errors.Is(err, exchange.ErrInvalidParticipant):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("assignment operation failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "operation failed")
	}
}

// regenerateExport rebuilds the workbook from the current history. The
// history write already landed, so a failed export is logged and the
// request still succeeds.
func (h *Handler) regenerateExport(ctx context.Context) {
	out, err := h.service.ListAssignments(ctx)
	if err != nil {
		h.log.Error("failed to load history for export", zap.Error(err))
		return
	}

	if err := h.exporter.Regenerate(out.Assignments); err != nil {
		h.log.Error("failed to regenerate export", zap.Error(err))
	}
}
