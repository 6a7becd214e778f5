package handlers

import (
	"net/http"
)

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	status, err := h.TablesService.GetTablesStatus(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, status, http.StatusOK)
}
