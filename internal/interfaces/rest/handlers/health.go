package handlers

import (
	"net/http"

	"github.com/iByteABit256/MRN-Generator/internal/interfaces/rest"
)

func (h *MrnHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
