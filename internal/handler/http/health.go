package http

import (
	"net/http"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := h.services.AppInfoService.Health(r.Context())

	status := http.StatusOK
	if response.Status != service.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}

	_, _ = utils.WriteJSON(w, response, status)
}
