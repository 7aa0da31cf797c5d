package http

import (
	"net/http"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/utils"
	"github.com/MKhiriev/cpoint/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.services.AppInfoService.Now(ctx)

	writeJSON(w, r, models.Response{
		Success:   true,
		Message:   app.MsgHealthy,
		Timestamp: &now,
		Version:   h.services.AppInfoService.GetAppVersion(ctx),
	}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
