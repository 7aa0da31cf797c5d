// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/utils"
)

// routeNotFound answers every unknown path with the JSON 404 envelope.
//
// It is registered both as the router's NotFound and MethodNotAllowed
// handler, so a known path requested with an unsupported method is
// indistinguishable from a path that does not exist.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}
