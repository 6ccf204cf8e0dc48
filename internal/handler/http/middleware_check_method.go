package http

import (
	"net/http"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/app"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
)

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
