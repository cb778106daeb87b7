package server

import (
	"encoding/json"
	"net/http"
	"fedi_relay/shared"
)

// IHandlerGroup is one set of related handlers mounted under a common
// prefix, with an optional auth middleware in front of all of them.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

type handlerDef struct {
	method  string
	pattern string
	handler func(w http.ResponseWriter, r *http.Request)
}

func emptyMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}

func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Errorf("Failed to serialize response: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
	}
}

func writeActivityJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/activity+json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Errorf("Failed to serialize response: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
	}
}

const (
	internalErrorStr = "500 Internal Server Error"
	notFoundStr      = "404 Not Found"
	badRequestStr    = "400 Bad Request"
	unauthorizedStr  = "401 Unauthorized"
)
