package server

import (
	"context"
	"fmt"
	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"net"
	"net/http"
	"fedi_relay/shared"
)

func NewHTTPServer(lc fx.Lifecycle, cfg *shared.Config, logger shared.ILogger, router *mux.Router) *http.Server {

	addStr := fmt.Sprintf(":%d", cfg.ServicePort)
	srv := &http.Server{Addr: addStr, Handler: router}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Printf("HTTP server starting at %v", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func NewMux(groups []IHandlerGroup, logger shared.ILogger) *mux.Router {

	router := mux.NewRouter()
	for _, group := range groups {
		subRouter := router.PathPrefix(group.Prefix()).Subrouter()
		subRouter.Use(group.AuthMW())
		for _, def := range group.GroupDefs() {
			subRouter.HandleFunc(def.pattern, def.handler).Methods(def.method)
		}
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Infof("No handler for %s %s", r.Method, r.URL.Path)
		http.Error(w, notFoundStr, http.StatusNotFound)
	})
	return router
}
