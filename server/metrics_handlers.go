package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"fedi_relay/shared"
	"strings"
)

type metricsHandlerGroup struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewMetricsHandlerGroup(cfg *shared.Config, logger shared.ILogger) IHandlerGroup {
	return &metricsHandlerGroup{cfg, logger}
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/metrics"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	promHandler := promhttp.Handler()
	return []handlerDef{
		{"GET", "", func(w http.ResponseWriter, r *http.Request) { promHandler.ServeHTTP(w, r) }},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimPrefix(auth, "Bearer ")
			if hg.cfg.Secrets.MetricsAuth == "" || token != hg.cfg.Secrets.MetricsAuth {
				http.Error(w, unauthorizedStr, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
