package logic

import (
	"net/http"
	"fedi_relay/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_site_probe.go -package mocks fedi_relay/logic ISiteProbe

// ISiteProbe answers whether a remote instance looks reachable at all.
// Used to skip entire follower domains that are down.
type ISiteProbe interface {
	IsActive(domain string) bool
}

type siteProbe struct {
	cfg      *shared.Config
	logger   shared.ILogger
	sessions ISessions
}

func NewSiteProbe(cfg *shared.Config, logger shared.ILogger, sessions ISessions) ISiteProbe {
	return &siteProbe{cfg, logger, sessions}
}

func (sp *siteProbe) IsActive(domain string) bool {

	client, err := sp.sessions.ClientFor(domain)
	if err != nil {
		sp.logger.Infof("No session for domain %s: %v", domain, err)
		return false
	}
	client.Timeout = time.Second * time.Duration(sp.cfg.Delivery.ProbeTimeoutSec)

	siteUrl := shared.SiteUrlForDomain(domain)
	resp, err := client.Get(siteUrl)
	if err != nil {
		sp.logger.Infof("Liveness probe failed for %s: %v", domain, err)
		return false
	}
	defer resp.Body.Close()

	// Any response at all means there is a server behind the name
	return resp.StatusCode < http.StatusInternalServerError
}
