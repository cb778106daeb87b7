package logic

import (
	"context"
	"golang.org/x/net/proxy"
	"golang.org/x/time/rate"
	"net/http"
	"fedi_relay/shared"
	"time"
)

const activityTimeoutSec = 10

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_sessions.go -package mocks fedi_relay/logic ISessions

// ISessions hands out HTTP clients by destination transport. Each delivery
// worker gets its own client object so nothing is shared across goroutines.
type ISessions interface {
	ClientFor(domain string) (*http.Client, error)
	Throttle()
}

type sessions struct {
	cfg     *shared.Config
	logger  shared.ILogger
	limiter *rate.Limiter
}

func NewSessions(cfg *shared.Config, logger shared.ILogger) ISessions {
	limiter := rate.NewLimiter(rate.Limit(cfg.Delivery.OutRatePerSec), int(cfg.Delivery.OutRatePerSec)+1)
	return &sessions{cfg, logger, limiter}
}

func (s *sessions) ClientFor(domain string) (*http.Client, error) {

	proxyAddr := ""
	switch shared.GetDomainTransport(domain) {
	case shared.TransportOnion:
		proxyAddr = s.cfg.TorSocksProxy
	case shared.TransportI2p:
		proxyAddr = s.cfg.I2pSocksProxy
	default:
		return &http.Client{Timeout: time.Second * activityTimeoutSec}, nil
	}

	if proxyAddr == "" {
		return nil, ErrNoSession
	}
	dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, err
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, ErrNoSession
	}
	transport := &http.Transport{DialContext: ctxDialer.DialContext}
	return &http.Client{Timeout: time.Second * activityTimeoutSec, Transport: transport}, nil
}

// Throttle blocks until the global outbound rate limit admits one more
// request. Called right before every outgoing POST.
func (s *sessions) Throttle() {
	_ = s.limiter.Wait(context.Background())
}
