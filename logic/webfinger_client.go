package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"fedi_relay/dto"
	"fedi_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_webfinger_client.go -package mocks fedi_relay/logic IWebfingerClient

type IWebfingerClient interface {
	Discover(nickname, domain string) (*dto.WebfingerResp, error)
}

type webfingerClient struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	sessions  ISessions
	metrics   IMetrics
}

func NewWebfingerClient(
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	sessions ISessions,
	metrics IMetrics,
) IWebfingerClient {
	return &webfingerClient{logger, userAgent, sessions, metrics}
}

func (wc *webfingerClient) Discover(nickname, domain string) (*dto.WebfingerResp, error) {

	client, err := wc.sessions.ClientFor(domain)
	if err != nil {
		return nil, err
	}

	resource := url.QueryEscape(fmt.Sprintf("acct:%s@%s", nickname, domain))
	reqUrl := fmt.Sprintf("%s/.well-known/webfinger?resource=%s", shared.SiteUrlForDomain(domain), resource)
	req, err := http.NewRequest("GET", reqUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	wc.userAgent.AddUserAgent(req)

	obs := wc.metrics.StartApubRequestOut("webfinger")
	wc.sessions.Throttle()
	resp, err := client.Do(req)
	obs.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebfingerFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: got status %d", ErrWebfingerFailed, resp.StatusCode)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebfingerFailed, err)
	}

	var res dto.WebfingerResp
	if err = json.Unmarshal(bodyBytes, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebfingerMalformed, err)
	}
	return &res, nil
}
