package logic

import (
	"fmt"
	"io"
	"net/http"
	"fedi_relay/dto"
	"fedi_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_object_fetcher.go -package mocks fedi_relay/logic IObjectFetcher

// IObjectFetcher retrieves one remote ActivityPub object as loose JSON.
type IObjectFetcher interface {
	FetchObject(objectUrl string) (*dto.RawObject, error)
}

type objectFetcher struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	sessions  ISessions
	metrics   IMetrics
}

func NewObjectFetcher(
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	sessions ISessions,
	metrics IMetrics,
) IObjectFetcher {
	return &objectFetcher{logger, userAgent, sessions, metrics}
}

func (of *objectFetcher) FetchObject(objectUrl string) (*dto.RawObject, error) {

	domain, err := shared.GetHostName(objectUrl)
	if err != nil {
		return nil, err
	}
	client, err := of.sessions.ClientFor(domain)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", objectUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", ContentTypeActivityJson)
	of.userAgent.AddUserAgent(req)

	obs := of.metrics.StartApubRequestOut("get_object")
	of.sessions.Throttle()
	resp, err := client.Do(req)
	obs.Finish()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("object fetch returned status %d for %s", resp.StatusCode, objectUrl)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return dto.LoadRawObject(bodyBytes)
}
