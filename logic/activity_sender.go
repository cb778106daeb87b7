package logic

import (
	"bytes"
	"crypto/rsa"
	"io"
	"net/http"
	"fedi_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_activity_sender.go -package mocks fedi_relay/logic IActivitySender

// IActivitySender makes exactly one signed POST to one inbox and reports
// the status code. Retry policy lives with the caller.
type IActivitySender interface {
	Send(privKey *rsa.PrivateKey, keyId, inboxUrl string, body []byte,
		profile SignProfile, extraHeaders map[string]string) (status int, err error)
}

type activitySender struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	sessions  ISessions
	signer    IRequestSigner
	metrics   IMetrics
}

func NewActivitySender(
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	sessions ISessions,
	signer IRequestSigner,
	metrics IMetrics,
) IActivitySender {
	return &activitySender{logger, userAgent, sessions, signer, metrics}
}

func (as *activitySender) Send(
	privKey *rsa.PrivateKey,
	keyId, inboxUrl string,
	body []byte,
	profile SignProfile,
	extraHeaders map[string]string,
) (int, error) {

	domain, err := shared.GetHostName(inboxUrl)
	if err != nil {
		return 0, err
	}
	client, err := as.sessions.ClientFor(domain)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest("POST", inboxUrl, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	as.userAgent.AddUserAgent(req)
	for name, value := range extraHeaders {
		req.Header.Set(name, value)
	}
	if err = as.signer.Sign(privKey, keyId, req, body, profile); err != nil {
		return 0, err
	}

	obs := as.metrics.StartApubRequestOut("post_inbox")
	as.sessions.Throttle()
	resp, err := client.Do(req)
	obs.Finish()
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		as.logger.Infof("Inbox POST to %s got status %d: %s",
			inboxUrl, resp.StatusCode, shared.TruncateWithEllipsis(string(respBody), 200))
	}
	return resp.StatusCode, nil
}
