package logic

import (
	"net/http"
	"fedi_relay/shared"
	"strings"
	"time"
)

// DeliveryTarget is one resolved destination, built fresh for every send.
type DeliveryTarget struct {
	InboxUrl            string
	ToNickname          string
	ToDomain            string
	SharedInboxEligible bool
	GroupAccount        bool
	ExtraHeaders        map[string]string
}

// DeliveryOutcome is what a finished delivery reports to the observability
// side. Fan-out never sees these as errors.
type DeliveryOutcome struct {
	InboxUrl   string
	Attempts   int
	Succeeded  bool
	StatusCode int
	Err        error
}

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_delivery_worker.go -package mocks fedi_relay/logic IDeliveryWorker

// IDeliveryWorker pushes one signed activity to one inbox with bounded
// retries. Deliver blocks until terminal success or exhaustion.
type IDeliveryWorker interface {
	Deliver(sendingUser string, target *DeliveryTarget, body []byte) *DeliveryOutcome
}

type deliveryWorker struct {
	cfg      *shared.Config
	logger   shared.ILogger
	keyStore IKeyStore
	sender   IActivitySender
	postLog  IPostLog
	metrics  IMetrics
	idb      shared.IdBuilder
}

func NewDeliveryWorker(
	cfg *shared.Config,
	logger shared.ILogger,
	keyStore IKeyStore,
	sender IActivitySender,
	postLog IPostLog,
	metrics IMetrics,
) IDeliveryWorker {
	return &deliveryWorker{
		cfg:      cfg,
		logger:   logger,
		keyStore: keyStore,
		sender:   sender,
		postLog:  postLog,
		metrics:  metrics,
		idb:      shared.IdBuilder{Host: cfg.Host},
	}
}

func (dw *deliveryWorker) Deliver(sendingUser string, target *DeliveryTarget, body []byte) *DeliveryOutcome {

	outcome := &DeliveryOutcome{InboxUrl: target.InboxUrl}

	// A webfinger response must not redirect delivery to a third domain
	if !strings.Contains(target.InboxUrl, target.ToDomain) {
		outcome.Err = ErrDomainMismatch
		dw.postLog.Add("refused %s: inbox not on domain %s", target.InboxUrl, target.ToDomain)
		dw.logger.Warnf("Refusing delivery to %s: not on domain %s", target.InboxUrl, target.ToDomain)
		return outcome
	}

	privKey, err := dw.keyStore.GetPrivKey(sendingUser)
	if err != nil {
		outcome.Err = err
		dw.logger.Errorf("Cannot deliver for %s: %v", sendingUser, err)
		return outcome
	}
	keyId := dw.idb.UserKeyId(sendingUser)

	for attempt := 1; attempt <= dw.cfg.Delivery.MaxAttempts; attempt++ {
		outcome.Attempts = attempt
		dw.metrics.DeliveryAttempted()
		status, err := dw.sender.Send(privKey, keyId, target.InboxUrl, body,
			ProfileActivityJson, target.ExtraHeaders)

		// Some software rejects the first content type profile. One
		// immediate fallback that does not consume an attempt.
		if err == nil && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
			dw.metrics.DeliveryAttempted()
			status, err = dw.sender.Send(privKey, keyId, target.InboxUrl, body,
				ProfileLdJson, target.ExtraHeaders)
		}

		outcome.StatusCode = status
		outcome.Err = err

		if err == nil && status >= 200 && status < 300 {
			outcome.Succeeded = true
			dw.postLog.Add("delivered to %s on attempt %d", target.InboxUrl, attempt)
			dw.metrics.DeliverySucceeded()
			return outcome
		}
		if status >= 500 {
			// A 5xx is a systemic remote fault, not a transient hiccup
			dw.postLog.Add("abandoned %s: status %d on attempt %d", target.InboxUrl, status, attempt)
			dw.metrics.DeliveryGivenUp()
			return outcome
		}
		dw.postLog.Add("attempt %d failed for %s (status %d, err %v)", attempt, target.InboxUrl, status, err)
		if attempt < dw.cfg.Delivery.MaxAttempts {
			time.Sleep(time.Second * time.Duration(dw.cfg.Delivery.RetryIntervalSec))
		}
	}
	dw.postLog.Add("gave up on %s after %d attempts", target.InboxUrl, dw.cfg.Delivery.MaxAttempts)
	dw.logger.Warnf("Giving up delivery to %s after %d attempts", target.InboxUrl, dw.cfg.Delivery.MaxAttempts)
	dw.metrics.DeliveryGivenUp()
	return outcome
}
