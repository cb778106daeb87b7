package test

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"fedi_relay/logic"
	"fedi_relay/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupDeliveryHarness(t *testing.T) (*gomock.Controller, *mocks.MockIActivitySender, logic.IPostLog, logic.IDeliveryWorker) {

	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	logger := quietLogger(ctrl)
	metrics := quietMetrics(ctrl)
	postLog := logic.NewPostLog()

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)
	keyStore := mocks.NewMockIKeyStore(ctrl)
	keyStore.EXPECT().GetPrivKey(gomock.Any()).Return(privKey, nil).AnyTimes()

	sender := mocks.NewMockIActivitySender(ctrl)
	worker := logic.NewDeliveryWorker(cfg, logger, keyStore, sender, postLog, metrics)
	return ctrl, sender, postLog, worker
}

func TestDelivery_SucceedsFirstAttempt(t *testing.T) {

	_, sender, _, worker := setupDeliveryHarness(t)
	target := &logic.DeliveryTarget{InboxUrl: "https://good.example/inbox", ToDomain: "good.example"}

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), target.InboxUrl, gomock.Any(), logic.ProfileActivityJson, gomock.Any()).
		Return(http.StatusAccepted, nil).
		Times(1)

	outcome := worker.Deliver("birb", target, []byte("{}"))

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, http.StatusAccepted, outcome.StatusCode)
}

func TestDelivery_5xxAbortsImmediately(t *testing.T) {

	_, sender, _, worker := setupDeliveryHarness(t)
	target := &logic.DeliveryTarget{InboxUrl: "https://flaky.example/inbox", ToDomain: "flaky.example"}

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), target.InboxUrl, gomock.Any(), logic.ProfileActivityJson, gomock.Any()).
		Return(http.StatusServiceUnavailable, nil).
		Times(1)

	outcome := worker.Deliver("birb", target, []byte("{}"))

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, http.StatusServiceUnavailable, outcome.StatusCode)
}

func TestDelivery_ExhaustsAllAttempts(t *testing.T) {

	_, sender, postLog, worker := setupDeliveryHarness(t)
	target := &logic.DeliveryTarget{InboxUrl: "https://mute.example/inbox", ToDomain: "mute.example"}

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), target.InboxUrl, gomock.Any(), logic.ProfileActivityJson, gomock.Any()).
		Return(http.StatusNotFound, nil).
		Times(20)

	outcome := worker.Deliver("birb", target, []byte("{}"))

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, 20, outcome.Attempts)
	assert.LessOrEqual(t, len(postLog.Entries()), 16)
}

func TestDelivery_LdJsonFallbackDoesNotConsumeAttempt(t *testing.T) {

	_, sender, _, worker := setupDeliveryHarness(t)
	target := &logic.DeliveryTarget{InboxUrl: "https://picky.example/inbox", ToDomain: "picky.example"}

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), target.InboxUrl, gomock.Any(), logic.ProfileActivityJson, gomock.Any()).
		Return(http.StatusUnauthorized, nil).
		Times(1)
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), target.InboxUrl, gomock.Any(), logic.ProfileLdJson, gomock.Any()).
		Return(http.StatusOK, nil).
		Times(1)

	outcome := worker.Deliver("birb", target, []byte("{}"))

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Attempts)
}

func TestDelivery_DomainMismatchMakesNoCall(t *testing.T) {

	_, sender, _, worker := setupDeliveryHarness(t)
	_ = sender // no Send expectation: any call fails the test
	target := &logic.DeliveryTarget{InboxUrl: "https://evil.example/inbox", ToDomain: "good.example"}

	outcome := worker.Deliver("birb", target, []byte("{}"))

	assert.False(t, outcome.Succeeded)
	assert.ErrorIs(t, outcome.Err, logic.ErrDomainMismatch)
	assert.Equal(t, 0, outcome.Attempts)
}
