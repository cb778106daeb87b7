package test

import (
	"fedi_relay/dto"
	"fedi_relay/logic"
	"fedi_relay/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type inboxHarness struct {
	repo      *mocks.MockIRepo
	udir      *mocks.MockIUserDirectory
	announces *mocks.MockIAnnounceResolver
	inbox     logic.IInbox
}

func setupInboxHarness(t *testing.T) *inboxHarness {

	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	h := &inboxHarness{
		repo:      mocks.NewMockIRepo(ctrl),
		udir:      mocks.NewMockIUserDirectory(ctrl),
		announces: mocks.NewMockIAnnounceResolver(ctrl),
	}
	h.repo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	h.inbox = logic.NewInbox(
		cfg, quietLogger(ctrl), h.repo, h.udir, h.announces, quietMetrics(ctrl))
	return h
}

func senderInfo() *dto.UserInfo {
	return &dto.UserInfo{
		Id:                "https://b.example/users/bob",
		PreferredUserName: "bob",
		Inbox:             "https://b.example/users/bob/inbox",
	}
}

func TestInbox_FollowAccepted(t *testing.T) {

	h := setupInboxHarness(t)
	body := []byte(`{
		"id": "https://b.example/activities/follow-1",
		"type": "Follow",
		"actor": "https://b.example/users/bob",
		"object": "https://relay.example/u/birb"
	}`)
	h.udir.EXPECT().
		AcceptFollower("birb", "https://b.example/activities/follow-1", gomock.Any()).
		Return(nil)

	err := h.inbox.Handle("birb", senderInfo(), body)
	assert.Nil(t, err)
}

func TestInbox_FollowForWrongUserRefused(t *testing.T) {

	h := setupInboxHarness(t)
	body := []byte(`{
		"id": "https://b.example/activities/follow-2",
		"type": "Follow",
		"actor": "https://b.example/users/bob",
		"object": "https://elsewhere.example/u/other"
	}`)

	err := h.inbox.Handle("birb", senderInfo(), body)
	assert.NotNil(t, err)
}

func TestInbox_UndoFollowRemovesFollower(t *testing.T) {

	h := setupInboxHarness(t)
	body := []byte(`{
		"id": "https://b.example/activities/undo-1",
		"type": "Undo",
		"actor": "https://b.example/users/bob",
		"object": {
			"id": "https://b.example/activities/follow-1",
			"type": "Follow",
			"actor": "https://b.example/users/bob",
			"object": "https://relay.example/u/birb"
		}
	}`)
	h.udir.EXPECT().RemoveFollower("birb", "https://b.example/users/bob").Return(nil)

	err := h.inbox.Handle("birb", senderInfo(), body)
	assert.Nil(t, err)
}

func TestInbox_AnnounceDispatchedToResolver(t *testing.T) {

	h := setupInboxHarness(t)
	body := []byte(`{
		"id": "https://b.example/activities/boost-1",
		"type": "Announce",
		"actor": "https://b.example/users/bob",
		"object": "https://origin.example/users/author/statuses/7"
	}`)
	h.announces.EXPECT().
		Resolve("birb", gomock.Any()).
		Return(nil, nil)

	err := h.inbox.Handle("birb", senderInfo(), body)
	assert.Nil(t, err)
}

func TestInbox_DuplicateActivityIgnored(t *testing.T) {

	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	repo := mocks.NewMockIRepo(ctrl)
	udir := mocks.NewMockIUserDirectory(ctrl)
	announces := mocks.NewMockIAnnounceResolver(ctrl)
	inbox := logic.NewInbox(cfg, quietLogger(ctrl), repo, udir, announces, quietMetrics(ctrl))

	repo.EXPECT().
		MarkActivityHandled("https://b.example/activities/boost-1", gomock.Any()).
		Return(true, nil)
	// Neither the resolver nor the directory may be touched

	body := []byte(`{
		"id": "https://b.example/activities/boost-1",
		"type": "Announce",
		"actor": "https://b.example/users/bob",
		"object": "https://origin.example/users/author/statuses/7"
	}`)
	err := inbox.Handle("birb", senderInfo(), body)
	assert.Nil(t, err)
}

func TestInbox_UnknownTypeIgnored(t *testing.T) {

	h := setupInboxHarness(t)
	body := []byte(`{
		"id": "https://b.example/activities/x-1",
		"type": "Frobnicate",
		"actor": "https://b.example/users/bob"
	}`)
	err := h.inbox.Handle("birb", senderInfo(), body)
	assert.Nil(t, err)
}
