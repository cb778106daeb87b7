package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"fedi_relay/dto"
	"fedi_relay/logic"
	"fedi_relay/shared"
	"fedi_relay/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type actorHarness struct {
	repo      *mocks.MockIRepo
	webfinger *mocks.MockIWebfingerClient
	resolver  logic.IActorResolver
}

func setupActorHarness(t *testing.T) *actorHarness {

	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	logger := quietLogger(ctrl)
	metrics := quietMetrics(ctrl)

	h := &actorHarness{
		repo:      mocks.NewMockIRepo(ctrl),
		webfinger: mocks.NewMockIWebfingerClient(ctrl),
	}
	filters := mocks.NewMockIFilters(ctrl)
	filters.EXPECT().DangerousMarkup(gomock.Any()).Return(false).AnyTimes()
	filters.EXPECT().IsFiltered(gomock.Any()).Return(false).AnyTimes()

	sessions := logic.NewSessions(cfg, logger)
	h.resolver = logic.NewActorResolver(
		logger, h.repo, h.webfinger, sessions, shared.NewUserAgent(cfg), filters, metrics)
	return h
}

func remoteActorDoc(actorUrl string) map[string]any {
	return map[string]any{
		"id":                actorUrl,
		"type":              "Person",
		"preferredUsername": "alice",
		"name":              "Alice",
		"inbox":             actorUrl + "/inbox",
		"endpoints":         map[string]any{"sharedInbox": "https://b.example/inbox"},
		"publicKey": map[string]any{
			"id":           actorUrl + "#main-key",
			"owner":        actorUrl,
			"publicKeyPem": "-----BEGIN RSA PUBLIC KEY-----",
		},
	}
}

func TestActorResolver_CacheHitMakesNoNetworkCall(t *testing.T) {

	h := setupActorHarness(t)
	actorUrl := "https://b.example/users/alice"
	docJson, _ := json.Marshal(remoteActorDoc(actorUrl))
	h.repo.EXPECT().GetCachedActor(actorUrl).Return(string(docJson), true, nil)

	// No webfinger expectation: any discovery call fails the test
	userInfo, err := h.resolver.Resolve("alice", "b.example")

	assert.Nil(t, err)
	assert.Equal(t, actorUrl, userInfo.Id)
	assert.Equal(t, actorUrl+"/inbox", userInfo.Inbox)
	assert.Equal(t, "https://b.example/inbox", userInfo.BestSharedInbox())
}

func TestActorResolver_FetchesAndCachesActorDoc(t *testing.T) {

	h := setupActorHarness(t)

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := remoteActorDoc(srv.URL + "/users/alice")
		w.Header().Set("Content-Type", "application/activity+json")
		json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()
	actorUrl := srv.URL + "/users/alice"

	h.repo.EXPECT().GetCachedActor(actorUrl).Return("", false, nil)
	h.repo.EXPECT().PutCachedActor(actorUrl, gomock.Any()).Return(nil)

	userInfo, err := h.resolver.ResolveUrl(actorUrl)

	assert.Nil(t, err)
	assert.Equal(t, "alice", userInfo.PreferredUserName)
	assert.Equal(t, actorUrl+"/inbox", userInfo.Inbox)
}

func TestActorResolver_RejectsActorWithoutPublicKey(t *testing.T) {

	h := setupActorHarness(t)

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := remoteActorDoc(srv.URL + "/users/alice")
		delete(doc, "publicKey")
		json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()
	actorUrl := srv.URL + "/users/alice"

	h.repo.EXPECT().GetCachedActor(actorUrl).Return("", false, nil)

	_, err := h.resolver.ResolveUrl(actorUrl)

	assert.ErrorIs(t, err, logic.ErrNoPublicKey)
}

func TestActorResolver_WebfingerLinkFiltering(t *testing.T) {

	h := setupActorHarness(t)

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := remoteActorDoc(srv.URL + "/users/alice")
		w.Header().Set("Content-Type", "application/activity+json")
		json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()
	actorUrl := srv.URL + "/users/alice"
	domain := srv.Listener.Addr().String()

	h.repo.EXPECT().GetCachedActor(gomock.Any()).Return("", false, nil).AnyTimes()
	h.repo.EXPECT().PutCachedActor(actorUrl, gomock.Any()).Return(nil)
	h.webfinger.EXPECT().Discover("alice", domain).Return(&dto.WebfingerResp{
		Subject: "acct:alice@" + domain,
		Links: []dto.WebfingerLink{
			{Rel: "http://webfinger.net/rel/profile-page", Type: "text/html", Href: srv.URL + "/@alice"},
			{Rel: "self", Type: "application/activity+json", Href: "java script:bad"},
			{Rel: "self", Type: "application/activity+json", Href: actorUrl},
		},
	}, nil)

	userInfo, err := h.resolver.Resolve("alice", domain)

	assert.Nil(t, err)
	assert.Equal(t, actorUrl, userInfo.Id)
}
