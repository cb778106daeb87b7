package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/shared"
	"strings"
)

const nameSentinel = "(unsafe display name removed)"

// Characters that have no business in a webfinger href.
const disallowedHrefChars = "<>\"'\\ \t"

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_resolver.go -package mocks fedi_relay/logic IActorResolver

// IActorResolver turns handles and actor URLs into actor records, serving
// from the person cache where possible. The cache has no TTL; a fresh fetch
// overwrites the stored document.
type IActorResolver interface {
	Resolve(nickname, domain string) (*dto.UserInfo, error)
	ResolveUrl(actorUrl string) (*dto.UserInfo, error)
}

type actorResolver struct {
	logger    shared.ILogger
	repo      dal.IRepo
	webfinger IWebfingerClient
	sessions  ISessions
	userAgent shared.IUserAgent
	filters   IFilters
	metrics   IMetrics
}

func NewActorResolver(
	logger shared.ILogger,
	repo dal.IRepo,
	webfinger IWebfingerClient,
	sessions ISessions,
	userAgent shared.IUserAgent,
	filters IFilters,
	metrics IMetrics,
) IActorResolver {
	return &actorResolver{logger, repo, webfinger, sessions, userAgent, filters, metrics}
}

func (ar *actorResolver) Resolve(nickname, domain string) (*dto.UserInfo, error) {

	// Conventional URL shapes first; a hit means no network at all
	siteUrl := shared.SiteUrlForDomain(domain)
	for _, candidate := range []string{
		siteUrl + "/users/" + nickname,
		siteUrl + "/u/" + nickname,
	} {
		if cached := ar.getCached(candidate); cached != nil {
			return cached, nil
		}
	}

	actorUrl, err := ar.discoverActorUrl(nickname, domain)
	if err != nil {
		// Single-user instances often only answer for their one account
		if nickname == "dev" {
			return ar.ResolveUrl(siteUrl + "/users/dev")
		}
		return nil, err
	}
	return ar.ResolveUrl(actorUrl)
}

func (ar *actorResolver) ResolveUrl(actorUrl string) (*dto.UserInfo, error) {

	if cached := ar.getCached(actorUrl); cached != nil {
		return cached, nil
	}

	docJson, err := ar.fetchActorDoc(actorUrl)
	if err != nil {
		return nil, err
	}
	userInfo, err := ar.extractActor(docJson)
	if err != nil {
		return nil, err
	}

	if err = ar.repo.PutCachedActor(userInfo.Id, string(docJson)); err != nil {
		ar.logger.Errorf("Failed to store actor %s in cache: %v", userInfo.Id, err)
	}
	return userInfo, nil
}

func (ar *actorResolver) getCached(actorUrl string) *dto.UserInfo {
	docJson, found, err := ar.repo.GetCachedActor(actorUrl)
	if err != nil {
		ar.logger.Errorf("Failed to read actor cache for %s: %v", actorUrl, err)
		return nil
	}
	if !found {
		return nil
	}
	userInfo, err := ar.extractActor([]byte(docJson))
	if err != nil {
		ar.logger.Warnf("Cached actor document for %s no longer parses: %v", actorUrl, err)
		return nil
	}
	return userInfo
}

// discoverActorUrl picks the actor URL out of a webfinger response. Links
// must be self links typed as ActivityPub JSON, and the href must be clean.
func (ar *actorResolver) discoverActorUrl(nickname, domain string) (string, error) {

	resp, err := ar.webfinger.Discover(nickname, domain)
	if err != nil {
		return "", err
	}
	for _, link := range resp.Links {
		if link.Rel != "self" {
			continue
		}
		if !strings.HasPrefix(link.Type, "application/activity+json") &&
			!strings.HasPrefix(link.Type, "application/ld+json") {
			continue
		}
		if link.Href == "" || strings.ContainsAny(link.Href, disallowedHrefChars) {
			continue
		}
		if !strings.HasPrefix(link.Href, "http") {
			continue
		}
		return link.Href, nil
	}
	return "", fmt.Errorf("%w: no usable self link for %s@%s", ErrWebfingerMalformed, nickname, domain)
}

// fetchActorDoc retrieves the actor document, retrying once with the
// alternate Accept header when the first choice is refused.
func (ar *actorResolver) fetchActorDoc(actorUrl string) ([]byte, error) {

	domain, err := shared.GetHostName(actorUrl)
	if err != nil {
		return nil, err
	}
	client, err := ar.sessions.ClientFor(domain)
	if err != nil {
		return nil, err
	}

	firstAccept := ContentTypeActivityJson
	if preferLdJson(domain) {
		firstAccept = ContentTypeLdJson
	}
	docJson, err := ar.getActorOnce(client, actorUrl, firstAccept)
	if err == nil {
		return docJson, nil
	}
	alternate := ContentTypeLdJson
	if firstAccept == ContentTypeLdJson {
		alternate = ContentTypeActivityJson
	}
	return ar.getActorOnce(client, actorUrl, alternate)
}

// preferLdJson guesses the Accept header a remote software family wants.
func preferLdJson(domain string) bool {
	return shared.GetDomainTransport(domain) != shared.TransportClearnet
}

func (ar *actorResolver) getActorOnce(client *http.Client, actorUrl, accept string) ([]byte, error) {

	req, err := http.NewRequest("GET", actorUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	ar.userAgent.AddUserAgent(req)

	obs := ar.metrics.StartApubRequestOut("get_actor")
	ar.sessions.Throttle()
	resp, err := client.Do(req)
	obs.Finish()
	if err != nil {
		if os.IsTimeout(err) {
			return nil, ErrActorTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("actor fetch returned status %d for %s", resp.StatusCode, actorUrl)
	}
	return io.ReadAll(resp.Body)
}

func (ar *actorResolver) extractActor(docJson []byte) (*dto.UserInfo, error) {

	var userInfo dto.UserInfo
	if err := json.Unmarshal(docJson, &userInfo); err != nil {
		return nil, err
	}
	raw, err := dto.LoadRawObject(docJson)
	if err != nil {
		return nil, err
	}

	if userInfo.Id == "" {
		return nil, ErrNoActorId
	}
	// Some software only advertises boxes under endpoints
	if userInfo.Inbox == "" {
		userInfo.Inbox = raw.MustGetString("endpoints.inbox")
	}
	if userInfo.Outbox == "" {
		userInfo.Outbox = raw.MustGetString("endpoints.outbox")
	}
	if userInfo.Inbox == "" && userInfo.BestSharedInbox() == "" {
		return nil, ErrNoInbox
	}
	if userInfo.PublicKey.PublicKeyPem == "" {
		return nil, ErrNoPublicKey
	}

	if userInfo.Name != "" {
		if ar.filters.DangerousMarkup(userInfo.Name) || ar.filters.IsFiltered(userInfo.Name) {
			userInfo.Name = nameSentinel
		}
	}
	return &userInfo, nil
}
