package logic

import (
	"github.com/spaolacci/murmur3"
	"net/url"
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/shared"
	"strings"
	"sync"
	"time"
)

var announceableTypes = map[string]bool{
	"Note":     true,
	"Page":     true,
	"Question": true,
	"Article":  true,
}

// Path fragments that mark a URL as an actual post
var statusPathFragments = []string{"/statuses/", "/objects/"}

// Path fragments that mark a URL as an actor profile
var actorPathFragments = []string{"/users/", "/u/", "/profile/", "/@", "/accounts/", "/channel/"}

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_announce_resolver.go -package mocks fedi_relay/logic IAnnounceResolver

// IAnnounceResolver validates a boosted remote post and returns it wrapped
// in a synthetic Create, or nil when the boost is dropped or rejected. A
// verdict is terminal per object URL: later announces of the same URL are
// answered from the cache without network access.
type IAnnounceResolver interface {
	Resolve(receivingUser string, announce *dto.ActivityInBase) (*dto.RawObject, error)
}

type announceResolver struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	fetcher IObjectFetcher
	filters IFilters
	metrics IMetrics
	muUrls  sync.Mutex
	urlMus  map[int64]*sync.Mutex
}

func NewAnnounceResolver(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	fetcher IObjectFetcher,
	filters IFilters,
	metrics IMetrics,
) IAnnounceResolver {
	return &announceResolver{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		fetcher: fetcher,
		filters: filters,
		metrics: metrics,
		urlMus:  map[int64]*sync.Mutex{},
	}
}

func (anr *announceResolver) Resolve(receivingUser string, announce *dto.ActivityInBase) (*dto.RawObject, error) {

	objectUrl, ok := announce.Object.(string)
	if !ok || objectUrl == "" {
		return nil, nil
	}

	// An actor boosting its own post is noise here; dropped without caching
	if strings.Contains(objectUrl, announce.Actor) || strings.Contains(announce.Actor, trimToActorUrl(objectUrl)) {
		return nil, nil
	}

	objectHash := int64(murmur3.Sum64([]byte(objectUrl)))

	// Concurrent announces of one URL must not race to fetch twice
	mu := anr.lockForUrl(objectHash)
	mu.Lock()
	defer mu.Unlock()

	verdict, err := anr.repo.GetBoostVerdict(receivingUser, objectHash)
	if err != nil {
		return nil, err
	}
	if verdict != nil {
		anr.metrics.BoostCacheHit()
		if verdict.Status == dal.BoostAccepted {
			return dto.LoadRawObject([]byte(verdict.ContentJson))
		}
		return nil, nil
	}

	accepted, cacheWorthy := anr.fetchAndValidate(receivingUser, announce, objectUrl)
	if accepted == nil {
		if cacheWorthy {
			anr.metrics.BoostRejected()
			anr.storeVerdict(receivingUser, objectHash, objectUrl, dal.BoostRejected, "")
		}
		return nil, nil
	}

	contentJson, err := accepted.Marshal()
	if err != nil {
		return nil, err
	}
	anr.metrics.BoostAccepted()
	anr.storeVerdict(receivingUser, objectHash, objectUrl, dal.BoostAccepted, string(contentJson))
	return accepted, nil
}

func (anr *announceResolver) lockForUrl(objectHash int64) *sync.Mutex {
	anr.muUrls.Lock()
	defer anr.muUrls.Unlock()
	mu, ok := anr.urlMus[objectHash]
	if !ok {
		mu = &sync.Mutex{}
		anr.urlMus[objectHash] = mu
	}
	return mu
}

func (anr *announceResolver) storeVerdict(user string, objectHash int64, objectUrl string, status int, contentJson string) {
	_, err := anr.repo.PutBoostVerdict(user, objectHash, &dal.BoostVerdict{
		ObjectUrl:   objectUrl,
		Status:      status,
		ContentJson: contentJson,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		anr.logger.Errorf("Failed to store boost verdict for %s: %v", objectUrl, err)
	}
}

// fetchAndValidate runs the rejection gate over a boosted object. A nil
// result with cacheWorthy=false means a silent drop that may be retried by
// a later announce; cacheWorthy=true makes the rejection permanent.
func (anr *announceResolver) fetchAndValidate(
	receivingUser string,
	announce *dto.ActivityInBase,
	objectUrl string,
) (accepted *dto.RawObject, cacheWorthy bool) {

	if nick, domain, ok := actorPartsFromUrl(announce.Actor); ok {
		if anr.filters.IsBlocked(nick, domain) {
			anr.logger.Infof("Rejecting boost by blocked actor %s@%s", nick, domain)
			return nil, true
		}
	}

	obj, err := anr.fetcher.FetchObject(objectUrl)
	if err != nil {
		anr.logger.Infof("Rejecting boost of %s: fetch failed: %v", objectUrl, err)
		return nil, true
	}
	if obj.Has("error") {
		return nil, true
	}
	objId := obj.MustGetString("id")
	if objId == "" {
		return nil, true
	}

	if !obj.Has("type") {
		return nil, true
	}
	videoToNote(obj)
	if !containsAny(objId, statusPathFragments) {
		return nil, true
	}
	attributedTo := obj.MustGetString("attributedTo")
	if !containsAny(attributedTo, actorPathFragments) {
		return nil, true
	}

	objType := obj.MustGetString("type")
	if !announceableTypes[objType] {
		return nil, true
	}

	if objType == "Question" {
		if !obj.Has("endTime") {
			return nil, true
		}
		oneOf, ok := obj.GetList("oneOf")
		if !ok {
			return nil, true
		}
		var options []string
		for _, item := range oneOf {
			if optMap, ok := item.(map[string]any); ok {
				if name, ok := optMap["name"].(string); ok {
					options = append(options, name)
				}
			}
		}
		if anr.filters.IsQuestionFiltered(obj.MustGetString("content"), options) {
			return nil, true
		}
	}

	content := obj.MustGetString("content")
	published := obj.MustGetString("published")
	if content == "" || published == "" {
		return nil, true
	}

	publishedTime, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return nil, true
	}
	windowDays := anr.cfg.Boosts.FreshnessWindowDays
	if time.Since(publishedTime) > time.Hour*24*time.Duration(windowDays) {
		return nil, true
	}

	// An unknown language may become understood later; not cache-worthy
	if !anr.languageUnderstood(obj) {
		return nil, false
	}

	summary := obj.MustGetString("summary")
	if anr.filters.DangerousMarkup(content) ||
		anr.filters.InvalidCiphertext(content) ||
		anr.filters.IsFiltered(content) ||
		anr.filters.IsFiltered(summary) {
		return nil, true
	}

	if nick, domain, ok := actorPartsFromUrl(attributedTo); ok {
		if anr.filters.IsBlocked(nick, domain) {
			return nil, true
		}
	}

	if anr.cfg.Boosts.VotesDisabled && objType == "Question" {
		return nil, false
	}

	return anr.wrapAccepted(obj, objectUrl, announce, content), true
}

// wrapAccepted scrubs the content and wraps the object in a synthetic
// Create. Both the activity id and the object id keep the original
// announced URL, so later lookups find it under the URL that was boosted.
func (anr *announceResolver) wrapAccepted(
	obj *dto.RawObject,
	objectUrl string,
	announce *dto.ActivityInBase,
	content string,
) *dto.RawObject {

	content = removeLongWords(content)
	content = collapseRepeatedWords(content)
	if anr.cfg.Boosts.StripFormatting {
		content = stripFormatting(content)
	}
	obj.Set("content", content)
	obj.Set("id", objectUrl)

	create := dto.NewRawObject(map[string]any{
		"@context":  "https://www.w3.org/ns/activitystreams",
		"id":        objectUrl,
		"type":      "Create",
		"actor":     obj.MustGetString("attributedTo"),
		"published": obj.MustGetString("published"),
		"to":        announce.To,
		"cc":        announce.Cc,
		"object":    obj.Data(),
	})
	return create
}

func (anr *announceResolver) languageUnderstood(obj *dto.RawObject) bool {
	understood := anr.cfg.Boosts.UnderstoodLanguages
	if len(understood) == 0 {
		return true
	}
	contentMap, ok := obj.GetObject("contentMap")
	if !ok {
		// No language tag; give it the benefit of the doubt
		return true
	}
	for _, lang := range understood {
		if contentMap.Has(lang) {
			return true
		}
	}
	return false
}

func containsAny(s string, fragments []string) bool {
	for _, frag := range fragments {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}

// actorPartsFromUrl extracts nickname and domain from an actor URL like
// https://example.social/users/alice.
func actorPartsFromUrl(actorUrl string) (nickname, domain string, ok bool) {
	parsed, err := url.Parse(actorUrl)
	if err != nil || parsed.Hostname() == "" {
		return "", "", false
	}
	path := strings.Trim(parsed.Path, "/")
	segments := strings.Split(path, "/")
	if len(segments) == 0 || segments[len(segments)-1] == "" {
		return "", "", false
	}
	nickname = strings.TrimPrefix(segments[len(segments)-1], "@")
	return nickname, parsed.Hostname(), true
}

// trimToActorUrl cuts a status URL down to its actor part, if recognizable.
func trimToActorUrl(objectUrl string) string {
	for _, frag := range statusPathFragments {
		if ix := strings.Index(objectUrl, frag); ix != -1 {
			return objectUrl[:ix]
		}
	}
	return objectUrl
}
