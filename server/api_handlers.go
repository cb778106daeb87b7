package server

import (
	"encoding/json"
	"net/http"
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/logic"
	"fedi_relay/shared"
	"time"
)

// apiHandlerGroup is the private control surface: delivery log inspection
// and broadcast triggering. Guarded by API keys from the secrets file.
type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	postLog logic.IPostLog
	fanout  logic.IFanoutScheduler
	idb     shared.IdBuilder
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	postLog logic.IPostLog,
	fanout logic.IFanoutScheduler,
) IHandlerGroup {
	return &apiHandlerGroup{cfg, logger, repo, postLog, fanout, shared.IdBuilder{Host: cfg.Host}}
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/delivery-log", func(w http.ResponseWriter, r *http.Request) { hg.getDeliveryLog(w, r) }},
		{"POST", "/broadcast", func(w http.ResponseWriter, r *http.Request) { hg.postBroadcast(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-KEY")
			keyOk := false
			for _, key := range hg.cfg.Secrets.ApiKeys {
				if apiKey == key {
					keyOk = true
				}
			}
			if !keyOk {
				hg.logger.Warnf("API request with missing or invalid key: %s", r.URL.Path)
				http.Error(w, unauthorizedStr, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (hg *apiHandlerGroup) getDeliveryLog(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(hg.logger, w, hg.postLog.Entries())
}

type broadcastReq struct {
	Content string `json:"content"`
	Summary string `json:"summary,omitempty"`
}

// postBroadcast publishes a note from the built-in account to the public
// collection plus all followers. Returns once fan-out is scheduled.
func (hg *apiHandlerGroup) postBroadcast(w http.ResponseWriter, r *http.Request) {

	var req broadcastReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		http.Error(w, badRequestStr, http.StatusBadRequest)
		return
	}

	user := hg.cfg.Account.User
	to := []string{shared.ActivityPublic}
	cc := []string{hg.idb.UserFollowers(user)}
	published := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	var summary *string
	if req.Summary != "" {
		summary = &req.Summary
	}
	note := dto.Note{
		Id:           hg.idb.UserStatus(user, hg.repo.GetNextId()),
		Type:         "Note",
		Published:    published,
		Summary:      summary,
		AttributedTo: hg.idb.UserUrl(user),
		To:           to,
		Cc:           cc,
		Content:      req.Content,
	}
	activity := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      note.Id + "/activity",
		Type:    "Create",
		Actor:   hg.idb.UserUrl(user),
		To:      &to,
		Cc:      &cc,
		Object:  &note,
	}
	hg.fanout.ScheduleFanout(user, &activity)
	w.WriteHeader(http.StatusAccepted)
}
