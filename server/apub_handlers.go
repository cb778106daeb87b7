package server

import (
	"io"
	"net/http"
	"fedi_relay/logic"
	"fedi_relay/shared"

	"github.com/gorilla/mux"
)

// Incoming POST bodies larger than this are refused outright.
const maxInboxBodyBytes = 256 * 1024

type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	sigChecker logic.IHttpSigChecker
	udir       logic.IUserDirectory
	inbox      logic.IInbox
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	sigChecker logic.IHttpSigChecker,
	udir logic.IUserDirectory,
	inbox logic.IInbox,
) IHandlerGroup {
	return &apubHandlerGroup{cfg, logger, metrics, sigChecker, udir, inbox}
}

func (hg *apubHandlerGroup) Prefix() string {
	return "/"
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/u/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/users/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/u/{user}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getFollowers(w, r) }},
		{"POST", "/u/{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postSharedInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resource := r.URL.Query().Get("resource")
	resp := hg.udir.GetWebfingerResp(resource)
	if resp == nil {
		http.Error(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApubRequestIn("get_user")
	defer obs.Finish()

	user := mux.Vars(r)["user"]
	userInfo := hg.udir.GetUserInfo(user)
	if userInfo == nil {
		http.Error(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeActivityJsonResponse(hg.logger, w, userInfo)
}

func (hg *apubHandlerGroup) getFollowers(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApubRequestIn("get_followers")
	defer obs.Finish()

	user := mux.Vars(r)["user"]
	summary := hg.udir.GetFollowersSummary(user)
	if summary == nil {
		http.Error(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeActivityJsonResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	hg.handleInboxPost(w, r, user)
}

func (hg *apubHandlerGroup) postSharedInbox(w http.ResponseWriter, r *http.Request) {
	hg.handleInboxPost(w, r, hg.cfg.Account.User)
}

func (hg *apubHandlerGroup) handleInboxPost(w http.ResponseWriter, r *http.Request, user string) {

	obs := hg.metrics.StartApubRequestIn("post_inbox")
	defer obs.Finish()

	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxInboxBodyBytes))
	if err != nil {
		http.Error(w, badRequestStr, http.StatusBadRequest)
		return
	}

	senderInfo, ok := hg.sigChecker.Check(w, r)
	if !ok {
		// Check has already written the error response
		return
	}

	if err = hg.inbox.Handle(user, senderInfo, bodyBytes); err != nil {
		hg.logger.Infof("Inbox handling failed for %s: %v", user, err)
		http.Error(w, badRequestStr, http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
