package test

import (
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/logic"
	"fedi_relay/test/mocks"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fanoutHarness struct {
	repo     *mocks.MockIRepo
	resolver *mocks.MockIActorResolver
	probe    *mocks.MockISiteProbe
	worker   *mocks.MockIDeliveryWorker
	fanout   logic.IFanoutScheduler

	mu        sync.Mutex
	delivered []string
	targets   []*logic.DeliveryTarget
}

func setupFanoutHarness(t *testing.T) *fanoutHarness {

	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	h := &fanoutHarness{
		repo:     mocks.NewMockIRepo(ctrl),
		resolver: mocks.NewMockIActorResolver(ctrl),
		probe:    mocks.NewMockISiteProbe(ctrl),
		worker:   mocks.NewMockIDeliveryWorker(ctrl),
	}
	h.fanout = logic.NewFanoutScheduler(
		cfg, quietLogger(ctrl), h.repo, h.resolver, h.probe, h.worker, quietMetrics(ctrl))
	return h
}

// recordDeliveries makes the worker mock collect every inbox URL it is
// handed. Deliveries run on pool goroutines, hence the lock.
func (h *fanoutHarness) recordDeliveries() {
	h.worker.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(user string, target *logic.DeliveryTarget, body []byte) *logic.DeliveryOutcome {
			h.mu.Lock()
			h.delivered = append(h.delivered, target.InboxUrl)
			h.targets = append(h.targets, target)
			h.mu.Unlock()
			return &logic.DeliveryOutcome{InboxUrl: target.InboxUrl, Succeeded: true}
		}).
		AnyTimes()
}

func (h *fanoutHarness) deliveredUrls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]string, len(h.delivered))
	copy(res, h.delivered)
	sort.Strings(res)
	return res
}

func publicActivity(user string) *dto.ActivityOut {
	to := []string{"https://www.w3.org/ns/activitystreams#Public"}
	cc := []string{"https://relay.example/u/" + user + "/followers"}
	return &dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      "https://relay.example/u/" + user + "/status/1/activity",
		Type:    "Create",
		Actor:   "https://relay.example/u/" + user,
		To:      &to,
		Cc:      &cc,
	}
}

func follower(handle, host, sharedInbox string) *dal.FollowerInfo {
	return &dal.FollowerInfo{
		ApproveStatus: 1,
		UserUrl:       "https://" + host + "/users/" + handle,
		Handle:        handle,
		Host:          host,
		UserInbox:     "https://" + host + "/users/" + handle + "/inbox",
		SharedInbox:   sharedInbox,
	}
}

func TestFanout_SharedInboxConsolidation(t *testing.T) {

	h := setupFanoutHarness(t)
	h.recordDeliveries()

	h.repo.EXPECT().GetFollowersByUser("birb", true).Return([]*dal.FollowerInfo{
		follower("bob", "b.example", "https://b.example/inbox"),
		follower("carol", "b.example", "https://b.example/inbox"),
		follower("erin", "b.example", "https://b.example/inbox"),
	}, nil)
	h.probe.EXPECT().IsActive("b.example").Return(true)

	h.fanout.RunFanout("birb", publicActivity("birb"))

	assert.Equal(t, []string{"https://b.example/inbox"}, h.deliveredUrls())
}

func TestFanout_EndToEndScenario(t *testing.T) {

	h := setupFanoutHarness(t)
	h.recordDeliveries()

	h.repo.EXPECT().GetFollowersByUser("alice", true).Return([]*dal.FollowerInfo{
		follower("bob", "b.example", "https://b.example/inbox"),
		follower("carol", "b.example", "https://b.example/inbox"),
		follower("dave", "c.example", ""),
	}, nil)
	h.probe.EXPECT().IsActive("b.example").Return(true)
	h.probe.EXPECT().IsActive("c.example").Return(true)
	// c.example advertises no shared inbox via either conventional handle
	h.resolver.EXPECT().Resolve(gomock.Any(), "c.example").
		Return(nil, logic.ErrWebfingerFailed).Times(2)

	h.fanout.RunFanout("alice", publicActivity("alice"))

	assert.Equal(t, []string{
		"https://b.example/inbox",
		"https://c.example/users/dave/inbox",
	}, h.deliveredUrls())
}

func TestFanout_SkipsUnreachableDomain(t *testing.T) {

	h := setupFanoutHarness(t)
	h.recordDeliveries()

	h.repo.EXPECT().GetFollowersByUser("birb", true).Return([]*dal.FollowerInfo{
		follower("bob", "down.example", "https://down.example/inbox"),
		follower("carol", "up.example", "https://up.example/inbox"),
		follower("erin", "up.example", "https://up.example/inbox"),
	}, nil)
	h.probe.EXPECT().IsActive("down.example").Return(false)
	h.probe.EXPECT().IsActive("up.example").Return(true)

	h.fanout.RunFanout("birb", publicActivity("birb"))

	assert.Equal(t, []string{"https://up.example/inbox"}, h.deliveredUrls())
}

func (h *fanoutHarness) deliveredTargets() []*logic.DeliveryTarget {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]*logic.DeliveryTarget, len(h.targets))
	copy(res, h.targets)
	return res
}

func TestFanout_NamedAddresseesDeduplicated(t *testing.T) {

	h := setupFanoutHarness(t)
	h.recordDeliveries()
	h.repo.EXPECT().GetFollowersByUser("birb", true).Return(nil, nil)

	// The same actor under two URL shapes, plus the sender's own alias
	to := []string{
		"https://x.example/users/frank",
		"https://x.example/u/frank",
		"https://relay.example/users/birb",
	}
	activity := &dto.ActivityOut{
		Id:    "https://relay.example/u/birb/status/2/activity",
		Type:  "Create",
		Actor: "https://relay.example/u/birb",
		To:    &to,
	}

	h.resolver.EXPECT().ResolveUrl(gomock.Any()).
		Return(&dto.UserInfo{
			Id:                "https://x.example/users/frank",
			PreferredUserName: "frank",
			Inbox:             "https://x.example/users/frank/inbox",
			PublicKey:         dto.PublicKey{PublicKeyPem: "pem"},
		}, nil).
		Times(1)

	h.fanout.RunFanout("birb", activity)

	assert.Equal(t, []string{"https://x.example/users/frank/inbox"}, h.deliveredUrls())
}

func TestFanout_SyncHeaderOnEveryDelivery(t *testing.T) {

	h := setupFanoutHarness(t)
	h.recordDeliveries()

	h.repo.EXPECT().GetFollowersByUser("birb", true).Return([]*dal.FollowerInfo{
		follower("bob", "b.example", "https://b.example/inbox"),
		follower("carol", "b.example", "https://b.example/inbox"),
	}, nil)
	h.probe.EXPECT().IsActive("b.example").Return(true)
	h.resolver.EXPECT().ResolveUrl("https://x.example/users/frank").
		Return(&dto.UserInfo{
			Id:                "https://x.example/users/frank",
			PreferredUserName: "frank",
			Inbox:             "https://x.example/users/frank/inbox",
			PublicKey:         dto.PublicKey{PublicKeyPem: "pem"},
		}, nil)

	activity := publicActivity("birb")
	named := append(*activity.To, "https://x.example/users/frank")
	activity.To = &named

	h.fanout.RunFanout("birb", activity)

	targets := h.deliveredTargets()
	assert.Len(t, targets, 2)
	for _, target := range targets {
		header := target.ExtraHeaders["Collection-Synchronization"]
		assert.Contains(t, header, `collectionId="https://relay.example/u/birb/followers"`)
		assert.Contains(t, header, `digest="`)
	}
}
