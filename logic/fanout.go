package logic

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/shared"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_fanout.go -package mocks fedi_relay/logic IFanoutScheduler

// IFanoutScheduler partitions an activity's recipients and hands each
// destination to a delivery worker. ScheduleFanout returns right away;
// RunFanout blocks until every delivery has reached a terminal state.
type IFanoutScheduler interface {
	ScheduleFanout(sendingUser string, activity *dto.ActivityOut)
	RunFanout(sendingUser string, activity *dto.ActivityOut)
}

type fanoutScheduler struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	resolver  IActorResolver
	probe     ISiteProbe
	worker    IDeliveryWorker
	metrics   IMetrics
	idb       shared.IdBuilder
	semaphore chan struct{}
	muSem     sync.Mutex
	inFlight  int
}

func NewFanoutScheduler(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	probe ISiteProbe,
	worker IDeliveryWorker,
	metrics IMetrics,
) IFanoutScheduler {
	return &fanoutScheduler{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		resolver:  resolver,
		probe:     probe,
		worker:    worker,
		metrics:   metrics,
		idb:       shared.IdBuilder{Host: cfg.Host},
		semaphore: make(chan struct{}, cfg.Delivery.MaxParallelSends),
	}
}

func (fs *fanoutScheduler) ScheduleFanout(sendingUser string, activity *dto.ActivityOut) {
	go fs.RunFanout(sendingUser, activity)
}

func (fs *fanoutScheduler) RunFanout(sendingUser string, activity *dto.ActivityOut) {

	body, err := json.Marshal(activity)
	if err != nil {
		fs.logger.Errorf("Cannot serialize activity %s: %v", activity.Id, err)
		return
	}

	followersUrl := fs.idb.UserFollowers(sendingUser)
	recipients := gatherRecipients(activity)
	isBroadcast := false
	var named []string
	for _, addr := range recipients {
		if addr == shared.ActivityPublic || addr == followersUrl {
			isBroadcast = true
			continue
		}
		named = append(named, addr)
	}
	named = fs.dedupeAddressees(sendingUser, named)
	rand.Shuffle(len(named), func(i, j int) { named[i], named[j] = named[j], named[i] })

	// Followers drive both the broadcast targets and the per-domain
	// Collection-Synchronization digest on named sends.
	followers, err := fs.repo.GetFollowersByUser(sendingUser, true)
	if err != nil {
		fs.logger.Errorf("Cannot load followers of %s: %v", sendingUser, err)
		followers = nil
	}
	fs.metrics.TotalFollowers(len(followers))
	byDomain := map[string][]*dal.FollowerInfo{}
	var domains []string
	for _, f := range followers {
		if _, ok := byDomain[f.Host]; !ok {
			domains = append(domains, f.Host)
		}
		byDomain[f.Host] = append(byDomain[f.Host], f)
	}

	var wg sync.WaitGroup
	for _, addr := range named {
		fs.scheduleNamed(&wg, sendingUser, addr, followersUrl, byDomain, body)
	}
	if isBroadcast {
		fs.fanoutToFollowers(&wg, sendingUser, followersUrl, domains, byDomain, body)
	}
	wg.Wait()
}

func gatherRecipients(activity *dto.ActivityOut) []string {
	var res []string
	if activity.To != nil {
		res = append(res, *activity.To...)
	}
	if activity.Cc != nil {
		res = append(res, *activity.Cc...)
	}
	return res
}

// dedupeAddressees removes duplicates and the sender's own aliases. The same
// actor is often addressable under two URL shapes.
func (fs *fanoutScheduler) dedupeAddressees(sendingUser string, addressees []string) []string {
	selfUrls := map[string]bool{
		fs.idb.UserUrl(sendingUser):      true,
		fs.idb.UserUrlAlias(sendingUser): true,
	}
	seen := map[string]bool{}
	var res []string
	for _, addr := range addressees {
		canonical := strings.Replace(addr, "/users/", "/u/", 1)
		if selfUrls[addr] || selfUrls[canonical] {
			continue
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		res = append(res, addr)
	}
	return res
}

func (fs *fanoutScheduler) scheduleNamed(wg *sync.WaitGroup, sendingUser, actorUrl, followersUrl string,
	byDomain map[string][]*dal.FollowerInfo, body []byte) {

	userInfo, err := fs.resolver.ResolveUrl(actorUrl)
	if err != nil {
		fs.logger.Infof("Skipping addressee %s: %v", actorUrl, err)
		fs.metrics.TargetSkipped("resolve_failed")
		return
	}
	domain, err := shared.GetHostName(userInfo.Id)
	if err != nil {
		fs.metrics.TargetSkipped("bad_actor_url")
		return
	}
	inbox := userInfo.Inbox
	if inbox == "" {
		inbox = userInfo.BestSharedInbox()
	}
	syncHeader := fs.collectionSyncHeader(followersUrl, domain, byDomain[domain])
	target := &DeliveryTarget{
		InboxUrl:     inbox,
		ToNickname:   userInfo.PreferredUserName,
		ToDomain:     domain,
		GroupAccount: userInfo.IsGroup(),
		ExtraHeaders: map[string]string{"Collection-Synchronization": syncHeader},
	}
	fs.admit(wg, sendingUser, target, body)
}

func (fs *fanoutScheduler) fanoutToFollowers(wg *sync.WaitGroup, sendingUser, followersUrl string,
	domains []string, byDomain map[string][]*dal.FollowerInfo, body []byte) {

	first := true
	for _, domain := range domains {
		if !first {
			time.Sleep(time.Second * time.Duration(fs.cfg.Delivery.DomainPauseSec))
		}
		first = false

		group := byDomain[domain]
		if !fs.probe.IsActive(domain) {
			fs.logger.Infof("Skipping %d follower(s) on %s: instance not reachable", len(group), domain)
			fs.metrics.TargetSkipped("instance_down")
			continue
		}

		syncHeader := fs.collectionSyncHeader(followersUrl, domain, group)
		sharedInbox := fs.findSharedInbox(domain, group)
		if sharedInbox != "" && len(group) > 1 {
			target := &DeliveryTarget{
				InboxUrl:            sharedInbox,
				ToDomain:            domain,
				SharedInboxEligible: true,
				ExtraHeaders:        map[string]string{"Collection-Synchronization": syncHeader},
			}
			fs.admit(wg, sendingUser, target, body)
			continue
		}

		rand.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		for _, f := range group {
			target := &DeliveryTarget{
				InboxUrl:     f.UserInbox,
				ToNickname:   f.Handle,
				ToDomain:     f.Host,
				ExtraHeaders: map[string]string{"Collection-Synchronization": syncHeader},
			}
			fs.admit(wg, sendingUser, target, body)
		}
	}
}

// findSharedInbox returns the domain's shared inbox, or empty. A recorded
// follower value wins; otherwise two conventional handles are webfingered.
func (fs *fanoutScheduler) findSharedInbox(domain string, group []*dal.FollowerInfo) string {
	for _, f := range group {
		if f.SharedInbox != "" {
			return f.SharedInbox
		}
	}
	for _, nickname := range []string{domain, "inbox"} {
		userInfo, err := fs.resolver.Resolve(nickname, domain)
		if err != nil {
			continue
		}
		if si := userInfo.BestSharedInbox(); si != "" {
			return si
		}
	}
	return ""
}

// collectionSyncHeader is a best-effort reconciliation aid carrying a hash
// of the sender's follower list for the destination domain.
func (fs *fanoutScheduler) collectionSyncHeader(followersUrl, domain string, group []*dal.FollowerInfo) string {
	urls := make([]string, 0, len(group))
	for _, f := range group {
		urls = append(urls, f.UserUrl)
	}
	sort.Strings(urls)
	hash := sha256.New()
	for _, u := range urls {
		hash.Write([]byte(u))
	}
	digest := fmt.Sprintf("%x", hash.Sum(nil))
	partialUrl := followersUrl + "?domain=" + domain
	return fmt.Sprintf(`collectionId="%s", url="%s", digest="%s"`, followersUrl, partialUrl, digest)
}

// admit runs one delivery on the bounded pool. Admission blocks when the
// pool is full; running work is never terminated.
func (fs *fanoutScheduler) admit(wg *sync.WaitGroup, sendingUser string, target *DeliveryTarget, body []byte) {
	fs.metrics.FanoutTargets(1)
	wg.Add(1)
	fs.semaphore <- struct{}{}
	fs.trackInFlight(1)
	go func() {
		defer func() {
			<-fs.semaphore
			fs.trackInFlight(-1)
			wg.Done()
		}()
		fs.worker.Deliver(sendingUser, target, body)
	}()
}

func (fs *fanoutScheduler) trackInFlight(delta int) {
	fs.muSem.Lock()
	fs.inFlight += delta
	fs.metrics.ParallelSends(fs.inFlight)
	fs.muSem.Unlock()
}
