package logic

import (
	"encoding/json"
	"fmt"
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/shared"

	"github.com/google/uuid"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_directory.go -package mocks fedi_relay/logic IUserDirectory

// IUserDirectory serves the local account's public face and maintains its
// follower relationships.
type IUserDirectory interface {
	GetWebfingerResp(resource string) *dto.WebfingerResp
	GetUserInfo(user string) *dto.UserInfo
	GetFollowersSummary(user string) *dto.OrderedListSummary
	AcceptFollower(user, requestId string, followerInfo *dto.UserInfo) error
	RemoveFollower(user, followerUserUrl string) error
}

type userDirectory struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	worker  IDeliveryWorker
	metrics IMetrics
	idb     shared.IdBuilder
}

func NewUserDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	worker IDeliveryWorker,
	metrics IMetrics,
) IUserDirectory {
	return &userDirectory{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		worker:  worker,
		metrics: metrics,
		idb:     shared.IdBuilder{Host: cfg.Host},
	}
}

func (udir *userDirectory) GetWebfingerResp(resource string) *dto.WebfingerResp {

	user := udir.cfg.Account.User
	var candidates = []string{
		fmt.Sprintf("acct:%s@%s", user, udir.cfg.Host),
		udir.idb.UserUrl(user),
		udir.idb.UserUrlAlias(user),
	}
	matches := false
	for _, c := range candidates {
		if resource == c {
			matches = true
		}
	}
	if !matches {
		return nil
	}

	userUrl := udir.idb.UserUrl(user)
	return &dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, udir.cfg.Host),
		Aliases: []string{userUrl, udir.idb.UserUrlAlias(user)},
		Links: []dto.WebfingerLink{
			{Rel: "self", Type: "application/activity+json", Href: userUrl},
		},
	}
}

func (udir *userDirectory) GetUserInfo(user string) *dto.UserInfo {

	acct, err := udir.repo.GetAccount(user)
	if err != nil {
		udir.logger.Errorf("Failed to load account %s: %v", user, err)
		return nil
	}
	if acct == nil {
		return nil
	}

	return &dto.UserInfo{
		Context:           "https://www.w3.org/ns/activitystreams",
		Id:                udir.idb.UserUrl(user),
		Type:              "Person",
		PreferredUserName: acct.Handle,
		Name:              acct.Name,
		Summary:           acct.Summary,
		ManuallyApproves:  udir.cfg.Account.ManuallyApprovesFollows,
		Published:         acct.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Inbox:             udir.idb.UserInbox(user),
		Outbox:            udir.idb.UserOutbox(user),
		Followers:         udir.idb.UserFollowers(user),
		Following:         udir.idb.UserFollowing(user),
		Endpoints:         dto.UserEndpoints{SharedInbox: udir.idb.SharedInbox()},
		PublicKey: dto.PublicKey{
			Id:           udir.idb.UserKeyId(user),
			Owner:        udir.idb.UserUrl(user),
			PublicKeyPem: acct.PubKey,
		},
	}
}

func (udir *userDirectory) GetFollowersSummary(user string) *dto.OrderedListSummary {

	count, err := udir.repo.GetApprovedFollowerCount(user)
	if err != nil {
		udir.logger.Errorf("Failed to count followers of %s: %v", user, err)
		return nil
	}
	udir.metrics.TotalFollowers(int(count))
	return &dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowers(user),
		Type:       "OrderedCollection",
		TotalItems: count,
	}
}

// AcceptFollower records the new follower and delivers the Accept reply
// to their inbox. Delivery runs detached; a failed Accept is retried by
// the remote's own follow retry, not by us.
func (udir *userDirectory) AcceptFollower(user, requestId string, followerInfo *dto.UserInfo) error {

	host, err := shared.GetHostName(followerInfo.Id)
	if err != nil {
		return err
	}
	follower := &dal.FollowerInfo{
		RequestId:     requestId,
		ApproveStatus: 1,
		UserUrl:       followerInfo.Id,
		Handle:        followerInfo.PreferredUserName,
		Host:          host,
		UserInbox:     followerInfo.Inbox,
		SharedInbox:   followerInfo.BestSharedInbox(),
	}
	if udir.cfg.Account.ManuallyApprovesFollows {
		follower.ApproveStatus = 0
	}
	if err = udir.repo.AddFollower(user, follower); err != nil {
		return err
	}
	if follower.ApproveStatus != 1 {
		udir.logger.Infof("Follow request from %s awaits manual approval", followerInfo.Id)
		return nil
	}

	accept := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      udir.idb.ActivityUrl(uuid.NewString()),
		Type:    "Accept",
		Actor:   udir.idb.UserUrl(user),
		Object: map[string]any{
			"id":     requestId,
			"type":   "Follow",
			"actor":  followerInfo.Id,
			"object": udir.idb.UserUrl(user),
		},
	}
	body, err := json.Marshal(&accept)
	if err != nil {
		return err
	}
	target := &DeliveryTarget{
		InboxUrl:   followerInfo.Inbox,
		ToNickname: followerInfo.PreferredUserName,
		ToDomain:   host,
	}
	go udir.worker.Deliver(user, target, body)
	return nil
}

func (udir *userDirectory) RemoveFollower(user, followerUserUrl string) error {
	return udir.repo.RemoveFollower(user, followerUserUrl)
}
