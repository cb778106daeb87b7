package logic

import (
	"encoding/json"
	"fmt"
	"fedi_relay/dal"
	"fedi_relay/dto"
	"fedi_relay/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks fedi_relay/logic IInbox

// IInbox processes one incoming, already signature-checked activity.
// The activity kind is decoded once here; handlers receive typed data.
type IInbox interface {
	Handle(receivingUser string, senderInfo *dto.UserInfo, bodyBytes []byte) error
}

type inbox struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	udir      IUserDirectory
	announces IAnnounceResolver
	metrics   IMetrics
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	udir IUserDirectory,
	announces IAnnounceResolver,
	metrics IMetrics,
) IInbox {
	return &inbox{cfg, logger, repo, udir, announces, metrics}
}

func (ib *inbox) Handle(receivingUser string, senderInfo *dto.UserInfo, bodyBytes []byte) error {

	var activity dto.ActivityInBase
	if err := json.Unmarshal(bodyBytes, &activity); err != nil {
		return fmt.Errorf("failed to parse activity: %v", err)
	}
	kind := dto.ParseActivityKind(activity.Type)

	if activity.Id != "" {
		alreadyHandled, err := ib.repo.MarkActivityHandled(activity.Id, time.Now().UTC())
		if err != nil {
			return err
		}
		if alreadyHandled {
			ib.logger.Infof("Ignoring already handled activity %s", activity.Id)
			return nil
		}
	}

	switch kind {
	case dto.KindFollow:
		return ib.handleFollow(receivingUser, senderInfo, &activity)
	case dto.KindUndo:
		return ib.handleUndo(receivingUser, senderInfo, bodyBytes)
	case dto.KindAnnounce:
		return ib.handleAnnounce(receivingUser, &activity)
	case dto.KindUnknown:
		ib.logger.Infof("Ignoring activity of unknown type '%s' from %s", activity.Type, activity.Actor)
		return nil
	default:
		ib.logger.Debugf("No handler for %s activity from %s", kind, activity.Actor)
		return nil
	}
}

func (ib *inbox) handleFollow(receivingUser string, senderInfo *dto.UserInfo, activity *dto.ActivityInBase) error {

	followedUrl, ok := activity.Object.(string)
	if !ok {
		return fmt.Errorf("follow object is not a string")
	}
	idb := shared.IdBuilder{Host: ib.cfg.Host}
	if followedUrl != idb.UserUrl(receivingUser) && followedUrl != idb.UserUrlAlias(receivingUser) {
		return fmt.Errorf("follow addressed to %s but object is %s", receivingUser, followedUrl)
	}
	return ib.udir.AcceptFollower(receivingUser, activity.Id, senderInfo)
}

func (ib *inbox) handleUndo(receivingUser string, senderInfo *dto.UserInfo, bodyBytes []byte) error {

	var activity dto.ActivityIn[dto.ActivityInBase]
	if err := json.Unmarshal(bodyBytes, &activity); err != nil {
		return fmt.Errorf("failed to parse undo activity: %v", err)
	}
	if dto.ParseActivityKind(activity.Object.Type) != dto.KindFollow {
		ib.logger.Debugf("Ignoring undo of %s from %s", activity.Object.Type, activity.Actor)
		return nil
	}
	return ib.udir.RemoveFollower(receivingUser, senderInfo.Id)
}

func (ib *inbox) handleAnnounce(receivingUser string, activity *dto.ActivityInBase) error {

	accepted, err := ib.announces.Resolve(receivingUser, activity)
	if err != nil {
		return err
	}
	if accepted == nil {
		ib.logger.Debugf("Boost from %s yielded nothing", activity.Actor)
		return nil
	}
	ib.logger.Infof("Accepted boost of %s from %s", accepted.MustGetString("id"), activity.Actor)
	return nil
}
