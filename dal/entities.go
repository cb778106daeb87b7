package dal

import (
	"time"
)

type Account struct {
	Id        int
	CreatedAt time.Time
	UserUrl   string // https://relay.example/u/alice
	Handle    string // alice
	Name      string
	Summary   string
	PubKey    string
}

type FollowerInfo struct {
	RequestId     string // ID of the follow request activity; needed for approve reply
	ApproveStatus int    // 0: unapproved, 1: approved, negative: banned
	UserUrl       string // https://genart.social/users/twilliability
	Handle        string // twilliability
	Host          string // genart.social
	UserInbox     string // https://genart.social/users/twilliability/inbox
	SharedInbox   string // https://genart.social/inbox
}

// CachedActor is one entry of the person cache. Entries have no TTL;
// invalidation is an explicit overwrite after a fresh fetch.
type CachedActor struct {
	ActorUrl  string
	DocJson   string
	FetchedAt time.Time
}

const (
	BoostAccepted = 1
	BoostRejected = 2
)

// BoostVerdict is the terminal outcome of resolving one announced object.
// Status is BoostAccepted or BoostRejected; ContentJson is only set for
// accepted objects.
type BoostVerdict struct {
	ObjectUrl   string
	Status      int
	ContentJson string
	CreatedAt   time.Time
}
