package logic

import (
	"fmt"
	"sync"
	"time"
)

// Keep it small; this is debug visibility, not an audit trail.
const postLogCapacity = 16

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_post_log.go -package mocks fedi_relay/logic IPostLog

// IPostLog is a bounded in-memory record of recent delivery attempts.
// Oldest entries are evicted first.
type IPostLog interface {
	Add(format string, args ...any)
	Entries() []string
}

type postLog struct {
	mu      sync.Mutex
	entries []string
}

func NewPostLog() IPostLog {
	return &postLog{}
}

func (pl *postLog) Add(format string, args ...any) {
	line := time.Now().UTC().Format("2006-01-02 15:04:05") + " " + fmt.Sprintf(format, args...)
	pl.mu.Lock()
	pl.entries = append(pl.entries, line)
	if len(pl.entries) > postLogCapacity {
		pl.entries = pl.entries[len(pl.entries)-postLogCapacity:]
	}
	pl.mu.Unlock()
}

func (pl *postLog) Entries() []string {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	res := make([]string, len(pl.entries))
	copy(res, pl.entries)
	return res
}
