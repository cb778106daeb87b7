package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"fedi_relay/shared"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks fedi_relay/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64
	DoesAccountExist(user string) (bool, error)
	GetAccount(user string) (*Account, error)
	GetPrivKey(user string) (string, error)
	GetApprovedFollowerCount(user string) (uint, error)
	GetFollowersByUser(user string, onlyApproved bool) ([]*FollowerInfo, error)
	SetFollowerApproveStatus(user, followerUserUrl string, status int) error
	AddFollower(user string, follower *FollowerInfo) error
	RemoveFollower(user, followerUserUrl string) error
	MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error)
	GetCachedActor(actorUrl string) (docJson string, found bool, err error)
	PutCachedActor(actorUrl, docJson string) error
	GetBoostVerdict(user string, objectHash int64) (*BoostVerdict, error)
	PutBoostVerdict(user string, objectHash int64, verdict *BoostVerdict) (stored bool, err error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}

	if dbVer == 0 {
		repo.mustAddBuiltInUsers()
	}
}

func (repo *Repo) mustAddBuiltInUsers() {

	idb := shared.IdBuilder{Host: repo.cfg.Host}

	_, err := repo.db.Exec(`INSERT INTO accounts
    	(created_at, user_url, handle, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?)`,
		repo.cfg.Account.Published, idb.UserUrl(repo.cfg.Account.User),
		repo.cfg.Account.User, repo.cfg.Account.PubKey, repo.cfg.Account.PrivKey)

	if err != nil {
		repo.logger.Errorf("Failed to add built-in user '%s': %v", repo.cfg.Account.User, err)
		panic(err)
	}
}

func (repo *Repo) DoesAccountExist(user string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE handle=?`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) GetAccount(user string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(user)
}

func (repo *Repo) getAccount(user string) (*Account, error) {

	row := repo.db.QueryRow(
		`SELECT id, created_at, user_url, handle, name, summary, pubkey
		FROM accounts WHERE handle=?`, user)
	var err error
	var res Account
	err = row.Scan(&res.Id, &res.CreatedAt, &res.UserUrl, &res.Handle, &res.Name, &res.Summary, &res.PubKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) GetPrivKey(user string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM accounts WHERE handle=?`, user)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) GetApprovedFollowerCount(user string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM followers JOIN accounts
		ON followers.account_id=accounts.id AND accounts.handle=?
		WHERE followers.approve_status=1`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetFollowersByUser(user string, onlyApproved bool) ([]*FollowerInfo, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT followers.request_id, followers.approve_status, followers.user_url, followers.handle,
			host, user_inbox, shared_inbox
		FROM followers JOIN accounts ON followers.account_id=accounts.id AND accounts.handle=?`
	if onlyApproved {
		query += ` WHERE followers.approve_status=1`
	}
	rows, err := repo.db.Query(query, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*FollowerInfo
	for rows.Next() {
		f := FollowerInfo{}
		err = rows.Scan(&f.RequestId, &f.ApproveStatus, &f.UserUrl, &f.Handle, &f.Host, &f.UserInbox, &f.SharedInbox)
		if err != nil {
			return nil, err
		}
		res = append(res, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetFollowerApproveStatus(user, followerUserUrl string, status int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	acct, err := repo.getAccount(user)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("no such account: %s", user)
	}
	_, err = repo.db.Exec(`UPDATE followers SET approve_status=? WHERE account_id=? AND user_url=?`,
		status, acct.Id, followerUserUrl)
	return err
}

func (repo *Repo) AddFollower(user string, follower *FollowerInfo) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	acct, err := repo.getAccount(user)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("no such account: %s", user)
	}
	_, err = repo.db.Exec(`INSERT INTO followers
		(account_id, request_id, approve_status, user_url, handle, host, user_inbox, shared_inbox)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_id, user_url) DO UPDATE SET request_id=excluded.request_id`,
		acct.Id, follower.RequestId, follower.ApproveStatus, follower.UserUrl, follower.Handle,
		follower.Host, follower.UserInbox, follower.SharedInbox)
	return err
}

func (repo *Repo) RemoveFollower(user, followerUserUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	acct, err := repo.getAccount(user)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("no such account: %s", user)
	}
	_, err = repo.db.Exec(`DELETE FROM followers WHERE account_id=? AND user_url=?`,
		acct.Id, followerUserUrl)
	return err
}

func (repo *Repo) MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	alreadyHandled = false
	err = nil

	_, err = repo.db.Exec(`INSERT INTO handled_activities VALUES (?, ?)`, id, when)

	if err == nil {
		return
	}
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		// Duplicate key: activity already seen
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 1555 {
			alreadyHandled = true
			err = nil
		}
	}
	return
}

func (repo *Repo) GetCachedActor(actorUrl string) (docJson string, found bool, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT doc_json FROM actor_cache WHERE actor_url=?`, actorUrl)
	err = row.Scan(&docJson)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return docJson, true, nil
}

func (repo *Repo) PutCachedActor(actorUrl, docJson string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO actor_cache (actor_url, doc_json, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT (actor_url) DO UPDATE SET doc_json=excluded.doc_json, fetched_at=excluded.fetched_at`,
		actorUrl, docJson, time.Now().UTC())
	return err
}

func (repo *Repo) GetBoostVerdict(user string, objectHash int64) (*BoostVerdict, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	acct, err := repo.getAccount(user)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, fmt.Errorf("no such account: %s", user)
	}
	row := repo.db.QueryRow(`SELECT object_url, status, content_json, created_at
		FROM boost_verdicts WHERE account_id=? AND object_hash=?`, acct.Id, objectHash)
	var res BoostVerdict
	err = row.Scan(&res.ObjectUrl, &res.Status, &res.ContentJson, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// PutBoostVerdict stores a verdict unless one already exists: a verdict is
// terminal for a given object URL, so the first writer wins.
func (repo *Repo) PutBoostVerdict(user string, objectHash int64, verdict *BoostVerdict) (stored bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	acct, err := repo.getAccount(user)
	if err != nil {
		return false, err
	}
	if acct == nil {
		return false, fmt.Errorf("no such account: %s", user)
	}
	res, err := repo.db.Exec(`INSERT OR IGNORE INTO boost_verdicts
		(account_id, object_hash, object_url, status, content_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		acct.Id, objectHash, verdict.ObjectUrl, verdict.Status, verdict.ContentJson, verdict.CreatedAt)
	if err != nil {
		return false, err
	}
	rowCount, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}
