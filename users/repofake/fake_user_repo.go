package fakeuserrepo

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/jrsteele09/go-colten/users"
)

var _ users.AccountRepo = (*FakeAccountRepo)(nil)

var ErrNotFound = errors.New("not found")

type FakeAccountRepo struct {
	accounts map[int64]*users.Account
	emailIds map[string]int64 // lower-cased email to account id
	nextID   int64
	lock     sync.RWMutex
}

func NewFakeAccountRepo() *FakeAccountRepo {
	return &FakeAccountRepo{
		accounts: make(map[int64]*users.Account),
		emailIds: make(map[string]int64),
		nextID:   1,
	}
}

// Upsert stores account, assigning the next sequential ID when it has none.
func (ar *FakeAccountRepo) Upsert(account *users.Account) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if account.ID == 0 {
		account.ID = ar.nextID
	}
	if account.ID >= ar.nextID {
		ar.nextID = account.ID + 1
	}
	ar.accounts[account.ID] = account
	ar.emailIds[strings.ToLower(account.Email)] = account.ID
	return nil
}

func (ar *FakeAccountRepo) GetByEmail(email string) (*users.Account, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	id, ok := ar.emailIds[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return ar.accounts[id], nil
}

func (ar *FakeAccountRepo) GetByID(id int64) (*users.Account, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	account, ok := ar.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return account, nil
}

func (ar *FakeAccountRepo) List(offset, limit int) ([]*users.Account, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	list := make([]*users.Account, 0, len(ar.accounts))
	for _, v := range ar.accounts {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}
