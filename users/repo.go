package users

// AccountRepo stores the mock backend's accounts.
type AccountRepo interface {
	Upsert(account *Account) error
	GetByEmail(email string) (*Account, error)
	GetByID(id int64) (*Account, error)
	List(offset, limit int) ([]*Account, error)
}
