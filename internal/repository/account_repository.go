package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-portal/internal/models"
)

// FindAccount returns the account matching both id and role, or nil. Lookup
// ignores insertion order; the composite (id, role) is the only key.
func FindAccount(accounts []models.Account, id string, role models.Role) *models.Account {
	for i := range accounts {
		if accounts[i].ID == id && accounts[i].Role == role {
			return &accounts[i]
		}
	}
	return nil
}

// AccountRepository persists the account store as a JSON blob on disk. The
// store is private to a single client instance; no multi-process access is
// modelled.
type AccountRepository struct {
	path   string
	logger *zap.Logger
}

// NewAccountRepository ensures the store directory exists and returns a
// repository rooted at dir/filename.
func NewAccountRepository(dir, filename string, logger *zap.Logger) (*AccountRepository, error) {
	if dir == "" {
		dir = "./data"
	}
	if filename == "" {
		filename = "lms_users.json"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &AccountRepository{path: filepath.Join(dir, filename), logger: logger}, nil
}

// Load reads the persisted account store. A missing file or content that
// fails to parse is treated as an empty store, never as a fatal error; the
// degradation is logged but not surfaced to the user.
func (r *AccountRepository) Load() ([]models.Account, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Account{}, nil
		}
		return nil, fmt.Errorf("read account store: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		r.logger.Warn("account store unparsable, treating as empty",
			zap.String("path", r.path), zap.Error(err))
		return []models.Account{}, nil
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// Save overwrites the persisted store. The write goes through a temp file in
// the same directory followed by a rename, so a concurrent Load in this
// process never observes a partial write.
func (r *AccountRepository) Save(accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write account store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace account store: %w", err)
	}
	return nil
}

// Find loads the store and returns the account matching (id, role), or nil.
func (r *AccountRepository) Find(id string, role models.Role) (*models.Account, error) {
	accounts, err := r.Load()
	if err != nil {
		return nil, err
	}
	return FindAccount(accounts, id, role), nil
}

// Exists reports whether an account with the given (id, role) is stored.
func (r *AccountRepository) Exists(id string, role models.Role) (bool, error) {
	account, err := r.Find(id, role)
	if err != nil {
		return false, err
	}
	return account != nil, nil
}

// Path exposes the underlying store path (useful for debugging).
func (r *AccountRepository) Path() string {
	return r.path
}
