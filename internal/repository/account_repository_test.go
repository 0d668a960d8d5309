package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-portal/internal/models"
)

func newRepo(t *testing.T) *AccountRepository {
	repo, err := NewAccountRepository(t.TempDir(), "lms_users.json", zap.NewNop())
	require.NoError(t, err)
	return repo
}

func TestLoadMissingStore(t *testing.T) {
	repo := newRepo(t)

	accounts, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newRepo(t)

	want := []models.Account{
		{ID: "u1", Name: "Ana", Role: models.RoleStudent, Credential: "p"},
		{ID: "u1", Name: "Dr. Ana", Role: models.RoleFaculty, Credential: "q"},
		{ID: "root", Name: "Root", Role: models.RoleAdmin, Credential: "r"},
	}
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCorruptStore(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte("{not json"), 0o644))

	accounts, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSaveOverwrites(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Save([]models.Account{{ID: "u1", Name: "Ana", Role: models.RoleStudent, Credential: "p"}}))
	require.NoError(t, repo.Save([]models.Account{{ID: "u2", Name: "Ben", Role: models.RoleAdmin, Credential: "q"}}))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(repo.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFindAccountCompositeKey(t *testing.T) {
	accounts := []models.Account{
		{ID: "u1", Name: "Ana", Role: models.RoleStudent, Credential: "p"},
		{ID: "u1", Name: "Dr. Ana", Role: models.RoleFaculty, Credential: "q"},
	}

	student := FindAccount(accounts, "u1", models.RoleStudent)
	require.NotNil(t, student)
	assert.Equal(t, "Ana", student.Name)

	faculty := FindAccount(accounts, "u1", models.RoleFaculty)
	require.NotNil(t, faculty)
	assert.Equal(t, "Dr. Ana", faculty.Name)

	assert.Nil(t, FindAccount(accounts, "u1", models.RoleAdmin))
	assert.Nil(t, FindAccount(accounts, "u2", models.RoleStudent))
}

func TestExists(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Save([]models.Account{{ID: "u1", Name: "Ana", Role: models.RoleStudent, Credential: "p"}}))

	exists, err := repo.Exists("u1", models.RoleStudent)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("u1", models.RoleFaculty)
	require.NoError(t, err)
	assert.False(t, exists)
}
