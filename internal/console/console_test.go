package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-portal/internal/repository"
	"github.com/noah-isme/lms-portal/internal/service"
	"github.com/noah-isme/lms-portal/internal/view"
)

type recordingNotifier struct {
	infos  []string
	errors []string
}

func (n *recordingNotifier) Info(msg string)  { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

func runScript(t *testing.T, repo *repository.AccountRepository, lines ...string) (*recordingNotifier, string) {
	sessions := service.NewSessionService(repo, validator.New(), zap.NewNop())
	renderer := view.NewRenderer(nil)
	notifier := &recordingNotifier{}
	var out bytes.Buffer

	c := New(sessions, renderer, notifier, zap.NewNop(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	c.Run()
	return notifier, out.String()
}

func newRepo(t *testing.T) *repository.AccountRepository {
	repo, err := repository.NewAccountRepository(t.TempDir(), "lms_users.json", zap.NewNop())
	require.NoError(t, err)
	return repo
}

func TestScriptedSignupBrowseLogout(t *testing.T) {
	repo := newRepo(t)

	notifier, out := runScript(t, repo,
		"signup",
		"", // submit the signup form
		"Ana",
		"u2",
		"faculty",
		"p",
		"p",
		"profile",
		"logout",
		"quit",
	)

	require.NotEmpty(t, notifier.infos)
	assert.Contains(t, notifier.infos[0], "Welcome, Ana")
	assert.Contains(t, notifier.infos, "Logged out.")
	assert.Empty(t, notifier.errors)

	// signup auto-authenticates onto the dashboard, then profile was shown
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "Faculty Information")
	assert.Contains(t, out, "u2")

	// the new account was persisted
	accounts, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "u2", accounts[0].ID)
}

func TestScriptedLoginMissOffersSignup(t *testing.T) {
	repo := newRepo(t)

	notifier, out := runScript(t, repo,
		"", // submit the login form
		"ghost",
		"student",
		"x",
		"y", // accept the signup offer
		"quit",
	)

	require.NotEmpty(t, notifier.errors)
	assert.Contains(t, notifier.errors[0], "no account found")
	// accepting the offer switched the console to the signup form
	assert.Contains(t, out, "Create Account")
}

func TestScriptedLoginWrongPassword(t *testing.T) {
	repo := newRepo(t)

	// seed an account through a scripted signup, then fail a login
	notifier, _ := runScript(t, repo,
		"signup",
		"",
		"Ana",
		"u1",
		"student",
		"p",
		"p",
		"logout",
		"", // submit login
		"u1",
		"student",
		"wrong",
		"quit",
	)

	require.NotEmpty(t, notifier.errors)
	assert.Contains(t, notifier.errors[0], "incorrect password")
}
