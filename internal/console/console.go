package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-portal/internal/models"
	"github.com/noah-isme/lms-portal/internal/service"
	"github.com/noah-isme/lms-portal/internal/view"
	appErrors "github.com/noah-isme/lms-portal/pkg/errors"
)

// Notifier surfaces short user-facing notifications. Implementations are
// fire-and-forget; the portal core only decides which message fires when.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// TerminalNotifier writes notifications to the terminal.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier creates a notifier writing to out.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Info(msg string) {
	fmt.Fprintf(n.out, "[info] %s\n", msg)
}

func (n *TerminalNotifier) Error(msg string) {
	fmt.Fprintf(n.out, "[error] %s\n", msg)
}

// formState caches entered form values. Values persist across the
// login/signup toggle and are cleared on logout.
type formState struct {
	name       string
	id         string
	role       models.Role
	credential string
	confirm    string
}

// Console is the interactive terminal front end. It owns form input state and
// user-decision prompts; every state transition goes through the session
// service.
type Console struct {
	sessions *service.SessionService
	renderer *view.Renderer
	notifier Notifier
	logger   *zap.Logger

	in  *bufio.Scanner
	out io.Writer

	form formState
}

// New wires a console over the given reader/writer pair.
func New(sessions *service.SessionService, renderer *view.Renderer, notifier Notifier, logger *zap.Logger, in io.Reader, out io.Writer) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewTerminalNotifier(out)
	}
	return &Console{
		sessions: sessions,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
		form:     formState{role: models.RoleStudent},
	}
}

// Run drives the prompt loop until the user quits or input ends.
func (c *Console) Run() {
	fmt.Fprintln(c.out, "LMS Portal")
	for {
		if _, ok := c.sessions.Session(); ok {
			if !c.loggedInStep() {
				return
			}
			continue
		}
		if !c.loggedOutStep() {
			return
		}
	}
}

// loggedOutStep handles one command at the credential forms. Returns false to
// stop the loop.
func (c *Console) loggedOutStep() bool {
	if c.sessions.Mode() == service.ModeLogin {
		fmt.Fprintln(c.out, "\n-- Login -- (commands: submit, signup, quit)")
	} else {
		fmt.Fprintln(c.out, "\n-- Create Account -- (commands: submit, login, quit)")
	}

	line, ok := c.readLine("> ")
	if !ok {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return false
	case "toggle":
		if err := c.sessions.ToggleMode(); err != nil {
			c.notifier.Error(appErrors.FromError(err).Message)
		}
	case "signup":
		if err := c.sessions.SwitchMode(service.ModeSignup); err != nil {
			c.notifier.Error(appErrors.FromError(err).Message)
		}
	case "login":
		if err := c.sessions.SwitchMode(service.ModeLogin); err != nil {
			c.notifier.Error(appErrors.FromError(err).Message)
		}
	case "submit", "":
		if c.sessions.Mode() == service.ModeLogin {
			return c.submitLogin()
		}
		return c.submitSignup()
	default:
		c.notifier.Error("unknown command")
	}
	return true
}

func (c *Console) submitLogin() bool {
	id, ok := c.promptWithDefault("User ID", c.form.id)
	if !ok {
		return false
	}
	role, ok := c.promptRole()
	if !ok {
		return false
	}
	credential, ok := c.promptWithDefault("Password", c.form.credential)
	if !ok {
		return false
	}
	c.form.id, c.form.role, c.form.credential = id, role, credential

	session, err := c.sessions.SubmitLogin(models.LoginInput{ID: id, Role: role, Credential: credential})
	if err != nil {
		appErr := appErrors.FromError(err)
		c.notifier.Error(appErr.Message)
		if appErr.Is(appErrors.ErrAccountNotFound) {
			// The controller only offers the switch; the decision is the
			// user's.
			if answer, ok := c.promptWithDefault("Sign up now? (y/n)", "n"); ok && strings.EqualFold(answer, "y") {
				if err := c.sessions.SwitchMode(service.ModeSignup); err != nil {
					c.notifier.Error(appErrors.FromError(err).Message)
				}
			}
		}
		return true
	}

	c.notifier.Info(fmt.Sprintf("Welcome back, %s!", session.Name))
	c.showCurrentView()
	return true
}

func (c *Console) submitSignup() bool {
	name, ok := c.promptWithDefault("Full Name", c.form.name)
	if !ok {
		return false
	}
	id, ok := c.promptWithDefault("User ID", c.form.id)
	if !ok {
		return false
	}
	role, ok := c.promptRole()
	if !ok {
		return false
	}
	credential, ok := c.promptWithDefault("Password", c.form.credential)
	if !ok {
		return false
	}
	confirm, ok := c.promptWithDefault("Confirm Password", c.form.confirm)
	if !ok {
		return false
	}
	c.form = formState{name: name, id: id, role: role, credential: credential, confirm: confirm}

	session, err := c.sessions.SubmitSignup(models.SignupInput{
		Name:              name,
		ID:                id,
		Role:              role,
		Credential:        credential,
		ConfirmCredential: confirm,
	})
	if err != nil {
		c.notifier.Error(appErrors.FromError(err).Message)
		return true
	}

	c.notifier.Info(fmt.Sprintf("Account created. Welcome, %s!", session.Name))
	c.showCurrentView()
	return true
}

// loggedInStep handles one navigation command. Returns false to stop the loop.
func (c *Console) loggedInStep() bool {
	session, _ := c.sessions.Session()
	line, ok := c.readLine(fmt.Sprintf("%s@lms> ", session.ID))
	if !ok {
		return false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	command := strings.ToLower(fields[0])

	switch command {
	case "quit", "exit":
		return false
	case "logout":
		if err := c.sessions.Logout(); err != nil {
			c.notifier.Error(appErrors.FromError(err).Message)
			return true
		}
		c.form = formState{role: models.RoleStudent}
		c.notifier.Info("Logged out.")
	case "views":
		names := make([]string, 0, len(models.KnownViews))
		for _, v := range models.KnownViews {
			names = append(names, string(v))
		}
		fmt.Fprintln(c.out, strings.Join(names, " "))
	case "search":
		query := strings.Join(fields[1:], " ")
		fmt.Fprint(c.out, c.renderer.RenderWorkbookSearch(query))
	default:
		// Every remaining command is a view identifier; unknown ones are
		// accepted and fall back to the dashboard.
		if err := c.sessions.SetView(command); err != nil {
			c.notifier.Error(appErrors.FromError(err).Message)
			return true
		}
		c.showCurrentView()
	}
	return true
}

func (c *Console) showCurrentView() {
	session, _ := c.sessions.Session()
	fmt.Fprint(c.out, c.renderer.Render(session, c.sessions.CurrentView()))
}

func (c *Console) promptRole() (models.Role, bool) {
	fallback := string(c.form.role)
	if fallback == "" {
		fallback = string(models.RoleStudent)
	}
	answer, ok := c.promptWithDefault("Role (student/faculty/admin)", fallback)
	if !ok {
		return "", false
	}
	return models.Role(strings.ToLower(answer)), true
}

// promptWithDefault reads a line, keeping the cached value on empty input.
func (c *Console) promptWithDefault(label, fallback string) (string, bool) {
	if fallback != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	if !c.in.Scan() {
		return "", false
	}
	value := strings.TrimSpace(c.in.Text())
	if value == "" {
		return fallback, true
	}
	return value, true
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
