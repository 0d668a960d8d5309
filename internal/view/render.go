package view

import (
	"fmt"
	"strings"

	"github.com/noah-isme/lms-portal/internal/models"
	"github.com/noah-isme/lms-portal/internal/service"
)

// Renderer produces the text panel for a view. Views are pure functions of
// (session, view identifier); they never touch the account store.
type Renderer struct {
	catalog *service.CatalogService
}

// NewRenderer constructs a Renderer; a nil catalog falls back to the built-in
// workbook set.
func NewRenderer(catalog *service.CatalogService) *Renderer {
	if catalog == nil {
		catalog = service.NewCatalogService(nil, nil)
	}
	return &Renderer{catalog: catalog}
}

// Render returns the panel for the given view. Unknown identifiers render the
// dashboard; role shapes content only, never reachability.
func (r *Renderer) Render(session *models.Session, viewID models.View) string {
	switch viewID.Resolve() {
	case models.ViewCourses:
		return panel("Courses", "Browse enrolled courses and study materials.")
	case models.ViewAssignments:
		return panel("Assignment Submission", "Submit assignments and track deadlines.")
	case models.ViewLibrary:
		return panel("Books & References", "Library catalogue and reference material.")
	case models.ViewWorkbooks:
		return r.renderWorkbooks("")
	case models.ViewStudents:
		return panel("Student Management", "Manage students and track progress.")
	case models.ViewUsers:
		return panel("User Management", "Manage students & faculty accounts.")
	case models.ViewAnalytics:
		return panel("Analytics", "View system statistics.")
	case models.ViewSettings:
		return panel("System Settings", "Configure system preferences.")
	case models.ViewProfile:
		return renderProfile(session)
	default:
		return renderDashboard(session)
	}
}

// RenderWorkbookSearch renders the workbooks panel filtered by the query.
func (r *Renderer) RenderWorkbookSearch(query string) string {
	return r.renderWorkbooks(query)
}

func (r *Renderer) renderWorkbooks(query string) string {
	var b strings.Builder
	b.WriteString(header("Workbooks"))
	b.WriteString("Digital workbooks and practice exercises. Use the search to quickly find a workbook.\n")

	matched := r.catalog.Search(query)
	if len(matched) == 0 {
		fmt.Fprintf(&b, "\nNo workbooks found for %q.\n", query)
		return b.String()
	}
	for _, wb := range matched {
		fmt.Fprintf(&b, "\n%s\n  %s\n  tags: %s\n  download: %s\n",
			wb.Title, wb.Description, strings.Join(wb.Tags, ", "), wb.File)
	}
	return b.String()
}

func renderDashboard(session *models.Session) string {
	var b strings.Builder
	b.WriteString(header("Dashboard"))
	if session != nil {
		fmt.Fprintf(&b, "Welcome back, %s (%s).\n", session.Name, session.Role)
	}
	b.WriteString("You have 3 upcoming deadlines.\n")
	return b.String()
}

func renderProfile(session *models.Session) string {
	var b strings.Builder
	b.WriteString(header("Profile"))
	if session == nil {
		return b.String()
	}
	b.WriteString(profileHeading(session.Role) + "\n\n")
	fmt.Fprintf(&b, "ID:   %s\n", session.ID)
	fmt.Fprintf(&b, "Name: %s\n", session.Name)
	fmt.Fprintf(&b, "Role: %s\n", session.Role)
	return b.String()
}

func profileHeading(role models.Role) string {
	switch role {
	case models.RoleStudent:
		return "Student Information"
	case models.RoleFaculty:
		return "Faculty Information"
	default:
		return "Administrator Information"
	}
}

func panel(title, body string) string {
	return header(title) + body + "\n"
}

func header(title string) string {
	return fmt.Sprintf("== %s ==\n", title)
}
