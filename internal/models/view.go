package models

// View identifies a portal screen shown to an authenticated session.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewCourses     View = "courses"
	ViewAssignments View = "assignments"
	ViewLibrary     View = "library"
	ViewWorkbooks   View = "workbooks"
	ViewStudents    View = "students"
	ViewUsers       View = "users"
	ViewAnalytics   View = "analytics"
	ViewSettings    View = "settings"
	ViewProfile     View = "profile"
)

// KnownViews lists every view identifier the portal renders, in navigation
// order.
var KnownViews = []View{
	ViewDashboard,
	ViewCourses,
	ViewAssignments,
	ViewLibrary,
	ViewWorkbooks,
	ViewStudents,
	ViewUsers,
	ViewAnalytics,
	ViewSettings,
	ViewProfile,
}

// Known reports whether the identifier belongs to the closed view set.
// Unknown identifiers are still accepted by the view selector; they render
// the dashboard instead.
func (v View) Known() bool {
	for _, known := range KnownViews {
		if v == known {
			return true
		}
	}
	return false
}

// Resolve maps unknown identifiers to the dashboard fallback.
func (v View) Resolve() View {
	if v.Known() {
		return v
	}
	return ViewDashboard
}
