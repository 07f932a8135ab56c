// Package routes defines HTTP route constants for the application.
package routes

const (
	Robots = "/robots.txt"

	ThemeToggle    = "/theme/toggle"
	SyntaxThemeSet = "/syntax-theme/set"
	SyntaxThemeGet = "/syntax-theme/{theme}"

	Dashboard     = "/dashboard"
	DashboardOpen = "/dashboard/open"
	Preview       = "/dashboard/preview"

	// EditPost is followed by the post slug. Without one the editor opens
	// empty and cannot submit.
	EditPost        = "/dashboard/edit/"
	EditPostPattern = EditPost + "{slug}"
	EditPostBare    = EditPost + "{$}"

	// QueryResume on an edit page reuses the session's post instead of
	// fetching it again.
	QueryResume = "resume"
)

// EditPostPath is the edit screen for slug. The slug must already be escaped.
func EditPostPath(slug string) string {
	return EditPost + slug
}

// ResumePath is the edit screen for slug, showing what the session holds.
func ResumePath(slug string) string {
	return EditPostPath(slug) + "?" + QueryResume + "=1"
}
