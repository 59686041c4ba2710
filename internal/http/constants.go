package httpx

// Page identifiers used in templates and navigation.
const (
	PageLogin      = "login"
	PageHome       = "home"
	PageStatistics = "statistics"
	PageError      = "error"
)

// TemplatePathFromRoot is where page templates live relative to the project root.
const TemplatePathFromRoot = "web/templates"

// Form field names shared by the views and the templates.
const (
	formUsername    = "username"
	formPassword    = "password"
	formRedirect    = "redirect"
	formOldPassword = "oldPassword"
	formNewPassword = "newPassword"
)

// loginRedirectParam carries the originally requested path through the login page.
const loginRedirectParam = "redirect"

// defaultAfterLogin is where a login without a usable redirect lands.
const defaultAfterLogin = "/home"
