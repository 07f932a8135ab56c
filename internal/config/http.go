package config

const (
	HCType        = "Content-Type"
	HETag         = "ETag"
	HCacheControl = "Cache-Control"
	HHxRequest    = "HX-Request"
	HHxRedirect   = "HX-Redirect"
	HHxTrigger    = "HX-Trigger"

	CTypeCSS  = "text/css"
	CTypeHTML = "text/html"
	CTypeJSON = "application/json"
)

const (
	CookieTheme       = "theme"
	CookieSyntaxTheme = "syntax-theme"
	CookieEditSession = "edit-session"
)

const (
	EnvAPIURL     = "API_URL"
	EnvLogLevel   = "LOG_LEVEL"
	EnvConfigPath = "CONFIG_PATH"
)
