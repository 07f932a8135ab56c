package config

const (
	//? These paths must match the paths in the embed directive

	StaticLocalDir = "static"
	StaticUrlPath  = "/" + StaticLocalDir + "/"

	TemplatesLocalDir = "templates"

	TemplateLayout    = "layout.html"
	TemplateAbout     = "about.html"
	TemplateDashboard = "dashboard.html"
	TemplateEditor    = "editor.html"

	DefaultConfigPath = "config.yaml"
)
