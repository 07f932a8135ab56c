package config

const (
	LightTheme string = "light-theme"
	DarkTheme  string = "dark-theme"

	LightThemeIcon string = `<span class="theme-icon" aria-label="Light theme">&#9728;</span>`
	DarkThemeIcon  string = `<span class="theme-icon" aria-label="Dark theme">&#9790;</span>`
)
