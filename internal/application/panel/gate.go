package panel

// SettingsRoute is the location hash, without its leading marker, under
// which the panel is shown.
const SettingsRoute = "settings"

// ShouldRender reports whether the panel may render at all. It is evaluated
// on every render so navigating away hides the panel without an explicit
// close.
func ShouldRender(userLoggedIn bool, locationHash string) bool {
	if !userLoggedIn || locationHash == "" {
		return false
	}
	return locationHash[1:] == SettingsRoute
}
