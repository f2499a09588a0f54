package palette

// ColorTitle names one visual variable the snapshot knows how to capture.
type ColorTitle struct {
	Key string `yaml:"key"`
}

// AvailableColorTitles lists every themeable variable, in capture order.
var AvailableColorTitles = []ColorTitle{
	{Key: "--main-background-color"},
	{Key: "--body-background-color"},
	{Key: "--header-background-color"},
	{Key: "--subheader-background-color"},
	{Key: "--dropdown-background-color"},
	{Key: "--icons"},
	{Key: "--primary-cta-color"},
	{Key: "--contrast-cta-color"},
	{Key: "--secondary-contrast-cta-color"},
	{Key: "--cta-layer-color"},
	{Key: "--system-green"},
	{Key: "--system-red"},
	{Key: "--system-yellow"},
	{Key: "--asks"},
	{Key: "--bids"},
	{Key: "--primary-text-color"},
	{Key: "--secondary-text-color"},
	{Key: "--contrast-text-color"},
	{Key: "--input-background-color"},
	{Key: "--divider-color-level-1"},
	{Key: "--divider-color-level-2"},
	{Key: "--shadow-color"},
	{Key: "--landing-background-color"},
	{Key: "--strength-meter-color-weak"},
	{Key: "--strength-meter-color-good"},
	{Key: "--strength-meter-color-strong"},
}

// Keys returns the variable names of titles, preserving order.
func Keys(titles []ColorTitle) []string {
	keys := make([]string, 0, len(titles))
	for _, title := range titles {
		keys = append(keys, title.Key)
	}
	return keys
}
