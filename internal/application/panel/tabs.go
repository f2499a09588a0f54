package panel

import (
	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// TabKind identifies one of the panel's tabs, by index.
type TabKind int

const (
	TabThemes TabKind = iota
	TabFonts
	TabSpacing
	TabImages
)

// TabCount is the number of tabs the panel renders.
const TabCount = 4

var tabLabelIDs = [TabCount]string{
	TabThemes:  "page.body.customization.tabs.themes",
	TabFonts:   "page.body.customization.tabs.fonts",
	TabSpacing: "page.body.customization.tabs.spacing",
	TabImages:  "page.body.customization.tabs.images",
}

// Message ids for the action buttons.
const (
	ResetLabelID = "page.body.customization.actionButtons.reset"
	SaveLabelID  = "page.body.customization.actionButtons.save"
)

// Callbacks are the only write paths a sub-panel gets. A rejected draft edit
// is returned to the sub-panel.
type Callbacks struct {
	HandleSetCurrentColorTheme    func(themeID string)
	HandleSetCurrentCustomization func(key string, value any) error
	HandleTriggerChartRebuild     func()
}

// Content is what an active tab renders. Implementations are ThemesContent,
// FontsContent, SpacingContent and ImagesContent.
type Content interface {
	Kind() TabKind
}

// ThemesContent feeds the themes sub-panel.
type ThemesContent struct {
	ColorTheme           string
	CurrentCustomization customization.Record
	Customization        customization.Record
	ResetToDefault       bool
	Callbacks            Callbacks
	Translate            ports.TranslateFunc
}

// Kind implements Content.
func (ThemesContent) Kind() TabKind { return TabThemes }

// FontsContent feeds the fonts sub-panel.
type FontsContent struct {
	Translate ports.TranslateFunc
}

// Kind implements Content.
func (FontsContent) Kind() TabKind { return TabFonts }

// SpacingContent feeds the spacing sub-panel.
type SpacingContent struct {
	Translate ports.TranslateFunc
}

// Kind implements Content.
func (SpacingContent) Kind() TabKind { return TabSpacing }

// ImagesContent feeds the images sub-panel.
type ImagesContent struct {
	Translate ports.TranslateFunc
}

// Kind implements Content.
func (ImagesContent) Kind() TabKind { return TabImages }

// Tab pairs a translated label with its content. Content is nil for every
// tab except the active one.
type Tab struct {
	Label   string
	Content Content
}

// ActionButton is a labelled panel-level action.
type ActionButton struct {
	Label  string
	Action func() error
}

// View is the rendered chrome of a visible panel.
type View struct {
	Hidden          bool
	CurrentTabIndex int
	Tabs            []Tab
	Actions         []ActionButton
}
