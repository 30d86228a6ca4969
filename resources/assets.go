package resources

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed icon.svg
var iconData []byte

var icon = fyne.NewStaticResource("icon.svg", iconData)

// Icon returns the application icon.
func Icon() fyne.Resource {
	return icon
}
