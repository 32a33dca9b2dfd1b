//go:build !js

package simkit

import "github.com/hajimehoshi/ebiten/v2"

// configureWindow applies native window settings: a sized, resizable
// desktop window with the given title.
func configureWindow(title string, width, height int) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}
