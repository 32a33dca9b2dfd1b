//go:build js

package simkit

import "github.com/hajimehoshi/ebiten/v2"

// configureWindow applies web settings. The HTML shell owns canvas
// placement and sizing; only the title carries over.
func configureWindow(title string, width, height int) {
	ebiten.SetWindowTitle(title)
}
