// Package display opens rendered charts in a window for interactive
// inspection. Kept out of the render path so headless runs never touch a
// display server.
package display

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ShowImage opens a window presenting img and blocks until the window is
// closed.
func ShowImage(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)
	b := img.Bounds()
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
	w.SetContent(container.NewStack(ci))
	w.Resize(fyne.NewSize(float32(b.Dx())/2+16, float32(b.Dy())/2+16))
	w.CenterOnScreen()
	w.ShowAndRun()
}
