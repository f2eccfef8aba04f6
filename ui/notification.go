package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/zshcatsandevops/switchone/ui/style"
)

// Toast displays temporary action messages in the bottom-right corner.
type Toast struct {
	message   string
	startTime time.Time
	duration  time.Duration
}

// NewToast creates an empty toast.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays message for the given duration.
func (n *Toast) Show(message string, duration time.Duration) {
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays message for 3 seconds.
func (n *Toast) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// ShowShort displays message for 1 second, for rapid action lines.
func (n *Toast) ShowShort(message string) {
	n.Show(message, time.Second)
}

// IsVisible reports whether a message is currently on screen.
func (n *Toast) IsVisible() bool {
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current message.
func (n *Toast) Clear() {
	n.message = ""
}

// Draw renders the toast.
func (n *Toast) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}

	textWidth, textHeight := text.Measure(n.message, style.ToastFace(), 0)

	padding := 12
	margin := 8
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	bounds := screen.Bounds()
	x := bounds.Dx() - bgWidth - margin
	y := bounds.Dy() - bgHeight - margin

	bg := ebiten.NewImage(bgWidth, bgHeight)
	bg.Fill(color.RGBA{0, 0, 0, 153}) // 60% opacity

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(bg, op)

	style.DrawText(screen, n.message, style.ToastFace(), x+padding, y+padding, style.Text)
}
