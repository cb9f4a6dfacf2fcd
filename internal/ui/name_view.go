package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/names72/internal/model"
)

// NameView renders the script form of one name in large letters and
// reports taps on it.
type NameView struct {
	widget.BaseWidget

	OnTapped func()

	position int
	text     *canvas.Text
}

// NewNameView creates a name display showing position
func NewNameView(position int, onTapped func()) *NameView {
	v := &NameView{OnTapped: onTapped}
	v.text = canvas.NewText("", theme.Color(theme.ColorNamePrimary))
	v.text.TextSize = NameTextSize
	v.text.TextStyle = fyne.TextStyle{Symbol: true}
	v.text.Alignment = fyne.TextAlignCenter
	v.ExtendBaseWidget(v)
	v.SetPosition(position)
	return v
}

// SetPosition changes the displayed name
func (v *NameView) SetPosition(position int) {
	v.position = model.ClampPosition(position)
	v.text.Text = model.VisualOrder(model.ScriptForm(v.position))
	v.text.Refresh()
}

// Position returns the displayed position
func (v *NameView) Position() int {
	return v.position
}

// Text returns the string handed to the renderer, in visual order
func (v *NameView) Text() string {
	return v.text.Text
}

// SetColor changes the letter color
func (v *NameView) SetColor(c color.Color) {
	v.text.Color = c
	v.text.Refresh()
}

// Tapped handles taps on the name
func (v *NameView) Tapped(*fyne.PointEvent) {
	if v.OnTapped != nil {
		v.OnTapped()
	}
}

// CreateRenderer implements fyne.Widget
func (v *NameView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(v.text))
}
