package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"golang.org/x/image/font/basicfont"
)

var textColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUD shows the score label and the level-complete panel.
type HUD struct {
	ui      *ebitenui.UI
	root    *widget.Container
	score   *widget.Text
	panel   *widget.Container
	visible bool
}

func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	score := widget.NewText(
		widget.TextOpts.Text("0", &face, textColor),
	)
	scoreBox := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	scoreBox.AddChild(score)

	title := widget.NewText(
		widget.TextOpts.Text("Level Complete", &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Press Enter to continue", &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(hint)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(scoreBox)

	return &HUD{
		ui:    &ebitenui.UI{Container: root},
		root:  root,
		score: score,
		panel: panel,
	}
}

// Show attaches the win panel to the root container.
func (h *HUD) Show() {
	if h.visible {
		return
	}
	h.root.AddChild(h.panel)
	h.visible = true
}

func (h *HUD) Hide() {
	if !h.visible {
		return
	}
	h.root.RemoveChild(h.panel)
	h.visible = false
}

func (h *HUD) Visible() bool {
	return h.visible
}

// SetScore replaces the score label text.
func (h *HUD) SetScore(text string) {
	h.score.Label = text
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
