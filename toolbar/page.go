package toolbar

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tilewright/editor/fonts"
	"github.com/tilewright/editor/objectdef"
	"github.com/tilewright/editor/textures"
)

const (
	iconsPerRow  = 6
	rowsPerPage  = 3
	pulsePeriod  = 0.8
	tickDuration = 1.0 / 60.0
)

// Page is the toolbar's widget layer: a paged grid of icon cells, one per
// placeable object, with the selected object marked by a pulsing frame.
type Page struct {
	UI *ebitenui.UI

	toolbar  *Toolbar
	registry *textures.Registry

	// Called after a click changed the selection.
	OnSelect func(id string)

	page  int
	ids   []string // sorted object ids
	cells map[string]*widget.Container

	pulse   *gween.Tween
	pulseIn bool
	alpha   float32
	marker  *ebiten.Image
}

// NewPage builds the toolbar page over the populated toolbar. The registry
// is the concrete backing of the toolbar's renderer; the page reads icon
// images from it directly.
func NewPage(tb *Toolbar, registry *textures.Registry) *Page {
	p := &Page{
		toolbar:  tb,
		registry: registry,
		pulse:    gween.New(60, 200, pulsePeriod, ease.InOutQuad),
		pulseIn:  true,
		marker:   ebiten.NewImage(1, 1),
	}
	p.marker.Fill(color.White)
	p.Rebuild()
	return p
}

// Rebuild recreates the widget tree from the toolbar's current items. Call
// it after UpdateItems.
func (p *Page) Rebuild() {
	p.ids = p.ids[:0]
	for id := range p.toolbar.Items() {
		p.ids = append(p.ids, id)
	}
	sort.Strings(p.ids)
	if p.page > p.maxPage() {
		p.page = p.maxPage()
	}
	p.cells = make(map[string]*widget.Container)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleFace := fonts.Title.Face()

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Objects", &titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(iconsPerRow),
			widget.GridLayoutOpts.Spacing(4, 4),
		)),
	)
	for _, id := range p.pageIDs() {
		grid.AddChild(p.buildIconCell(id))
	}
	contentContainer.AddChild(grid)
	contentContainer.AddChild(p.buildPager())

	rootContainer.AddChild(contentContainer)
	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update advances the selection pulse and the widget tree.
func (p *Page) Update() {
	alpha, done := p.pulse.Update(tickDuration)
	p.alpha = alpha
	if done {
		if p.pulseIn {
			p.pulse = gween.New(200, 60, pulsePeriod, ease.InOutQuad)
		} else {
			p.pulse = gween.New(60, 200, pulsePeriod, ease.InOutQuad)
		}
		p.pulseIn = !p.pulseIn
	}
	p.UI.Update()
}

// Draw renders the widgets and the pulsing frame around the selected cell.
func (p *Page) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)

	selected := p.toolbar.Selected()
	cell, ok := p.cells[selected]
	if !ok {
		return
	}
	rect := cell.GetWidget().Rect
	if rect.Empty() {
		return
	}

	op := func(x, y, w, h int) {
		o := &ebiten.DrawImageOptions{}
		o.GeoM.Scale(float64(w), float64(h))
		o.GeoM.Translate(float64(x), float64(y))
		o.ColorScale.Scale(1, 1, 0.4, 1)
		o.ColorScale.ScaleAlpha(p.alpha / 255)
		screen.DrawImage(p.marker, o)
	}
	const t = 2 // frame thickness
	op(rect.Min.X, rect.Min.Y, rect.Dx(), t)
	op(rect.Min.X, rect.Max.Y-t, rect.Dx(), t)
	op(rect.Min.X, rect.Min.Y, t, rect.Dy())
	op(rect.Max.X-t, rect.Min.Y, t, rect.Dy())
}

func (p *Page) buildIconCell(id string) *widget.Container {
	smallFace := fonts.Small.Face()

	cell := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(2)),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	if icon := p.iconImage(id); icon != nil {
		cell.AddChild(widget.NewGraphic(
			widget.GraphicOpts.Image(icon),
		))
	}

	cell.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(48, 16),
		),
		widget.ButtonOpts.Image(cellButtonImage()),
		widget.ButtonOpts.Text(id, &smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.toolbar.Select(id)
			if p.OnSelect != nil {
				p.OnSelect(id)
			}
		}),
	))

	p.cells[id] = cell
	return cell
}

func (p *Page) buildPager() *widget.Container {
	smallFace := fonts.Small.Face()

	pager := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	prev := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(cellButtonImage()),
		widget.ButtonOpts.Text("Prev", &smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.page > 0 {
				p.page--
				p.Rebuild()
			}
		}),
	)
	pager.AddChild(prev)

	pageLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%d / %d", p.page+1, p.maxPage()+1), &smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	pager.AddChild(pageLabel)

	next := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(cellButtonImage()),
		widget.ButtonOpts.Text("Next", &smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.page < p.maxPage() {
				p.page++
				p.Rebuild()
			}
		}),
	)
	pager.AddChild(next)

	return pager
}

// iconImage picks the icon shown for one object: the first direction of a
// static object, or the first frame of the first action of a dynamic one.
func (p *Page) iconImage(id string) *ebiten.Image {
	item, ok := p.toolbar.Items()[id]
	if !ok {
		return nil
	}

	if item.Static {
		dirs := sortedKeys(item.Directions)
		if len(dirs) == 0 {
			return nil
		}
		icon := item.Directions[dirs[0]]
		tex, err := p.registry.GetTexture(icon.TextureName)
		if err != nil {
			return nil
		}
		if icon.Atlas {
			return tex.SubImage(icon.Rect)
		}
		return tex.Image()
	}

	actions := make([]string, 0, len(item.Actions))
	for name := range item.Actions {
		actions = append(actions, name)
	}
	sort.Strings(actions)
	for _, name := range actions {
		icons := item.Actions[name]
		dirs := sortedKeys(icons.Directions)
		if len(dirs) == 0 {
			continue
		}
		switch icons.Kind {
		case objectdef.KindSingleAtlas:
			tex, err := p.registry.GetTexture(icons.AtlasTexture)
			if err != nil {
				continue
			}
			frames := icons.Directions[dirs[0]].Frames
			if len(frames) == 0 {
				continue
			}
			return tex.SubImage(frames[0])
		case objectdef.KindMultiFrame:
			tex, err := p.registry.GetTexture(fmt.Sprintf("%s.%s.%d.0", id, name, dirs[0]))
			if err != nil {
				continue
			}
			return tex.Image()
		}
	}
	return nil
}

func (p *Page) pageIDs() []string {
	start := p.page * iconsPerRow * rowsPerPage
	if start >= len(p.ids) {
		return nil
	}
	end := start + iconsPerRow*rowsPerPage
	if end > len(p.ids) {
		end = len(p.ids)
	}
	return p.ids[start:end]
}

func (p *Page) maxPage() int {
	if len(p.ids) == 0 {
		return 0
	}
	return (len(p.ids) - 1) / (iconsPerRow * rowsPerPage)
}

func cellButtonImage() *widget.ButtonImage {
	idle := euiimage.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := euiimage.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := euiimage.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := euiimage.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
