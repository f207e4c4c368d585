package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const handoutFontFamily = "deck"

// HandoutService builds a PDF handout: one captioned block of copy per slide
// and a palette page.
type HandoutService struct {
	fontPath string
	family   string
}

// NewHandoutService creates a new handout service
func NewHandoutService() *HandoutService {
	return &HandoutService{family: fontfamily.Arial}
}

// WithFont embeds a TTF font. Arial only covers Latin-1, so Cyrillic copy
// needs one.
func (s *HandoutService) WithFont(path string) *HandoutService {
	if path != "" {
		s.fontPath = path
		s.family = handoutFontFamily
	}
	return s
}

// ExportHandoutPDF lays out the slides in order, then the palette.
func (s *HandoutService) ExportHandoutPDF(d *Deck) ([]byte, error) {
	if d == nil || len(d.canvases) == 0 {
		return nil, wrapExport("pdf", "layout", ErrNoSlides)
	}

	builder := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: s.family,
			Size:   10,
		})
	if s.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(handoutFontFamily, fontstyle.Normal, s.fontPath).
			AddUTF8Font(handoutFontFamily, fontstyle.Bold, s.fontPath).
			Load()
		if err != nil {
			return nil, wrapExport("pdf", "load font", err)
		}
		builder = builder.WithCustomFonts(fonts)
	}

	m := maroto.New(builder.Build())
	s.addHeader(m)

	for _, c := range d.canvases {
		m.AddRow(9,
			col.New(12).Add(
				text.New(fmt.Sprintf("%d / %d  %s", c.Info.Number, len(d.canvases), c.Info.Title), props.Text{
					Family: s.family,
					Size:   12,
					Style:  fontstyle.Bold,
					Top:    1.5,
					Left:   2,
					Align:  align.Left,
					Color:  pdfColor(TextDark),
				}),
			).WithStyle(&props.Cell{BackgroundColor: pdfColor(Panel)}),
		)
		for _, line := range slideTexts(c) {
			style := fontstyle.Normal
			if line.bold {
				style = fontstyle.Bold
			}
			m.AddAutoRow(
				col.New(12).Add(
					text.New(line.text, props.Text{
						Family: s.family,
						Size:   line.size - 1,
						Style:  style,
						Top:    1,
						Left:   2,
						Align:  align.Left,
					}),
				),
			)
		}
		m.AddRow(5)
	}

	s.addPalette(m)

	document, err := m.Generate()
	if err != nil {
		return nil, wrapExport("pdf", "generate", err)
	}
	return document.GetBytes(), nil
}

func (s *HandoutService) addHeader(m core.Maroto) {
	m.AddRow(14,
		col.New(12).Add(
			text.New("YAgent UI design", props.Text{
				Family: s.family,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfColor(Accent),
			}),
		),
	)
	m.AddRow(5)
}

// addPalette draws a swatch, name and hex code per palette color.
func (s *HandoutService) addPalette(m core.Maroto) {
	m.AddRow(12,
		col.New(12).Add(
			text.New("Palette", props.Text{
				Family: s.family,
				Size:   14,
				Style:  fontstyle.Bold,
				Top:    4,
				Align:  align.Left,
			}),
		),
	)
	for _, e := range Palette() {
		m.AddRow(7,
			col.New(2).WithStyle(&props.Cell{
				BackgroundColor: pdfColor(e.Color),
				BorderType:      border.Full,
				BorderColor:     pdfColor(Border),
			}),
			col.New(4).Add(text.New(e.Name, props.Text{Family: s.family, Left: 3, Top: 1})),
			col.New(6).Add(text.New("#"+e.Color.Hex(), props.Text{Family: s.family, Top: 1})),
		)
	}
}

func pdfColor(c Color) *props.Color {
	return &props.Color{Red: int(c.R), Green: int(c.G), Blue: int(c.B)}
}
