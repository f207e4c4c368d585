package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"
)

// OutlineService exports the deck text as a Word outline.
type OutlineService struct{}

// NewOutlineService creates a new outline service
func NewOutlineService() *OutlineService {
	return &OutlineService{}
}

// ExportOutlineToWord writes one heading per slide followed by its texts.
func (s *OutlineService) ExportOutlineToWord(d *Deck) ([]byte, error) {
	if d == nil || len(d.canvases) == 0 {
		return nil, wrapExport("docx", "layout", ErrNoSlides)
	}

	doc := goword.New()
	doc.Properties.Title = "YAgent UI design: outline"
	doc.Properties.Creator = "YAgent"

	sec := doc.AddSection()
	sec.AddTitle("YAgent UI design", 1)

	for _, c := range d.canvases {
		sec.AddTitle(fmt.Sprintf("%d. %s", c.Info.Number, c.Info.Title), 2)
		for _, line := range slideTexts(c) {
			sec.AddText(line.text,
				&style.FontStyle{Size: line.size, Bold: line.bold, Italic: line.italic, Color: line.color},
				nil)
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, wrapExport("docx", "write", err)
	}
	return data, nil
}

type outlineLine struct {
	text   string
	size   float64 // pt
	bold   bool
	italic bool
	color  string
}

// slideTexts lists a slide's text boxes, skipping the page label and
// glyph-only boxes like the logo dot.
func slideTexts(c *Canvas) []outlineLine {
	page := fmt.Sprintf("%d / %d", c.Info.Number, deckSlideCount)
	var lines []outlineLine
	for _, sh := range c.shapes {
		if sh.Kind != ShapeText || sh.Text == page || len([]rune(strings.TrimSpace(sh.Text))) < 2 {
			continue
		}
		color := sh.Style.Color.Hex()
		if color == TextLight.Hex() || color == White.Hex() {
			color = TextDark.Hex()
		}
		for _, l := range strings.Split(sh.Text, "\n") {
			lines = append(lines, outlineLine{
				text:   l,
				size:   outlineSize(sh.Style.Size),
				bold:   sh.Style.Bold,
				italic: sh.Style.Italic,
				color:  color,
			})
		}
	}
	return lines
}

// outlineSize keeps slide sizes readable on a page.
func outlineSize(pt int) float64 {
	switch {
	case pt >= 24:
		return 16
	case pt >= 16:
		return 13
	default:
		return 11
	}
}
