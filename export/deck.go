package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideInfo identifies a slide in reports and companion exports.
type SlideInfo struct {
	Number int
	Title  string
}

// Deck is a built presentation together with the plan of every slide.
type Deck struct {
	pres     *ppt.Presentation
	Width    int64
	Height   int64
	canvases []*Canvas
}

// Slides returns the slide canvases in order.
func (d *Deck) Slides() []*Canvas {
	return d.canvases
}

// ShapeCounts returns the number of shapes drawn on each slide.
func (d *Deck) ShapeCounts() []int {
	counts := make([]int, len(d.canvases))
	for i, c := range d.canvases {
		counts[i] = len(c.shapes)
	}
	return counts
}

// DesignDeckService builds the YAgent UI design deck using GoPPT.
type DesignDeckService struct{}

// NewDesignDeckService creates a new deck service
func NewDesignDeckService() *DesignDeckService {
	return &DesignDeckService{}
}

// BuildDeck lays out the eight slides.
func (s *DesignDeckService) BuildDeck() *Deck {
	p := ppt.New()
	p.GetDocumentProperties().Title = "YAgent — дизайн интерфейса"
	p.GetDocumentProperties().Creator = "YAgent"
	p.GetLayout().SetCustomLayout(deckSlideWidth, deckSlideHeight)

	d := &Deck{pres: p, Width: deckSlideWidth, Height: deckSlideHeight}

	slides := []struct {
		title string
		draw  func(c *Canvas)
	}{
		{"Cover", s.addCoverSlide},
		{"Onboarding: welcome", s.addWelcomeSlide},
		{"Onboarding: API key", s.addAPIKeySlide},
		{"Main interface", s.addMainInterfaceSlide},
		{"New project modal", s.addNewProjectSlide},
		{"Chat in project", s.addProjectChatSlide},
		{"Dark theme", s.addDarkThemeSlide},
		{"Ready for development", s.addFinalSlide},
	}

	for i, sl := range slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		c := newCanvas(slide, SlideInfo{Number: i + 1, Title: sl.title})
		sl.draw(c)
		d.canvases = append(d.canvases, c)
	}

	return d
}

// ExportDeckToPPT serializes the deck and applies the finishing pass.
func (s *DesignDeckService) ExportDeckToPPT(d *Deck) ([]byte, error) {
	if d == nil || len(d.canvases) == 0 {
		return nil, ErrNoSlides
	}

	w, err := ppt.NewWriter(d.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, wrapExport("pptx", "create writer", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, wrapExport("pptx", "serialize", err)
	}

	finished, err := finishPackage(buf.Bytes(), d)
	if err != nil {
		return nil, wrapExport("pptx", "finish package", err)
	}
	return finished, nil
}

// SaveDeck writes the finished deck to path, creating parent directories.
func (s *DesignDeckService) SaveDeck(d *Deck, path string) error {
	data, err := s.ExportDeckToPPT(d)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
