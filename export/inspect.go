package export

import (
	"archive/zip"
	"fmt"
	"strconv"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/beevik/etree"
	"github.com/hashicorp/go-multierror"
)

// SlideSummary is what a PPTX reader sees on one slide.
type SlideSummary struct {
	Number     int
	Shapes     int
	Geometries []string // per <p:sp>: preset name, or "text" for text boxes
	Texts      []string
}

// InspectDeck reads a PPTX file and summarizes every slide. Texts come from
// GoPPT's reader; shapes are counted from the slide XML because the reader
// drops rectangles that carry no text.
func InspectDeck(path string) ([]SlideSummary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, wrapExport("pptx", "read", err)
	}
	geometries, err := slideGeometries(path)
	if err != nil {
		return nil, wrapExport("pptx", "read shapes", err)
	}

	slides := pres.GetAllSlides()
	summaries := make([]SlideSummary, 0, len(slides))
	for i, slide := range slides {
		sum := SlideSummary{Number: i + 1, Geometries: geometries[i+1]}
		sum.Shapes = len(sum.Geometries)
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			var lines []string
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				lines = append(lines, text)
			}
			if joined := strings.TrimSpace(strings.Join(lines, "\n")); joined != "" {
				sum.Texts = append(sum.Texts, joined)
			}
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// slideGeometries lists the shape geometry of every slide part, by slide number.
func slideGeometries(path string) (map[int][]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out := make(map[int][]string)
	for _, f := range zr.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		doc := etree.NewDocument()
		_, err = doc.ReadFrom(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Name, err)
		}

		geoms := []string{}
		for _, sp := range children(child(child(doc.Root(), "cSld"), "spTree"), "sp") {
			geoms = append(geoms, shapeGeometry(sp))
		}
		out[n] = geoms
	}
	return out, nil
}

func shapeGeometry(sp *etree.Element) string {
	if cNvSpPr := child(child(sp, "nvSpPr"), "cNvSpPr"); cNvSpPr != nil && cNvSpPr.SelectAttrValue("txBox", "") == "1" {
		return string(ShapeText)
	}
	if geom := child(child(sp, "spPr"), "prstGeom"); geom != nil {
		return geom.SelectAttrValue("prst", "")
	}
	return ""
}

// VerifyDeck checks a read-back summary against the deck that was drawn and
// reports every difference.
func VerifyDeck(d *Deck, summaries []SlideSummary) error {
	var result error
	if len(summaries) != len(d.canvases) {
		result = multierror.Append(result,
			fmt.Errorf("file has %d slides, deck has %d", len(summaries), len(d.canvases)))
	}
	for i, c := range d.canvases {
		if i >= len(summaries) {
			break
		}
		got := summaries[i]
		if want := len(c.shapes); got.Shapes != want {
			result = multierror.Append(result,
				fmt.Errorf("slide %d (%s): %d shapes, want %d: %w", c.Info.Number, c.Info.Title, got.Shapes, want, ErrShapeMismatch))
			continue
		}
		for j, g := range got.Geometries {
			if j >= len(c.shapes) {
				break
			}
			if want := string(c.shapes[j].Kind); g != want {
				result = multierror.Append(result,
					fmt.Errorf("slide %d (%s) shape %d: %s, want %s: %w", c.Info.Number, c.Info.Title, j+1, g, want, ErrShapeMismatch))
				break
			}
		}
	}
	return result
}
