package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/beevik/etree"
)

// GoPPT writes preset geometry with an empty <a:avLst> and opaque colors.
// The finishing pass adds what its builder cannot express: the roundRect
// "adj" guide and <a:alpha> on translucent fills.

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func finishPackage(data []byte, d *Deck) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}

	patched := make(map[string][]byte)
	seen := make(map[int]bool)
	for _, f := range zr.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		if n < 1 || n > len(d.canvases) {
			return nil, fmt.Errorf("%s: deck has %d slides", f.Name, len(d.canvases))
		}
		c := d.canvases[n-1]
		seen[n] = true
		if !c.needsFinishing() {
			continue
		}
		out, err := patchPart(f, func(doc *etree.Document) error {
			return finishSlide(doc, c)
		})
		if err != nil {
			return nil, err
		}
		patched[f.Name] = out
	}

	for i := range d.canvases {
		if !seen[i+1] {
			return nil, fmt.Errorf("slide %d: %w", i+1, ErrSlideMissing)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		body, ok := patched[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return nil, fmt.Errorf("copy %s: %w", f.Name, err)
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.Name, err)
		}
		if _, err := w.Write(body); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

// needsFinishing reports whether any shape carries an adj guide or alpha.
func (c *Canvas) needsFinishing() bool {
	for _, sh := range c.shapes {
		if sh.Radius > 0 || translucent(sh.Alpha) {
			return true
		}
	}
	return false
}

func translucent(alpha int) bool {
	return alpha > 0 && alpha < 100
}

func patchPart(f *zip.File, fn func(doc *etree.Document) error) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%s: empty document", f.Name)
	}
	if err := fn(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return doc.WriteToBytes()
}

// finishSlide pairs the i-th <p:sp> with the i-th drawn shape.
func finishSlide(doc *etree.Document, c *Canvas) error {
	root := doc.Root()
	ans := drawingMLPrefix(root)

	spTree := child(child(root, "cSld"), "spTree")
	if spTree == nil {
		return fmt.Errorf("slide %d: no spTree", c.Info.Number)
	}

	shapes := children(spTree, "sp")
	if len(shapes) != len(c.shapes) {
		return fmt.Errorf("slide %d: %d shapes in package, %d drawn: %w",
			c.Info.Number, len(shapes), len(c.shapes), ErrShapeMismatch)
	}
	for i, sp := range shapes {
		if err := finishShape(sp, c.shapes[i], ans); err != nil {
			return fmt.Errorf("slide %d shape %d: %w", c.Info.Number, i+1, err)
		}
	}
	return nil
}

func finishShape(sp *etree.Element, spec ShapeSpec, ans string) error {
	if spec.Kind == ShapeText {
		return nil
	}
	spPr := child(sp, "spPr")

	if spec.Radius > 0 {
		geom := child(spPr, "prstGeom")
		if geom == nil || geom.SelectAttrValue("prst", "") != string(spec.Kind) {
			return fmt.Errorf("expected %s geometry: %w", spec.Kind, ErrShapeMismatch)
		}
		avLst := child(geom, "avLst")
		if avLst == nil {
			avLst = geom.CreateElement(qname(ans, "avLst"))
		}
		for _, old := range children(avLst, "gd") {
			avLst.RemoveChild(old)
		}
		gd := avLst.CreateElement(qname(ans, "gd"))
		gd.CreateAttr("name", "adj")
		gd.CreateAttr("fmla", fmt.Sprintf("val %d", spec.Radius))
	}

	if translucent(spec.Alpha) {
		clr := child(child(spPr, "solidFill"), "srgbClr")
		if clr == nil {
			return fmt.Errorf("no solid fill for alpha: %w", ErrShapeMismatch)
		}
		a := clr.CreateElement(qname(ans, "alpha"))
		a.CreateAttr("val", strconv.Itoa(spec.Alpha*1000))
	}
	return nil
}

// drawingMLPrefix finds the prefix bound to the DrawingML namespace on the
// root, declaring "a" when the writer did not.
func drawingMLPrefix(root *etree.Element) string {
	for _, attr := range root.Attr {
		if attr.Space == "xmlns" && attr.Value == drawingMLNS {
			return attr.Key
		}
	}
	root.CreateAttr("xmlns:a", drawingMLNS)
	return "a"
}

const drawingMLNS = "http://schemas.openxmlformats.org/drawingml/2006/main"

func qname(prefix, tag string) string {
	if prefix == "" {
		return tag
	}
	return prefix + ":" + tag
}

// child and children match on the local name; a nil parent has no children.
func child(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func children(el *etree.Element, tag string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}
