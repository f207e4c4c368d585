package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/beevik/etree"
)

const (
	testPresentationXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldSz cx="12188952" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/></p:presentation>`

	// the shape markup GoPPT writes: preset geometry with an empty avLst,
	// opaque srgbClr fills and text boxes flagged txBox="1"
	testSlideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FAFAF8"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree><p:nvGrpSpPr/><p:grpSpPr/>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="1"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm/><a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="F0EFEB"/></a:solidFill><a:ln w="12700"><a:solidFill><a:srgbClr val="E5E4E0"/></a:solidFill></a:ln></p:spPr></p:sp>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="3" name="2"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm/><a:prstGeom prst="ellipse"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="D97757"/></a:solidFill></p:spPr></p:sp>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="4" name="3"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm/></p:spPr><p:txBody><a:bodyPr wrap="square"/><a:p/></p:txBody></p:sp>` +
		`</p:spTree></p:cSld></p:sld>`

	testPlainSlideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr/><p:grpSpPr/>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="1"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm/><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill></p:spPr></p:sp>` +
		`</p:spTree></p:cSld></p:sld>`

	testContentTypes = `<Types/>`
)

func buildTestPackage(t *testing.T, parts map[string]string, order []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := io.WriteString(w, parts[name]); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func defaultTestPackage(t *testing.T) []byte {
	return buildTestPackage(t, map[string]string{
		"[Content_Types].xml":   testContentTypes,
		"ppt/presentation.xml":  testPresentationXML,
		"ppt/slides/slide1.xml": testSlideXML,
	}, []string{"[Content_Types].xml", "ppt/presentation.xml", "ppt/slides/slide1.xml"})
}

func testDeck(shapes ...ShapeSpec) *Deck {
	bg := BgLight
	return &Deck{
		Width:  deckSlideWidth,
		Height: deckSlideHeight,
		canvases: []*Canvas{{
			Info:       SlideInfo{Number: 1, Title: "test"},
			background: &bg,
			shapes:     shapes,
		}},
	}
}

func threeShapes() []ShapeSpec {
	panel, accent := Panel, Accent
	return []ShapeSpec{
		{Kind: ShapeRoundRect, Fill: &panel, Border: outline(Border), Radius: 8000},
		{Kind: ShapeEllipse, Fill: &accent, Alpha: 60},
		{Kind: ShapeText, Text: "hello", Style: TextStyle{Size: 14}},
	}
}

func rawPart(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return body
	}
	t.Fatalf("%s not found in output", name)
	return nil
}

func readPart(t *testing.T, data []byte, name string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawPart(t, data, name)); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return doc
}

func TestFinishPackage_AdjAndAlpha(t *testing.T) {
	out, err := finishPackage(defaultTestPackage(t), testDeck(threeShapes()...))
	if err != nil {
		t.Fatalf("finishPackage failed: %v", err)
	}

	spTree := child(child(readPart(t, out, "ppt/slides/slide1.xml").Root(), "cSld"), "spTree")
	sps := children(spTree, "sp")
	if len(sps) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(sps))
	}

	// rounded rect: adj guide added, border left as written
	spPr := child(sps[0], "spPr")
	gds := children(child(child(spPr, "prstGeom"), "avLst"), "gd")
	if len(gds) != 1 || gds[0].SelectAttrValue("name", "") != "adj" || gds[0].SelectAttrValue("fmla", "") != "val 8000" {
		t.Errorf("unexpected adj guides %v", gds)
	}
	if child(spPr, "ln").SelectAttrValue("w", "") != "12700" {
		t.Error("border should be carried over")
	}
	if child(child(child(spPr, "solidFill"), "srgbClr"), "alpha") != nil {
		t.Error("opaque fill gained an alpha")
	}

	// ellipse: alpha added, no guide
	spPr = child(sps[1], "spPr")
	alpha := child(child(child(spPr, "solidFill"), "srgbClr"), "alpha")
	if alpha == nil || alpha.SelectAttrValue("val", "") != "60000" {
		t.Errorf("unexpected alpha %v", alpha)
	}
	if len(children(child(child(spPr, "prstGeom"), "avLst"), "gd")) != 0 {
		t.Error("ellipse should have no guides")
	}

	// text box untouched
	if child(child(sps[2], "spPr"), "prstGeom") != nil {
		t.Error("text box gained a geometry")
	}

	// background written by the builder survives
	if child(child(readPart(t, out, "ppt/slides/slide1.xml").Root(), "cSld"), "bg") == nil {
		t.Error("background lost")
	}
}

func TestFinishPackage_ReplacesExistingGuides(t *testing.T) {
	slide := bytes.Replace([]byte(testSlideXML),
		[]byte(`<a:prstGeom prst="roundRect"><a:avLst/>`),
		[]byte(`<a:prstGeom prst="roundRect"><a:avLst><a:gd name="adj" fmla="val 16667"/></a:avLst>`), 1)
	data := buildTestPackage(t, map[string]string{
		"ppt/slides/slide1.xml": string(slide),
	}, []string{"ppt/slides/slide1.xml"})

	out, err := finishPackage(data, testDeck(threeShapes()...))
	if err != nil {
		t.Fatalf("finishPackage failed: %v", err)
	}
	sp := children(child(child(readPart(t, out, "ppt/slides/slide1.xml").Root(), "cSld"), "spTree"), "sp")[0]
	gds := children(child(child(child(sp, "spPr"), "prstGeom"), "avLst"), "gd")
	if len(gds) != 1 || gds[0].SelectAttrValue("fmla", "") != "val 8000" {
		t.Errorf("expected a single val 8000 guide, got %v", gds)
	}
}

func TestFinishPackage_CopiesPlainPartsVerbatim(t *testing.T) {
	white := White
	d := testDeck(threeShapes()...)
	d.canvases = append(d.canvases, &Canvas{
		Info:   SlideInfo{Number: 2, Title: "plain"},
		shapes: []ShapeSpec{{Kind: ShapeRect, Fill: &white}},
	})
	in := buildTestPackage(t, map[string]string{
		"[Content_Types].xml":   testContentTypes,
		"ppt/presentation.xml":  testPresentationXML,
		"ppt/slides/slide1.xml": testSlideXML,
		"ppt/slides/slide2.xml": testPlainSlideXML,
	}, []string{"[Content_Types].xml", "ppt/presentation.xml", "ppt/slides/slide1.xml", "ppt/slides/slide2.xml"})

	out, err := finishPackage(in, d)
	if err != nil {
		t.Fatalf("finishPackage failed: %v", err)
	}
	for _, name := range []string{"[Content_Types].xml", "ppt/presentation.xml", "ppt/slides/slide2.xml"} {
		if !bytes.Equal(rawPart(t, out, name), rawPart(t, in, name)) {
			t.Errorf("%s changed", name)
		}
	}
	if bytes.Equal(rawPart(t, out, "ppt/slides/slide1.xml"), rawPart(t, in, "ppt/slides/slide1.xml")) {
		t.Error("slide 1 should have been finished")
	}
}

func TestFinishPackage_ShapeMismatch(t *testing.T) {
	shapes := threeShapes()[:2]
	_, err := finishPackage(defaultTestPackage(t), testDeck(shapes...))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestFinishPackage_GeometryMismatch(t *testing.T) {
	shapes := threeShapes()
	// the package holds an ellipse where a rounded card was drawn
	shapes[0], shapes[1] = shapes[1], shapes[0]
	shapes[0].Radius = 5000
	_, err := finishPackage(defaultTestPackage(t), testDeck(shapes...))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestFinishPackage_AlphaWithoutFill(t *testing.T) {
	shapes := threeShapes()
	shapes[2] = ShapeSpec{Kind: ShapeRect, Alpha: 40}
	_, err := finishPackage(defaultTestPackage(t), testDeck(shapes...))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestFinishPackage_SlideMissing(t *testing.T) {
	d := testDeck(threeShapes()...)
	d.canvases = append(d.canvases, &Canvas{Info: SlideInfo{Number: 2}})
	_, err := finishPackage(defaultTestPackage(t), d)
	if !errors.Is(err, ErrSlideMissing) {
		t.Fatalf("expected ErrSlideMissing, got %v", err)
	}
}

func TestFinishPackage_ExtraSlide(t *testing.T) {
	data := buildTestPackage(t, map[string]string{
		"ppt/presentation.xml":  testPresentationXML,
		"ppt/slides/slide1.xml": testSlideXML,
		"ppt/slides/slide2.xml": testSlideXML,
	}, []string{"ppt/presentation.xml", "ppt/slides/slide1.xml", "ppt/slides/slide2.xml"})

	if _, err := finishPackage(data, testDeck(threeShapes()...)); err == nil {
		t.Fatal("expected an error for a slide the deck does not have")
	}
}

func TestFinishPackage_NotAZip(t *testing.T) {
	if _, err := finishPackage([]byte("not a zip"), testDeck()); err == nil {
		t.Fatal("expected an error")
	}
}
