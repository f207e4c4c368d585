package export

import (
	"bytes"

	gospreadsheet "github.com/VantageDataChat/GoExcel"
)

// InventoryService exports the shape plan as a spreadsheet so the coordinates
// can be handed to whoever builds the UI.
type InventoryService struct{}

// NewInventoryService creates a new inventory service
func NewInventoryService() *InventoryService {
	return &InventoryService{}
}

var inventoryColumns = []string{
	"Slide", "Title", "#", "Kind", "X (in)", "Y (in)", "W (in)", "H (in)",
	"Fill", "Border", "Radius", "Alpha %", "Text", "Size", "Bold", "Italic", "Align",
}

// ExportInventoryToExcel writes a "Shapes" sheet and a "Palette" sheet.
func (s *InventoryService) ExportInventoryToExcel(d *Deck) ([]byte, error) {
	if d == nil || len(d.canvases) == 0 {
		return nil, wrapExport("xlsx", "layout", ErrNoSlides)
	}

	wb := gospreadsheet.New()
	ws := wb.GetActiveSheet()
	ws.SetTitle("Shapes")

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  deckFontFamily,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: Accent.Hex(),
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: deckFontFamily,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: Border.Hex()},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: Border.Hex()},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: Border.Hex()},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: Border.Hex()},
		})

	for i, title := range inventoryColumns {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, title)
		ws.SetCellStyle(cellName, headerStyle)
	}
	ws.SetColumnWidth(1, 24)
	ws.SetColumnWidth(12, 60)
	ws.SetRowHeight(0, 25)

	row := 1
	for _, c := range d.canvases {
		for i, sh := range c.shapes {
			for col, value := range inventoryRow(c.Info, i+1, sh) {
				cellName, _ := gospreadsheet.CellName(row, col)
				ws.SetCellValue(cellName, value)
				ws.SetCellStyle(cellName, dataStyle)
			}
			row++
		}
	}
	ws.FreezePane("A2")

	pal, err := wb.AddSheet("Palette")
	if err != nil {
		return nil, wrapExport("xlsx", "create palette sheet", err)
	}
	for i, title := range []string{"Name", "Hex", "Swatch"} {
		cellName, _ := gospreadsheet.CellName(0, i)
		pal.SetCellValue(cellName, title)
		pal.SetCellStyle(cellName, headerStyle)
	}
	for i, entry := range Palette() {
		nameCell, _ := gospreadsheet.CellName(i+1, 0)
		hexCell, _ := gospreadsheet.CellName(i+1, 1)
		swatchCell, _ := gospreadsheet.CellName(i+1, 2)
		pal.SetCellValue(nameCell, entry.Name)
		pal.SetCellValue(hexCell, "#"+entry.Color.Hex())
		pal.SetCellStyle(swatchCell, gospreadsheet.NewStyle().SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: entry.Color.Hex(),
		}))
	}

	wb.Properties.Title = "YAgent UI design: shape inventory"
	wb.Properties.Creator = "YAgent"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, wrapExport("xlsx", "write", err)
	}
	return buf.Bytes(), nil
}

func inventoryRow(info SlideInfo, index int, sh ShapeSpec) []interface{} {
	fill, border := "", ""
	if sh.Fill != nil {
		fill = "#" + sh.Fill.Hex()
	}
	if sh.Border != nil {
		border = "#" + sh.Border.Hex()
	}
	row := []interface{}{
		info.Number, info.Title, index, string(sh.Kind),
		roundInches(sh.X), roundInches(sh.Y), roundInches(sh.W), roundInches(sh.H),
		fill, border, sh.Radius, alphaPercent(sh.Alpha),
	}
	if sh.Kind == ShapeText {
		return append(row, sh.Text, sh.Style.Size, sh.Style.Bold, sh.Style.Italic, sh.Style.Align.String())
	}
	return append(row, "", "", "", "", "")
}

func roundInches(emu int64) float64 {
	v := EMUToInches(emu)
	return float64(int64(v*1000+0.5)) / 1000
}

func alphaPercent(alpha int) int {
	if alpha <= 0 || alpha >= 100 {
		return 100
	}
	return alpha
}
