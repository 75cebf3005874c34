package output

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/sjzsdu/vpm/viewpoint"
)

const pdfFontFamily = "vpm"

// PDFExporter 生成视点树的 PDF 报告
type PDFExporter struct {
	model    *viewpoint.Model
	fontPath string
}

// NewPDFExporter fontPath 指向 TTF 字体时支持任意 Unicode 文本，
// 否则使用内置 Helvetica，无法编码的字符会被替换
func NewPDFExporter(m *viewpoint.Model, fontPath string) *PDFExporter {
	return &PDFExporter{model: m, fontPath: fontPath}
}

func (e *PDFExporter) Export(path string) (Result, error) {
	if err := checkEmpty(e.model); err != nil {
		return Result{}, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if e.fontPath != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", e.fontPath)
		family = pdfFontFamily
		tr = func(s string) string { return s }
	}
	pdf.SetTitle(e.model.Root().Name, true)
	pdf.AddPage()

	root := e.model.Root()
	pdf.SetFont(family, "", 16)
	pdf.CellFormat(0, 10, tr(root.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("folders: %d  views: %d  pool: %d",
		countFolders(root), root.CountViews(), e.model.Pool().Len())), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	var res Result
	_ = viewpoint.Walk(root, func(n *viewpoint.Node, depth int) error {
		if n == root {
			return nil
		}
		pdf.SetX(10 + float64(depth-1)*6)
		if n.IsFolder() {
			res.Folders++
			pdf.SetFont(family, "", 11)
			pdf.CellFormat(0, 6, tr(folderLabel(n)), "", 1, "L", false, 0, "")
			return nil
		}
		res.Views++
		pdf.SetFont(family, "", 9)
		pdf.CellFormat(0, 5, tr(strings.TrimSpace(n.Name+"  "+n.ID)), "", 1, "L", false, 0, "")
		return nil
	})

	if err := pdf.OutputFileAndClose(path); err != nil {
		return res, err
	}
	res.Path = path
	return res, nil
}
