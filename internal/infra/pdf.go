package infra

// pdf.go genera comprobantes de pago en formato A7 (papel térmico) con
// go-pdf/fpdf: encabezado del local, datos de la atención, detalle de
// servicios, total, pago registrado y saldo restante.
//
// The output file is saved to storagePath/comprobante_{pagoID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edulopezdev/barberiaLopez/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateComprobantePDF renders a receipt for one payment against an
// atencion. The atencion must be loaded with Detalles (and their catalog
// rows) and Pagos. Returns the absolute path of the written file.
func GenerateComprobantePDF(atencion *model.Atencion, pago *model.Pago, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("comprobante_%d.pdf", pago.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Barbería López", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Pago", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Atencion info ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Atención N° %d", atencion.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, pago.Fecha.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if atencion.Cliente != nil {
		pdf.CellFormat(contentW, 4, "Cliente: "+atencion.Cliente.Nombre, "", 1, "L", false, 0, "")
	}
	if atencion.Barbero != nil {
		pdf.CellFormat(contentW, 4, "Atendido por: "+atencion.Barbero.Nombre, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Detail table ─────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Servicio", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, det := range atencion.Detalles {
		nombre := ""
		if det.ProductoServicio != nil {
			nombre = det.ProductoServicio.Nombre
		}
		nombre = truncar(nombre, 22)
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", det.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+det.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+atencion.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Pago ("+pago.MetodoPago+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, "$"+pago.Monto.StringFixed(2), "", 1, "R", false, 0, "")

	pagado := decimal.Zero
	for _, p := range atencion.Pagos {
		pagado = pagado.Add(p.Monto)
	}
	if pagado.Add(pago.Monto).LessThan(atencion.Total) {
		saldo := atencion.Total.Sub(pagado).Sub(pago.Monto)
		pdf.CellFormat(col1+col2, 4, "Saldo restante:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "$"+saldo.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su visita!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// truncar shortens s to at most max characters, appending an ellipsis.
// Cuts on runes, not bytes: catalog names carry accented letters and a
// byte cut could split one in half.
func truncar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
