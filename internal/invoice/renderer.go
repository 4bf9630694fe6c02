package invoice

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"booking-service/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// Issuer is the header block printed on every invoice.
type Issuer struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Renderer produces the invoice PDF for a booking. The artifact is a cache:
// the booking row stays authoritative and the same inputs always produce
// the same bytes, so overwriting on regeneration is safe.
type Renderer struct {
	dir    string
	issuer Issuer
}

func NewRenderer(dir string, issuer Issuer) *Renderer {
	return &Renderer{dir: dir, issuer: issuer}
}

// Slug normalizes a customer name for use in artifact paths and download
// filenames: lowercase, runs of non-alphanumerics collapsed to "_",
// leading/trailing "_" trimmed.
func Slug(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// ArtifactPath returns the durable location for a booking's invoice. The
// path is a pure function of (customer name, order id), so it is known
// before the document is ever rendered.
func (r *Renderer) ArtifactPath(customerName, orderID string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s-%s.pdf", Slug(customerName), orderID))
}

// DownloadFilename is the content-disposition name for the artifact.
func DownloadFilename(customerName, orderID string) string {
	return fmt.Sprintf("%s-%s.pdf", Slug(customerName), orderID)
}

// Render writes the invoice document for b and returns its path. Rendering
// is deterministic: the PDF creation date is pinned to the booking's
// creation timestamp so repeated renders are byte-identical.
func (r *Renderer) Render(b *domain.Booking) (string, error) {
	data, err := r.renderBytes(b)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := r.ArtifactPath(b.CustomerName, b.OrderID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *Renderer) renderBytes(b *domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(b.CreatedAt.UTC())
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, r.issuer.Name)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Location: "+r.issuer.Address)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Mobile Number: "+r.issuer.Phone)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Email Address: "+r.issuer.Email)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	customer := [][2]string{
		{"Customer Name", orNA(b.CustomerName)},
		{"Contact", orNA(b.MobileNumber)},
		{"Address", orNA(b.Address)},
		{"District", orNA(b.District)},
		{"State", orNA(b.State)},
		{"Customer Type", orNA(b.CustomerType)},
		{"Order ID", b.OrderID},
	}
	for _, row := range customer {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s", row[0], row[1]))
		pdf.Ln(6)
	}
	pdf.Ln(8)

	const (
		colProduct = 80.0
		colQty     = 30.0
		colPrice   = 40.0
		colTotal   = 40.0
	)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colProduct, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 7, "Quantity", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colPrice, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	grand := domain.BookingTotal(b.Items)
	for _, it := range b.Items {
		line, _ := domain.LineTotal(it.Price, it.Discount, it.Quantity).Round(2).Float64()
		pdf.CellFormat(colProduct, 7, it.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 7, fmt.Sprintf("%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, 7, fmt.Sprintf("Rs.%.2f", it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 7, fmt.Sprintf("Rs.%.2f", line), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colProduct+colQty+colPrice+colTotal, 8, fmt.Sprintf("Total: Rs.%.2f", grand), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
