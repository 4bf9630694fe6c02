package invoice

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"booking-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testIssuer() Issuer {
	return Issuer{
		Name:    "Phoenix Crackers",
		Address: "Sattur Road, Sivakasi",
		Phone:   "+91 63836 59214",
		Email:   "sales@example.com",
	}
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		OrderID:      "ORD-1",
		CustomerName: "John Doe",
		Address:      "12 Main Street",
		MobileNumber: "9876543210",
		District:     "Virudhunagar",
		State:        "Tamil Nadu",
		CustomerType: "User",
		CreatedAt:    time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		Items: []domain.BookingItem{
			{Name: "Gold Sparkler", Quantity: 2, Price: 100, Discount: 10},
			{Name: "Big Chakra", Quantity: 1, Price: 50, Discount: 0},
		},
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Doe", "john_doe"},
		{"  Asha Stores!  ", "asha_stores"},
		{"A.B.C & Sons", "a_b_c_sons"},
		{"already_clean", "already_clean"},
		{"123", "123"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "slug of %q", tt.in)
	}
}

func TestArtifactPath(t *testing.T) {
	r := NewRenderer("pdf_data", testIssuer())
	assert.Equal(t, filepath.Join("pdf_data", "john_doe-ORD-1.pdf"), r.ArtifactPath("John Doe", "ORD-1"))
	assert.Equal(t, "john_doe-ORD-1.pdf", DownloadFilename("John Doe", "ORD-1"))
}

func TestRender_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testIssuer())

	path, err := r.Render(testBooking())
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "john_doe-ORD-1.pdf"), path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_Deterministic(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testIssuer())
	b := testBooking()

	path1, err := r.Render(b)
	assert.NoError(t, err)
	first, err := os.ReadFile(path1)
	assert.NoError(t, err)

	path2, err := r.Render(b)
	assert.NoError(t, err)
	second, err := os.ReadFile(path2)
	assert.NoError(t, err)

	assert.Equal(t, path1, path2)
	assert.Equal(t, first, second, "re-rendering identical inputs must produce identical bytes")
}

func TestRender_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pdf_data")
	r := NewRenderer(dir, testIssuer())

	path, err := r.Render(testBooking())
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
