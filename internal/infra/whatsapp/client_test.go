package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"booking-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecipient(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9876543210", "+919876543210", false},
		{"98765 43210", "+919876543210", false},
		{"98765-43210", "+919876543210", false},
		{"919876543210", "+919876543210", false},
		{"+91 98765 43210", "+919876543210", false},
		{"12345", "", true},
		{"129876543210", "", true}, // 12 digits but wrong country code
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeRecipient(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidRecipient, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func booking() *domain.Booking {
	return &domain.Booking{
		OrderID:      "ORD-1",
		CustomerName: "John Doe",
		MobileNumber: "9876543210",
		Total:        230,
	}
}

func TestSendStatusChange(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PHONE_ID/messages", r.URL.Path)
		assert.Equal(t, "Bearer TOKEN", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "PHONE_ID", "TOKEN", 2*time.Second)
	err := c.SendStatusChange(context.Background(), booking(), domain.StatusDispatched, &domain.Shipment{
		Courier: "ABC Transport", LRNumber: "LR123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "+919876543210", got["to"])
	assert.Equal(t, "text", got["type"])
	body := got["text"].(map[string]any)["body"].(string)
	assert.Contains(t, body, "ABC Transport")
	assert.Contains(t, body, "LR123")
}

func TestSendStatusChange_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "PHONE_ID", "TOKEN", 2*time.Second)
	err := c.SendStatusChange(context.Background(), booking(), domain.StatusPaid, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSendStatusChange_InvalidRecipient(t *testing.T) {
	c := NewClient("http://unused", "PHONE_ID", "TOKEN", time.Second)
	b := booking()
	b.MobileNumber = "12345"
	err := c.SendStatusChange(context.Background(), b, domain.StatusPaid, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipient)
}

func TestSendInvoice_UploadsMediaThenSendsTemplate(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "john_doe-ORD-1.pdf")
	assert.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 test"), 0o644))

	var mediaUploaded, templateSent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/PHONE_ID/media":
			mediaUploaded = true
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "whatsapp", r.FormValue("messaging_product"))
			json.NewEncoder(w).Encode(map[string]string{"id": "MEDIA-99"})
		case "/PHONE_ID/messages":
			templateSent = true
			var payload map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "template", payload["type"])
			assert.Equal(t, "+919876543210", payload["to"])
			tpl := payload["template"].(map[string]any)
			assert.Equal(t, "purchase_receipt_1", tpl["name"])
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "PHONE_ID", "TOKEN", 2*time.Second)
	err := c.SendInvoice(context.Background(), booking(), pdfPath)
	assert.NoError(t, err)
	assert.True(t, mediaUploaded)
	assert.True(t, templateSent)
}

func TestSendInvoice_MissingArtifact(t *testing.T) {
	c := NewClient("http://unused", "PHONE_ID", "TOKEN", time.Second)
	err := c.SendInvoice(context.Background(), booking(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
