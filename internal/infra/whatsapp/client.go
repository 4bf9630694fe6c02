package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"booking-service/internal/domain"
)

// Client talks to a WhatsApp-Cloud-API-shaped messaging provider. It is an
// unreliable remote: every failure is returned to the caller, never retried
// here, and never rolls back committed booking state.
type Client struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	httpClient    *http.Client
}

func NewClient(baseURL, phoneNumberID, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// NormalizeRecipient converts a raw mobile number to international format.
// Bare 10-digit numbers are assumed domestic and get the +91 prefix;
// 12-digit numbers already starting with 91 are passed through.
func NormalizeRecipient(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	switch {
	case len(n) == 10:
		return "+91" + n, nil
	case len(n) == 12 && strings.HasPrefix(n, "91"):
		return "+" + n, nil
	default:
		return "", domain.ErrInvalidRecipient
	}
}

type mediaUploadResp struct {
	ID string `json:"id"`
}

// UploadMedia pushes the invoice PDF to the provider and returns its media id.
func (c *Client) UploadMedia(ctx context.Context, pdfPath string) (string, error) {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(pdfPath))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	_ = form.WriteField("type", "application/pdf")
	_ = form.WriteField("messaging_product", "whatsapp")
	if err := form.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/media", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out mediaUploadResp
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("whatsapp: media upload returned no id")
	}
	return out.ID, nil
}

func (c *Client) SendInvoice(ctx context.Context, b *domain.Booking, pdfPath string) error {
	to, err := NormalizeRecipient(b.MobileNumber)
	if err != nil {
		return err
	}

	mediaID, err := c.UploadMedia(ctx, pdfPath)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template": map[string]any{
			"name":     "purchase_receipt_1",
			"language": map[string]string{"code": "en_US"},
			"components": []map[string]any{
				{
					"type": "header",
					"parameters": []map[string]any{
						{
							"type": "document",
							"document": map[string]string{
								"id":       mediaID,
								"filename": "receipt.pdf",
							},
						},
					},
				},
				{
					"type": "body",
					"parameters": []map[string]any{
						{"type": "text", "text": fmt.Sprintf("Rs.%.2f", b.Total)},
						{"type": "text", "text": b.OrderID},
						{"type": "text", "text": "receipt"},
					},
				},
			},
		},
	}
	return c.sendMessage(ctx, payload)
}

func (c *Client) SendStatusChange(ctx context.Context, b *domain.Booking, status domain.BookingStatus, shipment *domain.Shipment) error {
	to, err := NormalizeRecipient(b.MobileNumber)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Your order %s is now %s.", b.OrderID, status)
	if status == domain.StatusDispatched && shipment != nil {
		text = fmt.Sprintf("Your order %s has been dispatched via %s (LR %s).", b.OrderID, shipment.Courier, shipment.LRNumber)
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": text},
	}
	return c.sendMessage(ctx, payload)
}

func (c *Client) sendMessage(ctx context.Context, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}
