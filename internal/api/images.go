package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// uploadResponse is the backend's reply to an image upload: the stored path,
// relative to the image server root.
type uploadResponse struct {
	Path string `json:"path"`
}

// UploadRentDocument uploads a rental documentation image (identification,
// before or after) and returns the stored path. size must be the exact file
// size; uploads over the configured cap are refused before any bytes move.
func (c *Client) UploadRentDocument(ctx context.Context, token, orderID string, doc domain.DocType, filename string, size int64, file io.Reader) (string, error) {
	path := fmt.Sprintf("/images/rent/%s/%s", orderID, doc)
	return c.uploadImage(ctx, token, path, filename, size, file)
}

// UploadTempIdentification uploads an identification image before the order
// exists, under a generated temporary id. The path it returns is reattached
// to the real order id after submission.
func (c *Client) UploadTempIdentification(ctx context.Context, token, filename string, size int64, file io.Reader) (string, error) {
	tempID := "temp-" + uuid.NewString()
	return c.UploadRentDocument(ctx, token, tempID, domain.DocTypeIdentification, filename, size, file)
}

// UploadProductImage uploads a product picture and returns the stored path.
func (c *Client) UploadProductImage(ctx context.Context, token, productID, filename string, size int64, file io.Reader) (string, error) {
	return c.uploadImage(ctx, token, "/images/product/"+productID, filename, size, file)
}

// UpdateRentImagePath reattaches an already-uploaded document path to its
// final order id.
func (c *Client) UpdateRentImagePath(ctx context.Context, token, orderID, path string) error {
	body := struct {
		RentID string `json:"rent_id"`
		Path   string `json:"path"`
	}{RentID: orderID, Path: path}
	return c.do(ctx, token, http.MethodPut, "/images/rent/update-path", body, nil)
}

func (c *Client) uploadImage(ctx context.Context, token, path, filename string, size int64, file io.Reader) (string, error) {
	if c.maxUpload > 0 && size > c.maxUpload {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, size)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out uploadResponse
	if err := c.send(req, token, http.MethodPost, path, &out); err != nil {
		return "", err
	}
	return out.Path, nil
}

// ResolveImageURL turns the relative "/uploads/<type>/<file>" paths the API
// returns into absolute URLs on the image server, which serves the same
// files under "/images/<type>/<file>".
func (c *Client) ResolveImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if rest, ok := strings.CutPrefix(path, "/uploads/"); ok {
		return c.imageBaseURL + "/images/" + rest
	}
	if !strings.HasPrefix(path, "/") {
		return c.imageBaseURL + "/" + path
	}
	return c.imageBaseURL + path
}
