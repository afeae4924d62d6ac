// ABOUTME: Multipart form encoding for image-bearing creates
// ABOUTME: Scalar fields as form values, every image under the shared "images" field

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// imagesFieldName is the shared multipart field every image is appended
// under, matching the backend's upload handler.
const imagesFieldName = "images"

// Upload is one image attachment for a multipart create.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// postMultipart submits fields and images as a single multipart request.
// The backend owns atomicity: there is no separate upload step to partially
// fail.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, images []Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	for _, img := range images {
		part, err := w.CreateFormFile(imagesFieldName, img.Filename)
		if err != nil {
			return fmt.Errorf("creating image part %s: %w", img.Filename, err)
		}
		if _, err := io.Copy(part, img.Reader); err != nil {
			return fmt.Errorf("copying image %s: %w", img.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	data, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(data, out)
}
