package cv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
)

// ErrPrebuiltNotFound means the pre-built document did not answer with a 2xx.
var ErrPrebuiltNotFound = errors.New("pre-generated PDF not found")

// Document is a fetched file ready to be served as a download.
type Document struct {
	ContentType string
	Body        []byte
}

// FetchPrebuilt downloads the pre-built résumé at url. There is no retry; a
// failure is logged and returned to the caller.
func FetchPrebuilt(ctx context.Context, client *http.Client, url string) (*Document, error) {
	doc, err := fetch(ctx, client, url)
	if err != nil {
		log.Printf("Error downloading pre-generated CV: %v", err)
		return nil, err
	}
	return doc, nil
}

func fetch(ctx context.Context, client *http.Client, url string) (*Document, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build cv request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrPrebuiltNotFound, url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/pdf"
	}
	return &Document{ContentType: ct, Body: body}, nil
}
