package server

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/Thucdzio/profilo/internal/cv"
)

const (
	cvCacheMaxBytes = 8 << 20
	cvCacheTTL      = 24 * time.Hour
)

// cvCache keeps generated résumé PDFs for the day they were stamped with.
// A dropped entry only costs a regeneration.
type cvCache struct {
	docs *ristretto.Cache[string, []byte]
}

func newCVCache() (*cvCache, error) {
	docs, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters:        1000,
		MaxCost:            cvCacheMaxBytes,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cv cache: %w", err)
	}
	return &cvCache{docs: docs}, nil
}

// get returns the PDF for day, generating and storing it on a miss.
func (c *cvCache) get(data cv.Data, day time.Time) ([]byte, error) {
	key := day.Format(time.DateOnly)
	if doc, ok := c.docs.Get(key); ok {
		return doc, nil
	}
	var buf bytes.Buffer
	if err := cv.Generate(&buf, data, day); err != nil {
		return nil, err
	}
	doc := buf.Bytes()
	if c.docs.SetWithTTL(key, doc, int64(len(doc)), cvCacheTTL) {
		c.docs.Wait()
	}
	return doc, nil
}

func (c *cvCache) close() {
	c.docs.Close()
}
