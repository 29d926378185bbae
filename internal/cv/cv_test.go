package cv

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeWidth makes every character 2mm wide, so 80 characters fill a line.
func runeWidth(s string, _ float64) float64 {
	return float64(utf8.RuneCountInString(s)) * 2
}

var fixedNow = time.Date(2025, time.August, 6, 10, 0, 0, 0, time.UTC)

func find(ops []Op, text string) (Op, bool) {
	for _, op := range ops {
		if op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Le Tien Thuc", d.PersonalInfo.Name)
	assert.Equal(t, "0355439413", d.PersonalInfo.Mobile)
	assert.Len(t, d.Projects, 4)
	assert.Equal(t, "Le_Tien_Thuc_CV.pdf", FileName(d))
}

func TestParseRequiresName(t *testing.T) {
	_, err := Parse([]byte("education: {institution: X}"))
	assert.Error(t, err)
	_, err = Parse([]byte(": not yaml ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personal_info:\n  name: Jane Doe\n"), 0o644))
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe_CV.pdf", FileName(d))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	w := func(s string) float64 { return float64(len(s)) }
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrap(w, "aaa bbb ccc", 8))
	assert.Equal(t, []string{"short"}, wrap(w, "short", 80))
	assert.Equal(t, []string{"  lead", "text"}, wrap(w, "  lead text", 7))
	assert.Equal(t, []string{"enormousword", "x"}, wrap(w, "enormousword x", 5))
}

func TestLayoutBreaksAfterProjects(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	ops := Layout(d, fixedNow, runeWidth)

	name, ok := find(ops, "Le Tien Thuc")
	require.True(t, ok)
	assert.Equal(t, 1, name.Page)
	assert.Equal(t, 24.0, name.Size)

	// four projects push the cursor far past the threshold
	k, ok := find(ops, "KNOWLEDGE")
	require.True(t, ok)
	assert.Equal(t, 2, k.Page)
	assert.Equal(t, topMargin, k.Y)

	footer, ok := find(ops, "Generated on 8/6/2025")
	require.True(t, ok)
	assert.Equal(t, 2, footer.Page)
	assert.Equal(t, footerY, footer.Y)
}

func TestLayoutCursorBookkeeping(t *testing.T) {
	d := Data{
		PersonalInfo: PersonalInfo{Name: "A"},
		Projects: []Project{
			// 2 + 78 chars: one line
			{Title: "One", Description: string(bytes.Repeat([]byte("x"), 78)), GithubURL: "u1"},
		},
		Knowledge: []string{"k"},
	}
	ops := Layout(d, fixedNow, runeWidth)

	url, ok := find(ops, "  u1")
	require.True(t, ok)
	assert.Equal(t, 150.0+rowHeight+rowHeight, url.Y)

	// 150 + 30 + 10 = 190, below the threshold
	k, ok := find(ops, "KNOWLEDGE")
	require.True(t, ok)
	assert.Equal(t, 1, k.Page)
	assert.Equal(t, 190.0, k.Y)

	item, ok := find(ops, "• k")
	require.True(t, ok)
	assert.Equal(t, 210.0, item.Y)

	skills, ok := find(ops, "PROGRAMMING SKILLS")
	require.True(t, ok)
	// 210 + 10 + 5 + 10
	assert.Equal(t, 235.0, skills.Y)
}

func TestLayoutWrappedDescriptionAdvancesCursor(t *testing.T) {
	words := bytes.Repeat([]byte("word "), 40) // 200 chars, three lines at 80
	d := Data{
		PersonalInfo: PersonalInfo{Name: "A"},
		Projects:     []Project{{Title: "Long", Description: string(bytes.TrimSpace(words)), GithubURL: "u"}},
	}
	ops := Layout(d, fixedNow, runeWidth)
	url, ok := find(ops, "  u")
	require.True(t, ok)
	assert.Equal(t, 150.0+rowHeight+3*rowHeight, url.Y)

	k, ok := find(ops, "KNOWLEDGE")
	require.True(t, ok)
	assert.Equal(t, 150.0+30+30, k.Y)
}

func TestGenerateWritesPDF(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, d, fixedNow))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestFetchPrebuilt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/cv/Le_Tien_Thuc_CV.pdf" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	}))
	defer srv.Close()

	doc, err := FetchPrebuilt(context.Background(), srv.Client(), srv.URL+"/static/cv/Le_Tien_Thuc_CV.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "%PDF-1.3 fake", string(doc.Body))

	_, err = FetchPrebuilt(context.Background(), srv.Client(), srv.URL+"/missing.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPrebuiltNotFound)
}

func TestFetchPrebuiltTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/cv.pdf"
	srv.Close()

	_, err := FetchPrebuilt(context.Background(), nil, url)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPrebuiltNotFound)
}
