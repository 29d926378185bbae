package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return q
}

func TestDecodeEmpty(t *testing.T) {
	s := Decode(url.Values{})
	assert.Equal(t, State{Page: Home, Previous: Home}, s)
	assert.Equal(t, "", s.Encode())
	assert.Equal(t, "/", s.URL())
}

func TestProjectRoundTrip(t *testing.T) {
	s := Decode(mustQuery(t, "project=qairline&from=archives"))
	assert.Equal(t, State{Page: ProjectDetail, ProjectID: "qairline", Previous: Archives}, s)
	assert.Equal(t, "project=qairline&from=archives", s.Encode())
	assert.Equal(t, "/?project=qairline&from=archives", s.URL())
}

func TestDecodeTable(t *testing.T) {
	cases := []struct {
		query string
		want  State
	}{
		{"page=about", State{Page: About, Previous: About}},
		{"page=home", State{Page: Home, Previous: Home}},
		{"page=", State{Page: Home, Previous: Home}},
		{"page=nowhere", State{Page: "nowhere", Previous: "nowhere"}},
		{"project=plane-invader", State{Page: ProjectDetail, ProjectID: "plane-invader", Previous: Home}},
		{"project=plane-invader&page=journey", State{Page: ProjectDetail, ProjectID: "plane-invader", Previous: Home}},
		{"project=&page=journey", State{Page: Journey, Previous: Journey}},
		{"project=x&from=", State{Page: ProjectDetail, ProjectID: "x", Previous: Home}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Decode(mustQuery(t, tc.query)), tc.query)
	}
}

func TestEncodeAsymmetry(t *testing.T) {
	// page=home is read but never written
	assert.Equal(t, "", Decode(mustQuery(t, "page=home")).Encode())
	assert.Equal(t, "page=journey", State{Page: Journey, Previous: Journey}.Encode())
}

func TestEncodeEscapes(t *testing.T) {
	s := State{Page: ProjectDetail, ProjectID: "a b&c", Previous: Home}
	assert.Equal(t, "project=a+b%26c&from=home", s.Encode())
	assert.Equal(t, s, Decode(mustQuery(t, s.Encode())))
}

func TestDecodeURL(t *testing.T) {
	assert.Equal(t, State{Page: Archives, Previous: Archives}, DecodeURL("http://localhost:8080/?page=archives"))
	assert.Equal(t, Initial, DecodeURL("http://localhost:8080/"))
	assert.Equal(t, Initial, DecodeURL("%zz"))
}

func TestTransitions(t *testing.T) {
	s := Initial.NavigateTo(Archives)
	assert.Equal(t, State{Page: Archives, Previous: Archives}, s)

	s = s.OpenProject("qairline")
	assert.Equal(t, State{Page: ProjectDetail, ProjectID: "qairline", Previous: Archives}, s)
	assert.Equal(t, "/?project=qairline&from=archives", s.URL())

	s = s.CloseProject()
	assert.Equal(t, Archives, s.Page)
	assert.Empty(t, s.ProjectID)
	assert.Equal(t, "/?page=archives", s.URL())

	s = s.NavigateTo(Home)
	assert.Equal(t, "/", s.URL())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "About Me", DisplayName(About))
	assert.Equal(t, "Archives", DisplayName(Archives))
	assert.Equal(t, "Home", DisplayName(ProjectDetail))
	assert.Equal(t, "Home", DisplayName("bogus"))
}

func TestBuildActive(t *testing.T) {
	items := Build(State{Page: ProjectDetail, ProjectID: "qairline", Previous: Journey})
	require.Len(t, items, len(Main))
	for _, it := range items {
		assert.Equal(t, it.Page == Journey, it.Active, it.Label)
	}
	assert.Equal(t, "/", items[0].Href)
	assert.Equal(t, "/?page=archives", items[1].Href)
}
