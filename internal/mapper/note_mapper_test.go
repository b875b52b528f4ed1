package mapper

import (
	"strings"
	"testing"
	"time"

	"noteboard-be/internal/entity"
	"noteboard-be/pkg/richtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteMapper_EncodeDecode(t *testing.T) {
	m := NewNoteMapper(nil)
	created := time.UnixMilli(1700000000123)
	notes := []entity.Note{
		{Id: "b", Content: "<p>B</p>", CreatedAt: created},
		{Id: "a", Content: "<p>A</p>", CreatedAt: created.Add(-time.Minute)},
	}

	data, err := m.Encode(notes)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createdAt":1700000000123`)

	decoded, dropped, err := m.Decode(data)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, decoded, 2)
	assert.Equal(t, "b", decoded[0].Id)
	assert.Equal(t, "<p>A</p>", decoded[1].Content)
	assert.True(t, created.Equal(decoded[0].CreatedAt))
}

func TestNoteMapper_Decode(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantIDs     []string
		wantDropped int
		wantErr     bool
	}{
		{name: "empty array", data: `[]`, wantIDs: []string{}},
		{name: "legacy html field", data: `[{"id":"x","html":"<p>old</p>","createdAt":1}]`, wantIDs: []string{"x"}},
		{name: "missing id dropped", data: `[{"content":"a"},{"id":"y","content":"b"}]`, wantIDs: []string{"y"}, wantDropped: 1},
		{name: "duplicate id keeps first", data: `[{"id":"y","content":"1"},{"id":"y","content":"2"}]`, wantIDs: []string{"y"}, wantDropped: 1},
		{name: "not json", data: `{{`, wantErr: true},
		{name: "object instead of array", data: `{"id":"y"}`, wantErr: true},
	}

	m := NewNoteMapper(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, dropped, err := m.Decode([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := []string{}
			for _, n := range notes {
				ids = append(ids, n.Id)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestNoteMapper_DecodeLegacyContent(t *testing.T) {
	m := NewNoteMapper(nil)
	notes, _, err := m.Decode([]byte(`[{"id":"x","html":"<p>old</p>"},{"id":"z","content":"<p>new</p>","html":"<p>old</p>"}]`))
	require.NoError(t, err)
	assert.Equal(t, "<p>old</p>", notes[0].Content)
	assert.Equal(t, "<p>new</p>", notes[1].Content)
}

func TestNoteMapper_ToResponseSanitizes(t *testing.T) {
	m := NewNoteMapper(richtext.NewSanitizer(richtext.DefaultCapabilities("16px")))
	res := m.ToResponse(entity.Note{Id: "a", Content: `<p>hi<script>alert(1)</script></p>`})

	assert.NotContains(t, res.Html, "script")
	assert.Contains(t, res.Content, "script")
	assert.Equal(t, "hi", res.Preview)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "first", Preview("<p>first</p><p>second</p>"))
	assert.Equal(t, "", Preview("<p><br></p>"))

	long := "<p>" + strings.Repeat("a", 200) + "</p>"
	p := Preview(long)
	assert.True(t, strings.HasSuffix(p, "…"))
	assert.Equal(t, previewMaxRunes+1, len([]rune(p)))
}
