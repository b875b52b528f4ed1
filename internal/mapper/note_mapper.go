package mapper

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/pkg/richtext"
)

const previewMaxRunes = 140

type NoteMapper struct {
	sanitizer *richtext.Sanitizer
}

func NewNoteMapper(sanitizer *richtext.Sanitizer) *NoteMapper {
	return &NoteMapper{sanitizer: sanitizer}
}

func (m *NoteMapper) ToPersisted(n entity.Note) dto.PersistedNote {
	return dto.PersistedNote{
		Id:        n.Id,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.UnixMilli(),
	}
}

func (m *NoteMapper) ToEntity(p dto.PersistedNote) entity.Note {
	content := p.Content
	if content == "" {
		content = p.Html
	}
	return entity.Note{
		Id:        p.Id,
		Content:   content,
		CreatedAt: time.UnixMilli(p.CreatedAt),
	}
}

// Encode serializes the collection in order.
func (m *NoteMapper) Encode(notes []entity.Note) ([]byte, error) {
	out := make([]dto.PersistedNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, m.ToPersisted(n))
	}
	return json.Marshal(out)
}

// Decode parses a stored collection. Entries without an id and repeats of an
// id already seen are dropped; dropped reports how many.
func (m *NoteMapper) Decode(data []byte) (notes []entity.Note, dropped int, err error) {
	var raw []dto.PersistedNote
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode notes: %w", err)
	}

	seen := make(map[string]struct{}, len(raw))
	notes = make([]entity.Note, 0, len(raw))
	for _, p := range raw {
		if p.Id == "" {
			dropped++
			continue
		}
		if _, ok := seen[p.Id]; ok {
			dropped++
			continue
		}
		seen[p.Id] = struct{}{}
		notes = append(notes, m.ToEntity(p))
	}
	return notes, dropped, nil
}

func (m *NoteMapper) ToResponse(n entity.Note) *dto.NoteResponse {
	html := n.Content
	if m.sanitizer != nil {
		html = m.sanitizer.Sanitize(n.Content)
	}
	return &dto.NoteResponse{
		Id:        n.Id,
		Html:      html,
		Content:   n.Content,
		Preview:   Preview(n.Content),
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToResponses(notes []entity.Note) []*dto.NoteResponse {
	out := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, m.ToResponse(n))
	}
	return out
}

// Preview is the first line of plain text, cut at previewMaxRunes.
func Preview(content string) string {
	text := richtext.PlainText(content)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if utf8.RuneCountInString(text) <= previewMaxRunes {
		return text
	}
	r := []rune(text)
	return strings.TrimSpace(string(r[:previewMaxRunes])) + "…"
}
