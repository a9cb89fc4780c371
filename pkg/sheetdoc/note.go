package sheetdoc

import (
	"strings"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// Note is a cell annotation held either as plain text or as a structured
// configuration. A structured note with a single unformatted run is
// equivalent to plain text and collapses to it on write.
type Note struct {
	text string
	rich *models.NoteConfig
}

// NewNote returns a plain text note.
func NewNote(text string) *Note {
	return &Note{text: text}
}

// NewStructuredNote returns a note holding a copy of cfg as given. Use
// SetConfig or Normalize to collapse it.
func NewStructuredNote(cfg models.NoteConfig) *Note {
	cfg = cfg.Clone()
	return &Note{rich: &cfg}
}

// Plain returns the note text when the note is held as plain text.
func (n *Note) Plain() (string, bool) {
	if n.rich != nil {
		return "", false
	}
	return n.text, true
}

// Config returns the structured form of the note with every option set.
// The result is a copy.
func (n *Note) Config() models.NoteConfig {
	value := models.NoteConfig{Texts: []models.NoteText{{Text: n.text}}}
	if n.rich != nil {
		value = n.rich.Clone()
	}
	return config.Merge(models.DefaultNoteConfig(), &value)
}

// SetConfig stores cfg, collapsing it to plain text when it is a single
// unformatted run. Margins, protection and edit mode are dropped on collapse.
func (n *Note) SetConfig(cfg models.NoteConfig) {
	if text, ok := plainText(cfg); ok {
		n.text, n.rich = text, nil
		return
	}
	cfg = cfg.Clone()
	n.text, n.rich = "", &cfg
}

// Normalize applies the collapse rule to the stored representation.
func (n *Note) Normalize() {
	if n.rich != nil {
		n.SetConfig(*n.rich)
	}
}

// String returns the note text with all runs joined.
func (n *Note) String() string {
	if n.rich == nil {
		return n.text
	}
	var b strings.Builder
	for _, t := range n.rich.Texts {
		b.WriteString(t.Text)
	}
	return b.String()
}

func plainText(cfg models.NoteConfig) (string, bool) {
	if len(cfg.Texts) != 1 || cfg.Texts[0].Font != nil {
		return "", false
	}
	return cfg.Texts[0].Text, true
}
