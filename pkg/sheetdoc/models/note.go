package models

import "github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"

// Note edit modes.
const (
	EditAsAbsolute = "absolute"
	EditAsOneCell  = "oneCells"
	EditAsTwoCell  = "twoCells"
)

// NoteText is one run of note text with an optional font.
type NoteText struct {
	Text string `json:"text" yaml:"text"`
	Font *Font  `json:"font,omitempty" yaml:"font"`
}

// NoteMargins controls the inset of the note text box.
type NoteMargins struct {
	InsetMode config.Optional[string]     `json:"insetmode,omitzero" yaml:"insetmode"`
	Inset     config.Optional[[4]float64] `json:"inset,omitzero" yaml:"inset"`
}

// Merge overlays the margins set in o onto m.
func (m NoteMargins) Merge(o NoteMargins) NoteMargins {
	return NoteMargins{
		InsetMode: o.InsetMode.Or(m.InsetMode),
		Inset:     o.Inset.Or(m.Inset),
	}
}

// NoteProtection controls whether the note shape and its text are locked.
type NoteProtection struct {
	Locked   config.Optional[bool] `json:"locked,omitzero" yaml:"locked"`
	LockText config.Optional[bool] `json:"lockText,omitzero" yaml:"lockText"`
}

// Merge overlays the protection flags set in o onto p.
func (p NoteProtection) Merge(o NoteProtection) NoteProtection {
	return NoteProtection{
		Locked:   o.Locked.Or(p.Locked),
		LockText: o.LockText.Or(p.LockText),
	}
}

// NoteConfig is the structured form of a cell note.
type NoteConfig struct {
	Texts      []NoteText              `json:"texts" yaml:"texts"`
	Margins    NoteMargins             `json:"margins" yaml:"margins"`
	Protection NoteProtection          `json:"protection" yaml:"protection"`
	EditAs     config.Optional[string] `json:"editAs,omitzero" yaml:"editAs"`
}

// Merge overlays o onto c. Texts are content, not options: o's texts always
// replace c's when given.
func (c NoteConfig) Merge(o NoteConfig) NoteConfig {
	return NoteConfig{
		Texts:      config.MergeSlice(c.Texts, o.Texts),
		Margins:    c.Margins.Merge(o.Margins),
		Protection: c.Protection.Merge(o.Protection),
		EditAs:     o.EditAs.Or(c.EditAs),
	}
}

// Clone returns a copy of c that shares no texts or fonts with it.
func (c NoteConfig) Clone() NoteConfig {
	if c.Texts == nil {
		return c
	}
	texts := make([]NoteText, len(c.Texts))
	for i, t := range c.Texts {
		if t.Font != nil {
			f := *t.Font
			t.Font = &f
		}
		texts[i] = t
	}
	c.Texts = texts
	return c
}

// DefaultNoteConfig returns the defaults every note is read against.
func DefaultNoteConfig() NoteConfig {
	return NoteConfig{
		Margins: NoteMargins{
			InsetMode: config.Some("auto"),
			Inset:     config.Some([4]float64{0.13, 0.13, 0.25, 0.25}),
		},
		Protection: NoteProtection{
			Locked:   config.Some(true),
			LockText: config.Some(true),
		},
		EditAs: config.Some(EditAsAbsolute),
	}
}
