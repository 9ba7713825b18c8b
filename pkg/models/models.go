package models

// Language identifies one of the release-note output languages. Code is the
// short store code ("en"), Tag is the literal block tag used on the wire and in
// the output artifact ("en-US").
type Language struct {
	Code string
	Tag  string
}

var (
	English = Language{Code: "en", Tag: "en-US"}
	Arabic  = Language{Code: "ar", Tag: "ar"}
	Turkish = Language{Code: "tr", Tag: "tr-TR"}
)

// Languages is the fixed output order: English first because it is mandatory
// and the fallback source for the others.
var Languages = []Language{English, Arabic, Turkish}

// StartTag returns the literal opening delimiter for the language block.
func (l Language) StartTag() string {
	return "<" + l.Tag + ">"
}

// EndTag returns the literal closing delimiter for the language block.
func (l Language) EndTag() string {
	return "</" + l.Tag + ">"
}

// Bundle maps a language code to its release-note paragraph. A bundle without
// an English entry is invalid and treated as empty by the pipeline.
type Bundle map[string]string

// HasEnglish reports whether the mandatory English note is present and non-empty.
func (b Bundle) HasEnglish() bool {
	return b[English.Code] != ""
}
