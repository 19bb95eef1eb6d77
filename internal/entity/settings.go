package entity

// Settings holds the library-wide presentation settings. In-memory
// only; edits last until the process exits.
type Settings struct {
	LibraryName string `json:"library_name"`
	LogoURL     string `json:"logo_url"`
	Language    string `json:"language"` // en, zh
}
