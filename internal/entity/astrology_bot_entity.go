package entity

// AstrologyBot is a static catalog entry. The catalog is fixed at process
// start and not user-mutable.
type AstrologyBot struct {
	Id             string
	Name           string
	Description    string
	Specialization string
	Icon           string
	Color          string
	Rating         string
	SystemPrompt   string
}
