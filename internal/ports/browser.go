package ports

// BrowserOpener defines the interface for opening exported pages
type BrowserOpener interface {
	// Open opens the target (a file path or URL) in the user's default browser
	Open(target string) error
}
