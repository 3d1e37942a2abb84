package main

// Article is one scraped news item before it becomes a queue message.
type Article struct {
	URL     string
	Title   string
	Content string
}

// PageFetcher is the site adapter the worker drives. Implementations
// own the browser session; Close releases it.
type PageFetcher interface {
	Login() error
	FetchNews(limit int) ([]Article, error)
	Close() error
}
