// Package scraper provides HTTP fetching and HTML row extraction for the
// hospital rota page.
//
// The scraper fetches the configured rota URL, locates the rota table by
// CSS selector, and yields each table row as ordered, trimmed cell text.
// It knows nothing about the row hierarchy; reconstructing the date/event
// structure is the rota package's job.
package scraper
