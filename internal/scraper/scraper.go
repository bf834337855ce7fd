package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/logger"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/retry"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/rota"
)

const (
	DefaultTableSelector = "table.rota"
	UserAgent            = "mersey-job-scraper/1.0 (github.com/venkateshgovinda22-lab/mersey-job-scraper)"
	Timeout              = 30 * time.Second
)

// ErrTableNotFound means the configured table selector matched nothing on
// the fetched page. Treated as transient and retried, since the page
// sometimes renders without the rota table briefly after a rota upload.
var ErrTableNotFound = fmt.Errorf("rota table not found on page")

// Scraper fetches the rota page and extracts raw table rows.
type Scraper struct {
	client        *http.Client
	url           string
	tableSelector string
	retry         retry.Config
}

// New creates a Scraper for the given page URL and table selector.
func New(url, tableSelector string, retryCfg retry.Config) *Scraper {
	if tableSelector == "" {
		tableSelector = DefaultTableSelector
	}
	return &Scraper{
		client:        &http.Client{Timeout: Timeout},
		url:           url,
		tableSelector: tableSelector,
		retry:         retryCfg,
	}
}

// FetchRows fetches the rota page and returns its table rows as trimmed
// cell text, in document order. Navigation and the table lookup are retried
// on failure.
func (s *Scraper) FetchRows(ctx context.Context) ([]rota.RawRow, error) {
	var rows []rota.RawRow

	err := retry.Do(ctx, s.retry, func() error {
		var fetchErr error
		rows, fetchErr = s.fetchOnce(ctx)
		return fetchErr
	}, func(attempt int, err error, delay time.Duration) {
		logger.Warn("retrying page fetch", logger.Fields{
			"url":     s.url,
			"attempt": attempt,
			"delay":   delay.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Add("rows.scraped", int64(len(rows)))
	return rows, nil
}

func (s *Scraper) fetchOnce(ctx context.Context) ([]rota.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseRows(resp.Body)
}

// parseRows extracts the cell text of every row in the first matching
// table.
func (s *Scraper) parseRows(r io.Reader) ([]rota.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find(s.tableSelector)
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	rows := make([]rota.RawRow, 0)
	table.First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		row := make(rota.RawRow, 0)
		tr.Find("td, th").Each(func(j int, cell *goquery.Selection) {
			row = append(row, cleanCell(cell.Text()))
		})
		rows = append(rows, row)
	})

	return rows, nil
}

// cleanCell replaces non-breaking spaces and collapses internal whitespace.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
