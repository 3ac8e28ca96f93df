// Package sheet checks that the spreadsheet behind the records dashboard
// can be read anonymously as CSV.
//
// The dashboard fetches the sheet straight from the browser, so a sheet that
// is not shared publicly shows up there as a blocked request. Probing from
// the command line surfaces the same condition with a clearer message.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/utils"
)

const (
	// DefaultBaseURL is the spreadsheet host the dashboard reads from.
	DefaultBaseURL = "https://docs.google.com"

	// DashboardSheetID is the spreadsheet behind the records dashboard.
	DashboardSheetID = "1YbQ2XY99mrEOTL83RtMVw61LJBgPe_ihP6nYhEoBM9I"
)

// SharingHint tells the operator how to make a blocked sheet readable.
const SharingHint = `Open the sheet, choose Share, set General access to "Anyone with the link" as Viewer, then probe again.`

var (
	ErrEmptySheetID = errors.New("sheet id is required")
	ErrUnreachable  = errors.New("failed to reach Google Sheets")
	ErrSheetPrivate = errors.New("connection blocked: the spreadsheet is currently private or restricted")
	ErrSheetEmpty   = errors.New("the spreadsheet appears to be empty")
)

// Result describes a successful probe.
type Result struct {
	URL   string
	Bytes int

	// Lines is the number of non-blank lines of the export. Quoted fields
	// spanning several lines are counted once per line.
	Lines int
}

type Prober struct {
	client  *utils.HTTPClient
	baseURL string
	now     func() time.Time
	logger  *logger.Logger
}

// NewProber returns a Prober reading from baseURL, or from [DefaultBaseURL]
// when baseURL is empty.
func NewProber(client *utils.HTTPClient, baseURL string, logger *logger.Logger) *Prober {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Prober{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		logger:  logger,
	}
}

// ExportURL is the CSV export address of the sheet.
func (p *Prober) ExportURL(sheetID string) string {
	return p.baseURL + "/spreadsheets/d/" + url.PathEscape(sheetID) + "/gviz/tq?tqx=out:csv"
}

// Probe downloads the CSV export of sheetID. A sign-in or other HTML page
// in place of CSV is reported as [ErrSheetPrivate].
func (p *Prober) Probe(ctx context.Context, sheetID string) (Result, error) {
	sheetID = strings.TrimSpace(sheetID)
	if sheetID == "" {
		return Result{}, ErrEmptySheetID
	}

	exportURL := p.ExportURL(sheetID)
	log := p.logger.With().Str("func", "*Prober.Probe").Str("sheet_id", sheetID).Logger()

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("t", strconv.FormatInt(p.now().UnixMilli(), 10)).
		Get(exportURL)
	if err != nil {
		log.Err(err).Msg("request failed")
		return Result{}, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if resp.IsError() {
		log.Warn().Int("status", resp.StatusCode()).Msg("unexpected status")
		return Result{}, fmt.Errorf("%w: HTTP %d", ErrUnreachable, resp.StatusCode())
	}

	body := resp.String()
	if isSignInPage(body) {
		return Result{}, ErrSheetPrivate
	}

	lines := countLines(body)
	if lines == 0 {
		return Result{}, ErrSheetEmpty
	}

	log.Debug().Int("lines", lines).Msg("sheet readable")
	return Result{URL: exportURL, Bytes: len(resp.Body()), Lines: lines}, nil
}

func isSignInPage(body string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(trimmed, "<!doctype html") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.Contains(body, "google-signin")
}

func countLines(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
