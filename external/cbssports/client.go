package cbssports

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/avelent/draftday/internal/platform/logging"
	"github.com/avelent/draftday/internal/platform/resilience"
	"github.com/avelent/draftday/internal/usecase"
)

const defaultInjuryURL = "https://www.cbssports.com/nfl/injuries/"

var errCBSTransient = crerr.New("cbs sports transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	InjuryURL      string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client scrapes the league-wide injury report page. The page is a sequence
// of per-team sections, each holding one table of player rows.
type Client struct {
	httpClient     *http.Client
	injuryURL      string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 60 * time.Second
	}

	injuryURL := strings.TrimSpace(cfg.InjuryURL)
	if injuryURL == "" {
		injuryURL = defaultInjuryURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		injuryURL:      injuryURL,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchInjuries(ctx context.Context) ([]usecase.InjuryRow, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "cbs circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: injury report provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errCBSTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return nil, err
	}

	return parseInjuryReport(raw)
}

func (c *Client) executeRequest(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.injuryURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errCBSTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errCBSTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errCBSTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "cbs injuries request failed", "url", c.injuryURL, "error", lastErr)
	return nil, lastErr
}

// parseInjuryReport walks every team section and flattens its table into
// rows. Rows with fewer than five cells are partial markup and are skipped.
func parseInjuryReport(raw []byte) ([]usecase.InjuryRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse injury report: %w", err)
	}

	var rows []usecase.InjuryRow
	doc.Find("div.Page-colMain div.TeamInjuries").Each(func(_ int, section *goquery.Selection) {
		section.Find("table tr").Each(func(i int, tr *goquery.Selection) {
			if i == 0 {
				return
			}
			var cells []string
			tr.Find("td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) < 5 {
				return
			}
			rows = append(rows, usecase.InjuryRow{
				Name:     cells[0],
				Position: cells[1],
				Updated:  cells[2],
				BodyPart: cells[3],
				Status:   cells[4],
			})
		})
	})
	return rows, nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
