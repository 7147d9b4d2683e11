package lda

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"lobbyrank/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultBaseURL         = "https://lda.senate.gov/api/v1/filings/"
	defaultFilingYear      = 2024
	defaultDelaySeconds    = 1
	defaultCooldownSeconds = 10
	defaultTimeoutSeconds  = 30
	defaultUserAgent       = "lobbyrank/0.1"
)

type Config struct {
	BaseURL    string
	FilingYear int
	Delay      time.Duration
	Cooldown   time.Duration
	Timeout    time.Duration
	UserAgent  string
}

// Client fetches disclosure filings from the Senate LDA registry, one page at
// a time. It is sequential on purpose: the registry enforces a courtesy
// request rate, so every successful page is followed by a fixed pause.
type Client struct {
	config Config
	client *http.Client
}

func New() (*Client, error) {
	return NewWithConfig(ConfigFromEnv())
}

func NewWithConfig(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.FilingYear <= 0 {
		cfg.FilingYear = defaultFilingYear
	}
	if cfg.Delay == 0 {
		cfg.Delay = defaultDelaySeconds * time.Second
	}
	if cfg.Cooldown == 0 {
		cfg.Cooldown = defaultCooldownSeconds * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeoutSeconds * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:    getenv("LDA_BASE_URL", defaultBaseURL),
		FilingYear: getenvInt("LDA_FILING_YEAR", defaultFilingYear),
		Delay:      time.Duration(getenvInt("LDA_DELAY_SECONDS", defaultDelaySeconds)) * time.Second,
		Cooldown:   time.Duration(getenvInt("LDA_COOLDOWN_SECONDS", defaultCooldownSeconds)) * time.Second,
		Timeout:    time.Duration(getenvInt("LDA_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		UserAgent:  getenv("LDA_USER_AGENT", defaultUserAgent),
	}
}

// FilingYear reports the target federal fiscal year for this client.
func (c *Client) FilingYear() int {
	return c.config.FilingYear
}

type periodFilter struct {
	Year   int
	Period string
}

// quarterFilters covers federal fiscal year N: Oct-Dec of N-1 plus the three
// calendar quarters Jan-Sep of N.
func quarterFilters(year int) []periodFilter {
	return []periodFilter{
		{Year: year - 1, Period: "fourth_quarter"},
		{Year: year, Period: "first_quarter"},
		{Year: year, Period: "second_quarter"},
		{Year: year, Period: "third_quarter"},
	}
}

type filingsPage struct {
	Results []model.Filing `json:"results"`
	Next    string         `json:"next"`
}

type pageStatus int

const (
	pageOK pageStatus = iota
	pageRateLimited
	pageFailed
)

type pageResult struct {
	status     pageStatus
	page       filingsPage
	httpStatus int
	retryAfter time.Duration
}

// FetchFilings returns every filing the registry reports for clientName
// across the four quarter filters of the configured fiscal year. A non-2xx
// status other than 429 ends pagination for that filter only; the partial
// result is kept and the remaining filters still run. Transport and decode
// failures are returned as errors.
func (c *Client) FetchFilings(ctx context.Context, clientName string) ([]model.Filing, error) {
	filings := make([]model.Filing, 0)
	for _, filter := range quarterFilters(c.config.FilingYear) {
		collected, err := c.fetchFilter(ctx, clientName, filter)
		if err != nil {
			return nil, err
		}
		filings = append(filings, collected...)
	}
	return filings, nil
}

// fetchFilter walks one filter's pages. The server embeds the original query
// parameters in the next-page URL, so that URL is followed verbatim.
func (c *Client) fetchFilter(ctx context.Context, clientName string, filter periodFilter) ([]model.Filing, error) {
	params := url.Values{}
	params.Set("client_name", clientName)
	params.Set("filing_year", strconv.Itoa(filter.Year))
	params.Set("filing_period", filter.Period)

	collected := make([]model.Filing, 0)
	next := c.config.BaseURL + "?" + params.Encode()
	for next != "" {
		result, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}

		switch result.status {
		case pageRateLimited:
			wait := result.retryAfter
			if wait <= 0 {
				wait = c.config.Cooldown
			}
			fmt.Printf("  %s... rate limited, waiting %ds\n", clientName, int(wait/time.Second))
			if err := sleepWithContext(ctx, wait); err != nil {
				return nil, err
			}
			// retry the same URL
		case pageFailed:
			return collected, nil
		case pageOK:
			collected = append(collected, result.page.Results...)
			next = result.page.Next
			if err := sleepWithContext(ctx, c.config.Delay); err != nil {
				return nil, err
			}
		}
	}
	return collected, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (pageResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return pageResult{}, err
	}
	req.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return pageResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, resp.Body)
		return pageResult{
			status:     pageRateLimited,
			httpStatus: resp.StatusCode,
			retryAfter: parseRetryAfter(resp),
		}, nil
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return pageResult{status: pageFailed, httpStatus: resp.StatusCode}, nil
	}

	var page filingsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return pageResult{}, fmt.Errorf("lda: decode page %s: %w", pageURL, err)
	}
	return pageResult{status: pageOK, page: page, httpStatus: resp.StatusCode}, nil
}

func parseRetryAfter(resp *http.Response) time.Duration {
	value := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if when, err := time.Parse(http.TimeFormat, value); err == nil {
		if wait := time.Until(when); wait > 0 {
			return wait
		}
	}
	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
