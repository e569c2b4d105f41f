package imdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Client talks to the OMDb HTTP API. Every response carries a
// Response: "True"/"False" discriminator; "False" comes with an Error message.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// HasAPIKey reports whether the provider credential is configured
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// SearchResult is one summary record from a paginated search
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

// Detail is the full record returned by an id lookup
type Detail struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDBID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Poster     string `json:"Poster"`
	Director   string `json:"Director"`
	IMDBRating string `json:"imdbRating"`
	Plot       string `json:"Plot"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Search fetches one page of summary records for a query and media type
func (c *Client) Search(query, mediaType string, page int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("type", mediaType)
	params.Set("page", strconv.Itoa(page))
	c.logger.WithFields(logrus.Fields{"query": query, "page": page}).Debug("fetching search page")

	var result searchResponse
	if err := c.get(params, &result); err != nil {
		return nil, err
	}
	if result.Response != "True" {
		return nil, fmt.Errorf("provider rejected search page %d: %s", page, result.Error)
	}
	return result.Search, nil
}

// GetByID fetches the full record for one IMDb id
func (c *Client) GetByID(imdbID string) (*Detail, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	c.logger.WithField("imdb_id", imdbID).Debug("fetching detail record")

	var detail Detail
	if err := c.get(params, &detail); err != nil {
		return nil, err
	}
	if detail.Response != "True" {
		return nil, fmt.Errorf("provider rejected lookup of %s: %s", imdbID, detail.Error)
	}
	return &detail, nil
}

func (c *Client) get(params url.Values, out interface{}) error {
	params.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
