package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/avolkov/storefront-service/internal/config"
	"github.com/avolkov/storefront-service/internal/domain/errors"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

// Client resolves free-text queries to photo URLs via the Unsplash search
// API. Results are cached in-process per lowercased query; repeated item
// names never hit the network twice.
type Client struct {
	baseURL   string
	accessKey string
	client    *http.Client
	cache     *lru.Cache[string, string]
	log       *logger.Logger
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

func NewClient(cfg config.UnsplashConfig, log *logger.Logger) (*Client, error) {
	cache, err := lru.New[string, string](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		accessKey: cfg.AccessKey,
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
		cache: cache,
		log:   log,
	}, nil
}

// LookupImage returns the first matching photo's URL, or an empty URL with
// a nil error when the search has no results.
func (c *Client) LookupImage(ctx context.Context, query string) (string, error) {
	cacheKey := strings.ToLower(strings.TrimSpace(query))
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s/search/photos?query=%s&per_page=1", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", errors.NewRemoteError("image lookup", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.client.Do(req)
	if err != nil {
		monitoring.RecordImageLookupFailure()
		return "", errors.NewRemoteError("image lookup", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		monitoring.RecordImageLookupFailure()
		return "", errors.NewRemoteError("image lookup", err)
	}

	if resp.StatusCode != http.StatusOK {
		monitoring.RecordImageLookupFailure()
		return "", c.decodeError(resp.StatusCode, body)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		monitoring.RecordImageLookupFailure()
		return "", errors.DecodeRemotePayload("image lookup", body)
	}

	if len(result.Results) == 0 {
		c.cache.Add(cacheKey, "")
		return "", nil
	}

	imageURL := result.Results[0].URLs.Regular
	c.cache.Add(cacheKey, imageURL)
	return imageURL, nil
}

func (c *Client) decodeError(statusCode int, body []byte) *errors.RemoteError {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		remote := errors.NewRemoteError("image lookup", fmt.Errorf("unsplash returned %d", statusCode))
		remote.PageErrors = payload.Errors
		return remote
	}

	c.log.Warn("Unsplash error body could not be decoded", "status", statusCode)
	return errors.DecodeRemotePayload("image lookup", body)
}
