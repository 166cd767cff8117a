// Package catalogapi is the HTTP client of the campus Catalog API.
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
	"github.com/ideal-institute/bookstall/internal/version"
)

// Endpoints, relative to the API base URL.
const (
	EndpointListBooks   = "list_books.php"
	EndpointUserProfile = "get_user_profile.php"
	EndpointUserBooks   = "get_user_books.php"
	EndpointUploadBook  = "upload_book.php"
	EndpointDeleteBook  = "delete_book.php"
	EndpointLogin       = "login.php"
	EndpointRegister    = "register.php"
	EndpointPing        = "simple_test.php"

	// RequestIDHeader carries the id logged for each request.
	RequestIDHeader = "X-Request-ID"

	defaultErrorMessage = "Unknown error"
)

// API is the set of Catalog API operations used by bookstall.
type API interface {
	ListBooks(ctx context.Context) ([]domain.Listing, error)
	GetUserProfile(ctx context.Context, roll string) (domain.User, error)
	GetUserBooks(ctx context.Context, roll string) ([]domain.Listing, error)
	UploadBook(ctx context.Context, listing domain.NewListing) (Result, error)
	DeleteBook(ctx context.Context, id domain.FlexValue, roll string) (Result, error)
	Login(ctx context.Context, roll, password string) (domain.User, error)
	Register(ctx context.Context, roll, name, password string) (domain.User, error)
	Ping(ctx context.Context) error
	ImageURL(rel string) string
}

// Result is the outcome of a write operation.
type Result struct {
	Message string
	Debug   string
}

// Options configures a Client.
type Options struct {
	BaseURL      string
	AssetBaseURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the Catalog API over HTTP. It never retries.
type Client struct {
	baseURL      string
	assetBaseURL string
	timeout      time.Duration
	httpClient   *http.Client
}

var _ API = (*Client)(nil)

// New creates a client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		assetBaseURL: strings.TrimRight(opts.AssetBaseURL, "/"),
		timeout:      opts.Timeout,
		httpClient:   httpClient,
	}
}

// NewFromConfig creates a client from api_base_url, asset_base_url and
// api_timeout_seconds.
func NewFromConfig() *Client {
	return New(Options{
		BaseURL:      config.Get("api_base_url", config.DefaultAPIBaseURL),
		AssetBaseURL: config.Get("asset_base_url", config.DefaultAssetBaseURL),
		Timeout:      time.Duration(config.GetInt("api_timeout_seconds", 30)) * time.Second,
	})
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// ImageURL resolves a listing's relative image path against the asset base.
// Empty paths stay empty and absolute URLs are returned unchanged.
func (c *Client) ImageURL(rel string) string {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return ""
	}
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	return c.assetBaseURL + "/" + strings.TrimLeft(rel, "/")
}

// envelope is the {success, ...} wrapper of most endpoints.
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Debug   any              `json:"debug"`
	User    *domain.User     `json:"user"`
	Books   []domain.Listing `json:"books"`
}

func (e envelope) debugString() string {
	switch d := e.Debug.(type) {
	case nil:
		return ""
	case string:
		return d
	default:
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Sprint(d)
		}
		return string(data)
	}
}

func (e envelope) err(endpoint string) error {
	if e.Success {
		return nil
	}
	return &APIError{Endpoint: endpoint, Message: e.Message, Debug: e.debugString()}
}

// do sends one request and decodes a 2xx JSON body into out.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	requestID := uuid.NewString()
	logger := logging.With("component", "catalogapi", "endpoint", endpoint, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	logger.Debug("sending request", "method", method, "url", target)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request failed", "error", err)
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", endpoint, err)
	}
	logger.Debug("received response", "status", resp.StatusCode, "bytes", len(data), "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		logger.Error("non-success status", "status", resp.StatusCode)
		return statusErr
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Error("failed to decode response", "error", err)
		return fmt.Errorf("%s: %w: %v", endpoint, ErrUnexpectedResponse, err)
	}
	return nil
}

func (c *Client) getEnvelope(ctx context.Context, endpoint string, query url.Values) (envelope, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, endpoint, query, nil, "", &env); err != nil {
		return envelope{}, err
	}
	return env, env.err(endpoint)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any) (envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return envelope{}, fmt.Errorf("%s: encode request: %w", endpoint, err)
	}
	var env envelope
	if err := c.do(ctx, http.MethodPost, endpoint, nil, bytes.NewReader(data), "application/json", &env); err != nil {
		return envelope{}, err
	}
	return env, env.err(endpoint)
}

// ListBooks returns every listing in the catalog.
func (c *Client) ListBooks(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.do(ctx, http.MethodGet, EndpointListBooks, nil, nil, "", &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	logging.Debug("listings fetched", "count", len(listings))
	return listings, nil
}

// GetUserProfile returns the profile of roll.
func (c *Client) GetUserProfile(ctx context.Context, roll string) (domain.User, error) {
	env, err := c.getEnvelope(ctx, EndpointUserProfile, url.Values{"roll_number": {roll}})
	if err != nil {
		return domain.User{}, err
	}
	if env.User == nil {
		return domain.User{}, &APIError{Endpoint: EndpointUserProfile, Message: "User not found"}
	}
	return *env.User, nil
}

// GetUserBooks returns the listings sold by roll.
func (c *Client) GetUserBooks(ctx context.Context, roll string) ([]domain.Listing, error) {
	env, err := c.getEnvelope(ctx, EndpointUserBooks, url.Values{"roll_number": {roll}})
	if err != nil {
		return nil, err
	}
	if env.Books == nil {
		return []domain.Listing{}, nil
	}
	return env.Books, nil
}

// UploadBook posts a new listing with its photos as multipart form data.
func (c *Client) UploadBook(ctx context.Context, listing domain.NewListing) (Result, error) {
	body, contentType, err := encodeListing(listing)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", EndpointUploadBook, err)
	}
	var env envelope
	if err := c.do(ctx, http.MethodPost, EndpointUploadBook, nil, body, contentType, &env); err != nil {
		return Result{}, err
	}
	if err := env.err(EndpointUploadBook); err != nil {
		return Result{}, err
	}
	return Result{Message: env.Message, Debug: env.debugString()}, nil
}

func encodeListing(listing domain.NewListing) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"seller_roll_no", listing.SellerRollNo},
		{"book_name", listing.Title},
		{"book_year", listing.BookYear},
		{"subject", listing.Subject},
		{"category", listing.Category},
		{"regulation", listing.Regulation},
		{"condition", listing.Condition},
		{"price", listing.Price},
		{"description", listing.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for _, p := range listing.Photos {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos[]"; filename=%q`, p.Filename))
		h.Set("Content-Type", p.ContentType())
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(p.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// DeleteBook removes listing id owned by roll.
func (c *Client) DeleteBook(ctx context.Context, id domain.FlexValue, roll string) (Result, error) {
	env, err := c.postJSON(ctx, EndpointDeleteBook, struct {
		BookID       domain.FlexValue `json:"book_id"`
		SellerRollNo string           `json:"seller_roll_no"`
	}{id, roll})
	if err != nil {
		return Result{}, err
	}
	return Result{Message: env.Message, Debug: env.debugString()}, nil
}

// Login authenticates a student.
func (c *Client) Login(ctx context.Context, roll, password string) (domain.User, error) {
	env, err := c.postJSON(ctx, EndpointLogin, map[string]string{
		"roll_number": roll,
		"password":    password,
	})
	if err != nil {
		return domain.User{}, err
	}
	return userOrFallback(env, roll), nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, roll, name, password string) (domain.User, error) {
	env, err := c.postJSON(ctx, EndpointRegister, map[string]string{
		"roll_number": roll,
		"name":        name,
		"password":    password,
	})
	if err != nil {
		return domain.User{}, err
	}
	u := userOrFallback(env, roll)
	if u.Name == "" {
		u.Name = name
	}
	return u, nil
}

func userOrFallback(env envelope, roll string) domain.User {
	if env.User == nil || env.User.RollNumber == "" {
		return domain.User{RollNumber: roll}
	}
	return *env.User
}

// Ping checks that the API answers. The body is not interpreted.
func (c *Client) Ping(ctx context.Context) error {
	var body any
	return c.do(ctx, http.MethodGet, EndpointPing, nil, nil, "", &body)
}
