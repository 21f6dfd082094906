// Package client provides typed bindings for the CarIntel HTTP API.
// Pages and the state store talk to the backend exclusively through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/services/sketchservice"
)

// APIError is a non-2xx server answer, carrying the status code and
// the server's error string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second}, //nolint:gomnd
		token:   "",
	}
}

// SetToken binds a session token; subsequent requests send it as a
// bearer credential. An empty token clears the binding.
func (c *Client) SetToken(token string) {
	c.token = token
}

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Register(ctx context.Context, email, password, name string) (models.User, string, error) {
	body := map[string]string{"email": email, "password": password, "name": name}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return models.User{}, "", err
	}

	return resp.User, resp.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (models.User, string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return models.User{}, "", err
	}

	return resp.User, resp.Token, nil
}

// Verify resolves the bound token to its user, or nil when the session
// is no longer valid.
func (c *Client) Verify(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &resp); err != nil {
		return nil, err
	}

	return resp.User, nil
}

func (c *Client) ListSketches(ctx context.Context) ([]models.SketchSummary, error) {
	var sketches []models.SketchSummary
	if err := c.do(ctx, http.MethodGet, "/api/sketches", nil, &sketches); err != nil {
		return nil, err
	}

	return sketches, nil
}

func (c *Client) GetSketch(ctx context.Context, id int64) (models.Sketch, error) {
	var sketch models.Sketch
	if err := c.do(ctx, http.MethodGet, "/api/sketches/"+strconv.FormatInt(id, 10), nil, &sketch); err != nil {
		return models.Sketch{}, err
	}

	return sketch, nil
}

func (c *Client) SaveSketch(ctx context.Context, req sketchservice.SaveSketchRequest) (models.Sketch, error) {
	var sketch models.Sketch
	if err := c.do(ctx, http.MethodPost, "/api/sketches", req, &sketch); err != nil {
		return models.Sketch{}, err
	}

	return sketch, nil
}

func (c *Client) UpdateSketch(ctx context.Context, id int64, req sketchservice.SaveSketchRequest) (time.Time, error) {
	var resp struct {
		UpdatedAt time.Time `json:"updated_at"` //nolint:tagliatelle
	}

	if err := c.do(ctx, http.MethodPut, "/api/sketches/"+strconv.FormatInt(id, 10), req, &resp); err != nil {
		return time.Time{}, err
	}

	return resp.UpdatedAt, nil
}

func (c *Client) DeleteSketch(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/sketches/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) ListSavedSearches(ctx context.Context) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	if err := c.do(ctx, http.MethodGet, "/api/saved/searches", nil, &searches); err != nil {
		return nil, err
	}

	return searches, nil
}

func (c *Client) SaveSearch(ctx context.Context, s models.SavedSearch) (models.SavedSearch, error) {
	var saved models.SavedSearch
	if err := c.do(ctx, http.MethodPost, "/api/saved/searches", s, &saved); err != nil {
		return models.SavedSearch{}, err
	}

	return saved, nil
}

func (c *Client) DeleteSavedSearch(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/saved/searches/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) ListSavedVehicles(ctx context.Context) ([]models.SavedVehicle, error) {
	var vehicles []models.SavedVehicle
	if err := c.do(ctx, http.MethodGet, "/api/saved/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (c *Client) SaveVehicle(ctx context.Context, v models.SavedVehicle) (models.SavedVehicle, error) {
	var saved models.SavedVehicle
	if err := c.do(ctx, http.MethodPost, "/api/saved/vehicles", v, &saved); err != nil {
		return models.SavedVehicle{}, err
	}

	return saved, nil
}

func (c *Client) DeleteSavedVehicle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/saved/vehicles/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) LookupVehicle(ctx context.Context, kenteken string) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.do(ctx, http.MethodGet, "/api/vehicles/"+url.PathEscape(kenteken), nil, &vehicle); err != nil {
		return models.Vehicle{}, err
	}

	return vehicle, nil
}

func (c *Client) SendContact(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/api/contact", msg, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader

	if body != nil {
		bts, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}

		reqBody = bytes.NewReader(bts)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request error: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var se struct {
			Err string `json:"error"`
		}

		dec := json.NewDecoder(resp.Body)
		if err := dec.Decode(&se); err != nil {
			se.Err = resp.Status
		}

		return &APIError{Status: resp.StatusCode, Message: se.Err}
	}

	if out == nil {
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	return nil
}
