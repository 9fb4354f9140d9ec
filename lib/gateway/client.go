// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/foodwallet/foodwallet/lib/session"
)

// maxResponseSize caps error-body reads so a misbehaving server cannot
// balloon memory.
const maxResponseSize = 1 << 20

// Client is the typed HTTP client for the Food Wallet backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client addressing the backend at baseURL, for example
// "http://localhost:3000". The timeout bounds each individual call;
// callers additionally pass a context for cancellation.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// NewForTesting creates a Client with a custom transport. Used by
// tests that redirect requests to an httptest.Server.
func NewForTesting(transport http.RoundTripper) *Client {
	return &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    "http://backend",
	}
}

// loginRequest is the wire format for POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the wire format for a successful POST /login.
type loginResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login exchanges credentials for a backend-confirmed identity. A 401
// or a response without a user ID yields ErrInvalidCredentials; the
// session is only considered verified when the backend returns a
// populated identity.
func (client *Client) Login(ctx context.Context, email, password string) (session.Identity, error) {
	response, err := client.postJSON(ctx, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return session.Identity{}, fmt.Errorf("login: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return session.Identity{}, fmt.Errorf("login: %w", ErrInvalidCredentials)
	}
	if response.StatusCode != http.StatusOK {
		return session.Identity{}, fmt.Errorf("login: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var decoded loginResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return session.Identity{}, fmt.Errorf("login: decode response: %w", err)
	}
	if decoded.ID == "" {
		// The backend answered 200 without a user record: treat as a
		// rejection, never as a half-verified session.
		return session.Identity{}, fmt.Errorf("login: %w", ErrInvalidCredentials)
	}
	return session.Identity{ID: decoded.ID, Name: decoded.Name, Email: decoded.Email}, nil
}

// Registration is the input to Register.
type Registration struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// registerResponse is the wire format for POST /signup.
type registerResponse struct {
	SignUpSuccessful bool     `json:"signUpSuccessful"`
	Errors           []string `json:"errors"`
}

// Register creates a new account. Field-level rejections come back as
// a *ValidationError; a successful call does not log the user in, so
// the caller follows up with Login.
func (client *Client) Register(ctx context.Context, registration Registration) error {
	response, err := client.postJSON(ctx, "/signup", registration)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusBadRequest || response.StatusCode == http.StatusUnprocessableEntity {
		var decoded registerResponse
		if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil || len(decoded.Errors) == 0 {
			return fmt.Errorf("register: %w", &ValidationError{})
		}
		return fmt.Errorf("register: %w", &ValidationError{Messages: decoded.Errors})
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return fmt.Errorf("register: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var decoded registerResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("register: decode response: %w", err)
	}
	if !decoded.SignUpSuccessful {
		return fmt.Errorf("register: %w", &ValidationError{Messages: decoded.Errors})
	}
	return nil
}

// Logout ends the session. The backend keeps no server-side session
// state (every call is keyed by user ID), so this is best-effort by
// construction: the caller clears the local session store regardless.
func (client *Client) Logout(ctx context.Context) error {
	return nil
}

// Item is one pantry entry.
type Item struct {
	ID             string  `json:"_id,omitempty"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	ExpirationDate string  `json:"expirationDate"` // YYYY-MM-DD.
	Quantity       int     `json:"quantity"`
	ManualEntry    bool    `json:"manualEntry"`
	Price          float64 `json:"price"`
}

// PantryItems returns every item in the user's pantry.
func (client *Client) PantryItems(ctx context.Context, userID string) ([]Item, error) {
	response, err := client.get(ctx, "/getItems/"+url.PathEscape(userID))
	if err != nil {
		return nil, fmt.Errorf("pantry items: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pantry items: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var items []Item
	if err := json.NewDecoder(response.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("pantry items: decode response: %w", err)
	}
	return items, nil
}

// AddItem stores a new pantry item for the user.
func (client *Client) AddItem(ctx context.Context, userID string, item Item) error {
	response, err := client.postJSON(ctx, "/addItem/"+url.PathEscape(userID), item)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return fmt.Errorf("add item: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}
	return nil
}

// updateItemRequest is the wire format for PUT /updateItem.
type updateItemRequest struct {
	ItemData Item `json:"itemData"`
}

// UpdateItem replaces an existing pantry item, typically after a
// consumption update changed its quantity.
func (client *Client) UpdateItem(ctx context.Context, userID, itemID string, item Item) error {
	path := "/updateItem/" + url.PathEscape(userID) + "/" + url.PathEscape(itemID)
	response, err := client.putJSON(ctx, path, updateItemRequest{ItemData: item})
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("update item: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}
	return nil
}

// Product is the catalog record behind a barcode.
type Product struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

// lookupRequest is the wire format for POST /getInfo.
type lookupRequest struct {
	QRCode string `json:"qrCode"`
}

// lookupResponse is the wire format for POST /getInfo.
type lookupResponse struct {
	ProductFound bool    `json:"productFound"`
	Product      Product `json:"product"`
}

// LookupBarcode resolves a scanned barcode payload to a product
// record. A miss returns ErrNotFound.
func (client *Client) LookupBarcode(ctx context.Context, code string) (Product, error) {
	response, err := client.postJSON(ctx, "/getInfo", lookupRequest{QRCode: url.QueryEscape(code)})
	if err != nil {
		return Product{}, fmt.Errorf("barcode lookup: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("barcode lookup: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var decoded lookupResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return Product{}, fmt.Errorf("barcode lookup: decode response: %w", err)
	}
	if !decoded.ProductFound {
		return Product{}, fmt.Errorf("barcode lookup: %w", ErrNotFound)
	}
	return decoded.Product, nil
}

// ChatHistory returns the user's stored assistant conversation, oldest
// first. An empty history is a normal result for a new user.
func (client *Client) ChatHistory(ctx context.Context, userID string) ([]ChatMessage, error) {
	response, err := client.get(ctx, "/getChats/"+url.PathEscape(userID))
	if err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat history: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var messages []ChatMessage
	if err := json.NewDecoder(response.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("chat history: decode response: %w", err)
	}
	return messages, nil
}

// chatRequest is the wire format for POST /chat.
type chatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// SendChatMessage submits one user message and returns the full
// updated history including the assistant's reply.
func (client *Client) SendChatMessage(ctx context.Context, userID, text string) ([]ChatMessage, error) {
	response, err := client.postJSON(ctx, "/chat", chatRequest{UserID: userID, Message: text})
	if err != nil {
		return nil, fmt.Errorf("send chat message: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("send chat message: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var messages []ChatMessage
	if err := json.NewDecoder(response.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("send chat message: decode response: %w", err)
	}
	return messages, nil
}

// suggestionsRequest is the wire format for POST /getSuggestions.
type suggestionsRequest struct {
	UserID string `json:"userId"`
}

// RecipeSuggestions asks the backend for recipes matching the user's
// current pantry.
func (client *Client) RecipeSuggestions(ctx context.Context, userID string) ([]Recipe, error) {
	response, err := client.postJSON(ctx, "/getSuggestions", suggestionsRequest{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("recipe suggestions: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe suggestions: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var recipes []Recipe
	if err := json.NewDecoder(response.Body).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("recipe suggestions: decode response: %w", err)
	}
	return recipes, nil
}

// KPIs is the user's impact summary shown on the home screen.
type KPIs struct {
	PantryValue       float64 `json:"pantryValue"`
	WastedValue       float64 `json:"wastedValue"`
	RecommendedBudget float64 `json:"recommendedBudget"`
	CO2Impact         float64 `json:"co2Impact"`
	PotentialSavings  float64 `json:"potentialSavings"`
}

// FetchKPIs returns the user's impact numbers.
func (client *Client) FetchKPIs(ctx context.Context, userID string) (KPIs, error) {
	response, err := client.get(ctx, "/kpis/"+url.PathEscape(userID))
	if err != nil {
		return KPIs{}, fmt.Errorf("kpis: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return KPIs{}, fmt.Errorf("kpis: HTTP %d: %s", response.StatusCode, errorBody(response.Body))
	}

	var kpis KPIs
	if err := json.NewDecoder(response.Body).Decode(&kpis); err != nil {
		return KPIs{}, fmt.Errorf("kpis: decode response: %w", err)
	}
	return kpis, nil
}

// get issues a GET request against the backend.
func (client *Client) get(ctx context.Context, path string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return client.httpClient.Do(request)
}

// postJSON issues a POST request with a JSON-encoded body.
func (client *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	return client.sendJSON(ctx, http.MethodPost, path, body)
}

// putJSON issues a PUT request with a JSON-encoded body.
func (client *Client) putJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	return client.sendJSON(ctx, http.MethodPut, path, body)
}

func (client *Client) sendJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	return client.httpClient.Do(request)
}

// errorBody reads a bounded amount of an error response for inclusion
// in the error message.
func errorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, maxResponseSize))
	return string(data)
}
