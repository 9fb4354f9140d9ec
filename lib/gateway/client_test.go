// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testServer creates a test HTTP server that mimics the backend and
// returns a Client connected to it. The server is cleaned up when the
// test completes.
func testServer(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{
		httpClient: &http.Client{
			Transport: &testServerTransport{
				server:    server,
				transport: http.DefaultTransport,
			},
		},
		baseURL: "http://backend",
	}
}

// testServerTransport rewrites requests to target the test server.
type testServerTransport struct {
	server    *httptest.Server
	transport http.RoundTripper
}

func (transport *testServerTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.URL.Scheme = "http"
	request.URL.Host = transport.server.Listener.Addr().String()
	return transport.transport.RoundTrip(request)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(writer http.ResponseWriter, request *http.Request) {
		var body loginRequest
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if body.Email != "a@x.com" || body.Password != "hunter2" {
			t.Errorf("login body = %+v, want submitted credentials", body)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(loginResponse{ID: "u1", Name: "Ann", Email: "a@x.com"})
	})

	client := testServer(t, mux)
	identity, err := client.Login(context.Background(), "a@x.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.ID != "u1" || identity.Name != "Ann" || identity.Email != "a@x.com" {
		t.Errorf("identity = %+v, want the backend record", identity)
	}
}

func TestLoginRejected(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "bad credentials", http.StatusUnauthorized)
	})

	client := testServer(t, mux)
	_, err := client.Login(context.Background(), "bad@x.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWithoutUserRecordRejected(t *testing.T) {
	t.Parallel()

	// A 200 that carries no user ID is a rejection, never a
	// half-verified session.
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{}`))
	})

	client := testServer(t, mux)
	_, err := client.Login(context.Background(), "a@x.com", "hunter2")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /signup", func(writer http.ResponseWriter, request *http.Request) {
		var body Registration
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Errorf("decode signup body: %v", err)
		}
		if body.FirstName != "Ann" || body.ConfirmPassword != "hunter2" {
			t.Errorf("signup body = %+v", body)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(registerResponse{SignUpSuccessful: true})
	})

	client := testServer(t, mux)
	err := client.Register(context.Background(), Registration{
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "a@x.com",
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestRegisterValidationError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /signup", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(writer).Encode(registerResponse{
			Errors: []string{"passwords do not match", "email already registered"},
		})
	})

	client := testServer(t, mux)
	err := client.Register(context.Background(), Registration{Email: "a@x.com"})

	var validationError *ValidationError
	if !errors.As(err, &validationError) {
		t.Fatalf("Register error = %v, want *ValidationError", err)
	}
	if len(validationError.Messages) != 2 {
		t.Errorf("Messages = %v, want both backend messages", validationError.Messages)
	}
}

func TestPantryItems(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /getItems/u1", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode([]Item{
			{ID: "i1", Name: "Milk", Category: "dairy", Quantity: 2, ExpirationDate: "2026-09-01", Price: 3.49},
			{ID: "i2", Name: "Bread", Category: "grains", Quantity: 1, ExpirationDate: "2026-08-30", Price: 2.10},
		})
	})

	client := testServer(t, mux)
	items, err := client.PantryItems(context.Background(), "u1")
	if err != nil {
		t.Fatalf("PantryItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "Milk" || items[0].Quantity != 2 {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestUpdateItemWrapsItemData(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /updateItem/u1/i1", func(writer http.ResponseWriter, request *http.Request) {
		var body updateItemRequest
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Errorf("decode update body: %v", err)
		}
		if body.ItemData.Quantity != 3 {
			t.Errorf("ItemData.Quantity = %d, want 3", body.ItemData.Quantity)
		}
		writer.WriteHeader(http.StatusOK)
	})

	client := testServer(t, mux)
	err := client.UpdateItem(context.Background(), "u1", "i1", Item{ID: "i1", Name: "Milk", Quantity: 3})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
}

func TestLookupBarcode(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /getInfo", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(lookupResponse{
			ProductFound: true,
			Product:      Product{Code: "0123", Name: "Oat Milk", Brand: "Grove", Category: "beverages"},
		})
	})

	client := testServer(t, mux)
	product, err := client.LookupBarcode(context.Background(), "0123")
	if err != nil {
		t.Fatalf("LookupBarcode: %v", err)
	}
	if product.Name != "Oat Milk" || product.Category != "beverages" {
		t.Errorf("product = %+v", product)
	}
}

func TestLookupBarcodeMiss(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /getInfo", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(lookupResponse{ProductFound: false})
	})

	client := testServer(t, mux)
	_, err := client.LookupBarcode(context.Background(), "9999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("LookupBarcode error = %v, want ErrNotFound", err)
	}
}

func TestChatHistoryNormalizesShapes(t *testing.T) {
	t.Parallel()

	// The backend has stored messages under two shapes; both decode
	// to the same normalized form.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /getChats/u1", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[
			{"id": "m1", "sender": "user", "text": "what can I cook?"},
			{"id": "m2", "role": "bot", "content": "Try a **frittata**."}
		]`))
	})

	client := testServer(t, mux)
	messages, err := client.ChatHistory(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ChatHistory: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Role != RoleUser || messages[0].Text != "what can I cook?" {
		t.Errorf("messages[0] = %+v", messages[0])
	}
	if messages[1].Role != RoleAssistant || messages[1].Text != "Try a **frittata**." {
		t.Errorf("messages[1] = %+v", messages[1])
	}
}

func TestSendChatMessageReturnsFullHistory(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", func(writer http.ResponseWriter, request *http.Request) {
		var body chatRequest
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Errorf("decode chat body: %v", err)
		}
		if body.UserID != "u1" || body.Message != "hello" {
			t.Errorf("chat body = %+v", body)
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[
			{"id": "m1", "role": "user", "text": "hello"},
			{"id": "m2", "role": "assistant", "text": "Hi! How can I help?"}
		]`))
	})

	client := testServer(t, mux)
	messages, err := client.SendChatMessage(context.Background(), "u1", "hello")
	if err != nil {
		t.Fatalf("SendChatMessage: %v", err)
	}
	if len(messages) != 2 || messages[1].Role != RoleAssistant {
		t.Errorf("messages = %+v, want the full updated history", messages)
	}
}

func TestRecipeSuggestionsFlexibleIngredients(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /getSuggestions", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[
			{"id": "r1", "title": "Veggie Stir Fry", "ingredients": ["broccoli", "soy sauce"], "instructions": "Fry it."},
			{"id": "r2", "title": "Toast", "ingredients": "bread, butter", "instructions": "Toast it."}
		]`))
	})

	client := testServer(t, mux)
	recipes, err := client.RecipeSuggestions(context.Background(), "u1")
	if err != nil {
		t.Fatalf("RecipeSuggestions: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("got %d recipes, want 2", len(recipes))
	}
	if recipes[0].Ingredients.String() != "broccoli, soy sauce" {
		t.Errorf("array ingredients = %q", recipes[0].Ingredients.String())
	}
	if recipes[1].Ingredients.String() != "bread, butter" {
		t.Errorf("string ingredients = %q", recipes[1].Ingredients.String())
	}
}

func TestFetchKPIs(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /kpis/u1", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(KPIs{
			PantryValue:       84.20,
			WastedValue:       6.10,
			RecommendedBudget: 120,
			CO2Impact:         3.4,
			PotentialSavings:  18.75,
		})
	})

	client := testServer(t, mux)
	kpis, err := client.FetchKPIs(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FetchKPIs: %v", err)
	}
	if kpis.PantryValue != 84.20 || kpis.PotentialSavings != 18.75 {
		t.Errorf("kpis = %+v", kpis)
	}
}

func TestServerErrorsSurfaceStatusAndBody(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /getItems/u1", func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "database unavailable", http.StatusServiceUnavailable)
	})

	client := testServer(t, mux)
	_, err := client.PantryItems(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if got := err.Error(); got == "" {
		t.Error("error message should not be empty")
	}
}

func TestCanceledContextAbortsCall(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /getItems/u1", func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
	})

	client := testServer(t, mux)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.PantryItems(ctx, "u1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
