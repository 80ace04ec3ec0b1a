package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dwed-assistant/pkg/gemini"
)

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Errorf("expected error for missing api key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model %q, got %q", gemini.DefaultModel, client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if _, ok := req["system_instruction"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": { "promptTokenCount": 10, "candidatesTokenCount": 4, "totalTokenCount": 14 }
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: "You are a venue expert.",
		Messages: []gemini.Message{
			{Role: "user", Text: "venue in Delhi"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "mocked response string" {
		t.Errorf("unexpected response text: %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 14 {
		t.Errorf("unexpected token usage: %+v", resp.Usage)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Message{{Role: "user", Text: "cause_500"}},
	})
	if err == nil {
		t.Errorf("expected error on API 500")
	}
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Message{{Role: "user", Text: "hello"}},
	})
	if err == nil {
		t.Errorf("expected error on empty candidates")
	}
}
