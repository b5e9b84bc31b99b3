package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/3moscas/tgbot/pkg/gemini"
)

func TestBuildSummaryPrompt(t *testing.T) {
	text := "A longa história dos gatos domésticos."

	prompt := gemini.BuildSummaryPrompt(text, "pt")

	if !strings.Contains(prompt, "Portuguese") {
		t.Errorf("prompt missing target language")
	}
	if !strings.Contains(prompt, text) {
		t.Errorf("prompt missing source text")
	}

	fallback := gemini.BuildSummaryPrompt(text, "xx")
	if !strings.Contains(fallback, "Portuguese") {
		t.Errorf("unknown language code should fall back to Portuguese")
	}
}

func TestClient_Summarize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if strings.Contains(text, "cause_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if strings.Contains(text, "cause_empty") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "  resumo do texto  " }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		got, err := client.Summarize(context.Background(), "Um texto longo sobre gatos.", "pt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "resumo do texto" {
			t.Errorf("expected trimmed summary, got %q", got)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.Summarize(context.Background(), "cause_500", "pt")
		if err == nil {
			t.Fatalf("expected API error")
		}
	})

	t.Run("No Candidates", func(t *testing.T) {
		_, err := client.Summarize(context.Background(), "cause_empty", "pt")
		if err == nil || !strings.Contains(err.Error(), "no candidates") {
			t.Fatalf("expected no candidates error, got: %v", err)
		}
	})

	t.Run("Wrong API Key", func(t *testing.T) {
		bad := gemini.NewClient("wrong-key")
		bad.SetAPIURL(ts.URL)
		_, err := bad.Summarize(context.Background(), "qualquer texto", "pt")
		if err == nil {
			t.Fatalf("expected auth error")
		}
	})
}
