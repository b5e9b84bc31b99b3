package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokMaxAttempts = 10
	ngrokRetryDelay  = 3 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL asks the local ngrok agent for its public tunnel URL so
// the Telegram webhook can be registered without a fixed domain. ngrok may
// still be starting when the process boots, so the probe retries.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= ngrokMaxAttempts; attempt++ {
		tunnel, err := fetchTunnelURL(ctx, client, url)
		if err == nil && tunnel != "" {
			return tunnel, nil
		}
		if err != nil && attempt == ngrokMaxAttempts {
			return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokMaxAttempts, err)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokRetryDelay):
		}
	}

	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokMaxAttempts)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	// Prefer HTTPS tunnels, Telegram requires them for webhooks.
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
