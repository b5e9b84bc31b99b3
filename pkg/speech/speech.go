package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnintelligible is returned when the service recognizes the audio format
// but produces no transcript.
var ErrUnintelligible = errors.New("speech: audio could not be transcribed")

// Telegram voice notes are OGG/Opus at 48 kHz.
const (
	defaultEncoding   = "OGG_OPUS"
	defaultSampleRate = 48000
)

// Client is the Speech-to-Text REST API client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Speech-to-Text client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     "https://speech.googleapis.com/v1",
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Transcribe converts raw voice audio into text in the given BCP-47 language.
func (c *Client) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	url := fmt.Sprintf("%s/speech:recognize?key=%s", c.apiURL, c.apiKey)

	payload := recognizeRequest{
		Config: recognitionConfig{
			Encoding:        defaultEncoding,
			SampleRateHertz: defaultSampleRate,
			LanguageCode:    language,
		},
		Audio: recognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call speech API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("speech API error %d: %s", resp.StatusCode, string(raw))
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode speech response: %w", err)
	}

	if len(result.Results) == 0 || len(result.Results[0].Alternatives) == 0 {
		return "", ErrUnintelligible
	}

	transcript := result.Results[0].Alternatives[0].Transcript
	if transcript == "" {
		return "", ErrUnintelligible
	}

	return transcript, nil
}

type recognizeRequest struct {
	Config recognitionConfig `json:"config"`
	Audio  recognitionAudio  `json:"audio"`
}

type recognitionConfig struct {
	Encoding        string `json:"encoding"`
	SampleRateHertz int    `json:"sampleRateHertz"`
	LanguageCode    string `json:"languageCode"`
}

type recognitionAudio struct {
	Content string `json:"content"`
}

type recognizeResponse struct {
	Results []recognitionResult `json:"results"`
}

type recognitionResult struct {
	Alternatives []recognitionAlternative `json:"alternatives"`
}

type recognitionAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}
