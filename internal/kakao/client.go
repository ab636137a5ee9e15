package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ErrLocationNotFound means the address resolved to no documents.
var ErrLocationNotFound = errors.New("위치 정보를 찾을 수 없습니다")

const addressSearchURL = "https://dapi.kakao.com/v2/local/search/address.json"

// Client resolves free-text addresses to coordinates via the Kakao local
// REST API.
type Client struct {
	apiKey  string
	baseURL string
}

func NewClient() *Client {
	return &Client{
		apiKey:  os.Getenv("KAKAO_API_KEY"),
		baseURL: addressSearchURL,
	}
}

// NewClientWithBaseURL is for tests against a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL}
}

// LocationByAddress returns a "latitude,longitude" string for the first
// matching document, or ErrLocationNotFound.
func (k *Client) LocationByAddress(ctx context.Context, address string) (string, error) {
	if k.apiKey == "" {
		return "", errors.New("missing KAKAO_API_KEY")
	}
	if address == "" {
		return "", errors.New("empty address")
	}

	reqURL := k.baseURL + "?query=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "KakaoAK "+k.apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("kakao api error: %s", string(raw))
	}

	var result struct {
		Documents []struct {
			Address struct {
				Y string `json:"y"`
				X string `json:"x"`
			} `json:"address"`
		} `json:"documents"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Documents) == 0 {
		return "", ErrLocationNotFound
	}

	doc := result.Documents[0]
	return doc.Address.Y + "," + doc.Address.X, nil
}
