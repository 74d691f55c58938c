package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		DefaultModel: "gpt-4o-mini",
		Timeout:      5 * time.Second,
		LogLevel:     "error",
		Models: map[string]ModelConfig{
			"gpt-4o-mini": {
				Provider:  "openai",
				ModelName: "gpt-4o-mini",
			},
		},
	}
}

func TestClientChat(t *testing.T) {
	var (
		mu        sync.Mutex
		lastBody  []byte
		lastPath  string
		callCount int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		callCount++
		lastPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		lastBody = body

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-1",
			"object":"chat.completion",
			"created":1730366400,
			"model":"openai/gpt-4o-mini",
			"choices":[
				{
					"index":0,
					"finish_reason":"stop",
					"message":{
						"role":"assistant",
						"content":"Formal assessment text"
					}
				}
			],
			"usage":{
				"prompt_tokens":120,
				"completion_tokens":240,
				"total_tokens":360
			}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	temp := 0.4
	resp, err := client.Chat(ctx, &ChatRequest{
		Temperature: &temp,
		Messages: []Message{
			{Role: "system", Content: "instructions"},
			{Role: "user", Content: "brief"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Formal assessment text", resp.Text())
	require.Equal(t, 360, resp.Usage.TotalTokens)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, callCount, "single attempt per request")
	require.Contains(t, lastPath, "/chat/completions")

	var sent map[string]any
	require.NoError(t, json.Unmarshal(lastBody, &sent))
	require.Equal(t, "openai/gpt-4o-mini", sent["model"])
	require.InDelta(t, 0.4, sent["temperature"].(float64), 0.0001)
	msgs := sent["messages"].([]any)
	require.Len(t, msgs, 2)
	require.Equal(t, "system", msgs[0].(map[string]any)["role"])
	require.Equal(t, "user", msgs[1].(map[string]any)["role"])
}

func TestClientChatFailureIsNotRetried(t *testing.T) {
	var callCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "brief"}},
	})
	require.Error(t, err)
	require.Equal(t, 1, callCount, "failures must not trigger retries")
}

func TestClientChatRejectsEmptyRequest(t *testing.T) {
	client, err := NewClient(testConfig("https://unused.example.com"))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Chat(context.Background(), nil)
	require.Error(t, err)

	_, err = client.Chat(context.Background(), &ChatRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one message")
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)

	_, err = NewClient(&Config{})
	require.Error(t, err)
}
