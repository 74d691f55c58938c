package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"votum-api/internal/svc"
	"votum-api/internal/types"
	"votum-api/pkg/brief"
	"votum-api/pkg/llm"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatResponse{
		Choices: []llm.Choice{{Message: llm.Message{Role: "assistant", Content: s.response}}},
	}, nil
}

func (s *stubLLM) GetConfig() *llm.Config { return nil }
func (s *stubLLM) Close() error           { return nil }

func newTestServer(stub *stubLLM) http.HandlerFunc {
	return GenerateHandler(&svc.ServiceContext{
		LLM:       stub,
		Assembler: brief.NewAssembler("instructions"),
	})
}

const validBody = `{
	"financingType": "consumer_credit",
	"borrowers": [{"name": "Max Muster"}],
	"financingParameters": {"consumer": {"purpose": "used car", "amountTeur": "18"}},
	"riskProfile": {},
	"bureauEntries": {"count": 0}
}`

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestGenerateHandlerSuccess(t *testing.T) {
	w := postJSON(t, newTestServer(&stubLLM{response: "The assessment."}), validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "The assessment.", resp.Text)
}

func TestGenerateHandlerMalformedBody(t *testing.T) {
	cases := map[string]string{
		"not json":                `{"financingType":`,
		"unknown financing type":  `{"financingType": "leasing", "borrowers": [{"name": "x"}], "financingParameters": {}, "riskProfile": {}, "bureauEntries": {"count": 0}}`,
		"missing borrowers field": `{"financingType": "consumer_credit", "financingParameters": {}, "riskProfile": {}, "bureauEntries": {"count": 0}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := postJSON(t, newTestServer(&stubLLM{response: "unused"}), body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestGenerateHandlerBureauMismatch(t *testing.T) {
	body := `{
		"financingType": "consumer_credit",
		"borrowers": [{"name": "Max Muster"}],
		"financingParameters": {"consumer": {"purpose": "used car"}},
		"riskProfile": {},
		"bureauEntries": {"count": 2, "entries": [{"kind": "consumer loan"}]}
	}`
	w := postJSON(t, newTestServer(&stubLLM{response: "unused"}), body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "mismatch")
}

func TestGenerateHandlerGeneratorFailure(t *testing.T) {
	w := postJSON(t, newTestServer(&stubLLM{err: errors.New("provider unreachable")}), validBody)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "provider unreachable")
}
