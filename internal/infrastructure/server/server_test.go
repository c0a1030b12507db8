package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ayankousky/interest-calculator/internal/calculator"
	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/internal/infrastructure/repository/memory"
	"github.com/ayankousky/interest-calculator/internal/notifier"
	"github.com/ayankousky/interest-calculator/internal/notifier/strategies"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	calc, err := calculator.New(memory.NewFactory(), zap.NewNop())
	require.NoError(t, err)

	s := New(Config{Calculator: calc, Logger: zap.NewNop()})
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)

	return s, ts
}

func postQuote(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(ts.URL+"/api/v1/quote", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleQuote(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "Simple interest quote",
			body:       `{"type":"simple","principal":1000,"rate":5,"years":2}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Compound periodic quote",
			body:       `{"type":"compound_periodic","principal":1000,"rate":5,"years":2,"frequency":4}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Negative principal",
			body:       `{"type":"simple","principal":-1000,"rate":5,"years":2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Principal amount cannot be negative",
		},
		{
			name:       "Negative rate reported after principal",
			body:       `{"type":"simple","principal":1000,"rate":-5,"years":-2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Interest rate cannot be negative",
		},
		{
			name:       "Missing frequency for periodic compound",
			body:       `{"type":"compound_periodic","principal":1000,"rate":5,"years":2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Compounding frequency must be positive",
		},
		{
			name:       "Negative decimal places",
			body:       `{"type":"simple","principal":1000,"rate":5,"years":2,"decimal_places":-1}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Decimal places cannot be negative",
		},
		{
			name:       "Unknown type",
			body:       `{"type":"amortized","principal":1000,"rate":5,"years":2}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed body",
			body:       `{"type":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postQuote(t, ts, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantError != "" {
				var errResp errorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
				assert.Equal(t, tt.wantError, errResp.Error)
			}
		})
	}
}

func TestHandleQuoteResult(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postQuote(t, ts, `{"type":"compound","principal":1000,"rate":5,"years":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var calc domain.Calculation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&calc))
	assert.Equal(t, domain.CompoundInterest, calc.Type)
	assert.InDelta(t, 102.5, calc.Interest, 0.01)
	assert.InDelta(t, 1102.5, calc.FinalAmount, 0.01)
	assert.Equal(t, domain.DefaultDecimalPlaces, calc.DecimalPlaces, "absent decimal_places should default")
}

func TestHandleQuoteZeroDecimalPlaces(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postQuote(t, ts, `{"type":"compound","principal":1000,"rate":5,"years":2,"decimal_places":0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var calc domain.Calculation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&calc))
	assert.Equal(t, float64(103), calc.Interest, "explicit zero places should round to a whole amount")
}

func TestHandleQuoteMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/quote")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleHistoryAndStats(t *testing.T) {
	_, ts := newTestServer(t)

	for i := 0; i < 3; i++ {
		resp := postQuote(t, ts, fmt.Sprintf(`{"type":"simple","principal":%d,"rate":5,"years":2}`, 1000*(i+1)))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := http.Get(ts.URL + "/api/v1/history?limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history []domain.Calculation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	require.Len(t, history, 2)
	assert.Equal(t, float64(3000), history[1].Principal, "history should end with the newest quote")

	resp, err = http.Get(ts.URL + "/api/v1/history?limit=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/v1/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats calculator.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, int64(3), stats.TotalQuotes)
}

func TestHandleHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebSocketQuoteStream(t *testing.T) {
	s, ts := newTestServer(t)

	// ride the notifier path, same as production wiring
	require.NoError(t, s.calculator.WithNotifier(s.Hub(), notifier.QuoteTopic, &strategies.QuoteDataStrategy{}))

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/quotes"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.Hub().ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	resp := postQuote(t, ts, `{"type":"simple","principal":1000,"rate":5,"years":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var event struct {
		EventType string             `json:"event_type"`
		Data      domain.Calculation `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, string(notifier.QuoteTopic), event.EventType)
	assert.InDelta(t, 100, event.Data.Interest, 0.01)
}
