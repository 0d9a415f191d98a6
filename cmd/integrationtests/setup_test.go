package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	auction "github.com/the-auction-games/auction-api/internal/auctionService"
	"github.com/the-auction-games/auction-api/internal/metrics"
	engine "github.com/the-auction-games/auction-api/internal/offerEngine"
	"github.com/the-auction-games/auction-api/internal/repository"
	"github.com/the-auction-games/auction-api/internal/server"

	"github.com/gin-gonic/gin"
)

const stubStoreName = "mongo"

// stubStateStore is an in-memory stand-in for the state store sidecar the
// service runs against in production.
type stubStateStore struct {
	mu      sync.Mutex
	records map[string]json.RawMessage
}

func (s *stubStateStore) handler() http.Handler {
	mux := http.NewServeMux()
	statePrefix := fmt.Sprintf("/v1.0/state/%s", stubStoreName)

	mux.HandleFunc(statePrefix+"/", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, statePrefix+"/")
		s.mu.Lock()
		defer s.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			record, ok := s.records[key]
			if !ok {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write(record)
		case http.MethodDelete:
			delete(s.records, key)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc(statePrefix, func(w http.ResponseWriter, r *http.Request) {
		var items []struct {
			Key   string          `json:"key"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, item := range items {
			s.records[item.Key] = item.Value
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc(fmt.Sprintf("/v1.0-alpha1/state/%s/query", stubStoreName), func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		type entry struct {
			Data json.RawMessage `json:"data"`
		}
		results := make([]entry, 0, len(s.records))
		for _, record := range s.records {
			results = append(results, entry{Data: record})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"results": results})
	})

	return mux
}

// SetupTestRouter wires the full stack against a stubbed state store sidecar.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubStateStore{records: make(map[string]json.RawMessage)}
	sidecar := httptest.NewServer(stub.handler())
	t.Cleanup(sidecar.Close)

	collector := metrics.NewCollector()
	repo := repository.NewStateStoreRepo(sidecar.Client(), sidecar.URL, stubStoreName, 2*time.Second, collector)
	auctionSvc := auction.NewAuctionService(repo)
	offerEngine := engine.NewOfferEngine(repo, collector)

	return server.SetupRouter(auctionSvc, offerEngine, collector)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeData parses the response envelope and returns its data field.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder) any {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp["data"]
}
