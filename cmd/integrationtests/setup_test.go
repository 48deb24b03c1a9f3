package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "playmarket/internal/auctionService"
	bounty "playmarket/internal/bountyService"
	"playmarket/internal/config"
	"playmarket/internal/fanout"
	"playmarket/internal/repository"
	"playmarket/internal/server"
	wallet "playmarket/internal/walletService"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the full router over an in-memory ledger for
// integration testing. The ledger is returned so tests can seed balances.
func SetupTestRouter() (*gin.Engine, *repository.MemoryLedger) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	ledger := repository.NewMemoryLedgerWithStartingBalance(cfg.Wallet.StartingBalance)
	broker := fanout.NewBroker(cfg.Fanout.SubscriberBuffer)

	auctionService := auction.NewAuctionService(ledger, broker, cfg.Auction)
	walletService := wallet.NewWalletService(ledger)
	bountyService := bounty.NewBountyService(ledger)

	router := server.SetupRouter(cfg, auctionService, walletService, bountyService, broker)
	return router, ledger
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
