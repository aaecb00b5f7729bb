package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"auction-engine/internal/auctionlock"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/events"
	"auction-engine/internal/lifecycle"
	model "auction-engine/internal/models"
	proxy "auction-engine/internal/proxyService"
	"auction-engine/internal/recommender"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"
)

// SetupTestRouter wires the full stack on an in-memory repository for
// integration testing. The repository is returned for direct seeding.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	locks := auctionlock.New()
	broadcaster := events.NewBroadcaster()

	proxySvc := proxy.NewProxyService(repo, locks, broadcaster)
	biddingSvc := bidding.NewBiddingService(repo, locks, proxySvc, broadcaster)
	resolver := lifecycle.NewResolver(repo, locks, broadcaster)
	engine := recommender.NewEngine(repo)

	router := server.SetupRouter(biddingSvc, proxySvc, resolver, engine)
	return router, repo
}

// AuctionSeed describes one product with its auction window relative to now
type AuctionSeed struct {
	Name         string
	Description  string
	Keywords     string
	Category     string
	Subcategory  string
	SellerID     string
	StartingBid  int64
	ReservePrice int64
	StartOffset  time.Duration
	EndOffset    time.Duration
}

// SeedAuction stores the product and its auction, returning the auction
func SeedAuction(t *testing.T, repo *repository.MemoryRepo, seed AuctionSeed) model.Auction {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	if seed.SellerID == "" {
		seed.SellerID = "seller-1"
	}
	if seed.StartingBid == 0 {
		seed.StartingBid = 1000
	}
	if seed.EndOffset == 0 {
		seed.EndOffset = time.Hour
	}

	product := model.Product{
		ProductID:    utils.GenerateID(),
		Name:         seed.Name,
		Description:  seed.Description,
		Keywords:     seed.Keywords,
		Category:     seed.Category,
		Subcategory:  seed.Subcategory,
		SellerID:     seed.SellerID,
		StartingBid:  seed.StartingBid,
		ReservePrice: seed.ReservePrice,
		CreatedAt:    now,
	}
	require.NoError(t, repo.AddProduct(ctx, product))

	auction := model.Auction{
		AuctionID: utils.GenerateID(),
		ProductID: product.ProductID,
		StartTime: now.Add(seed.StartOffset),
		EndTime:   now.Add(seed.EndOffset),
		CreatedAt: now,
	}
	require.NoError(t, repo.AddAuction(ctx, auction))
	return auction
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
	}

	return resp, w
}
