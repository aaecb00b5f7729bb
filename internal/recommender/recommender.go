// Package recommender scores live and upcoming auctions against a user's
// bidding and search history. Scoring blends text similarity, category
// affinity and seller affinity, with a small bonus for prices near what the
// user usually bids on.
package recommender

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Scoring weights. Content, category and seller affinity sum to 1; the
// price bonus is added on top before the popularity multiplier.
const (
	weightContent  = 0.45
	weightCategory = 0.30
	weightSeller   = 0.25
	priceBonusMax  = 0.10

	categoryShare    = 0.6
	subcategoryShare = 0.4
)

// Field weights used when scoring keyword search matches
const (
	searchWeightName        = 10
	searchWeightKeywords    = 8
	searchWeightDescription = 5
)

const defaultLimit = 10

// Engine computes recommendations and keyword search results
type Engine struct {
	repo repository.AuctionDB
	now  func() time.Time
}

// NewEngine creates a new recommendation engine
func NewEngine(repo repository.AuctionDB) *Engine {
	return &Engine{repo: repo, now: time.Now}
}

// Recommendation pairs a candidate auction with its relevance score
type Recommendation struct {
	Product model.Product       `json:"product"`
	Auction model.Auction       `json:"auction"`
	Status  model.AuctionStatus `json:"status"`
	Score   float64             `json:"score"`
}

// SearchResult is one keyword search hit
type SearchResult struct {
	Product model.Product       `json:"product"`
	Auction model.Auction       `json:"auction"`
	Status  model.AuctionStatus `json:"status"`
	Score   int                 `json:"score"`
}

type candidate struct {
	product  model.Product
	auction  model.Auction
	status   model.AuctionStatus
	bidCount int
}

// productDoc builds the weighted token text for a product. The name counts
// three times, description and keywords twice, so matches on the name
// dominate matches buried in the description.
func productDoc(p model.Product) string {
	parts := []string{
		p.Name, p.Name, p.Name,
		p.Description, p.Description,
		p.Keywords, p.Keywords,
		p.Category,
		p.Subcategory,
	}
	return strings.Join(parts, " ")
}

// Recommend returns up to limit auctions ranked for the user. A user with
// no bid or search history gets the newest live and upcoming auctions
// instead of personalized scores.
func (e *Engine) Recommend(ctx context.Context, userID string, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	candidates, err := e.loadCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []Recommendation{}, nil
	}

	history, err := e.repo.GetBidHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recommender: failed to load bid history for user %s: %w", userID, err)
	}
	searches, err := e.repo.GetSearchHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recommender: failed to load search history for user %s: %w", userID, err)
	}

	if len(history) == 0 && len(searches) == 0 {
		return newestFirst(candidates, limit), nil
	}

	profile := e.buildProfile(ctx, history, searches)

	docs := newCorpus()
	for _, c := range candidates {
		docs.add(c.product.ProductID, productDoc(c.product))
	}
	profileVec := docs.vectorFor(profile.text)

	recommendations := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		score := e.score(c, docs.vector(c.product.ProductID), profileVec, profile)
		recommendations = append(recommendations, Recommendation{
			Product: c.product,
			Auction: c.auction,
			Status:  c.status,
			Score:   score,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Score == recommendations[j].Score {
			return recommendations[i].Auction.CreatedAt.After(recommendations[j].Auction.CreatedAt)
		}
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}

// profile aggregates everything known about the user's tastes
type profile struct {
	text          string
	categories    map[string]struct{}
	subcategories map[string]struct{}
	sellers       map[string]struct{}
	avgPrice      float64
}

func (e *Engine) buildProfile(ctx context.Context, history []model.BidHistoryEntry, searches []model.SearchHistoryEntry) profile {
	p := profile{
		categories:    make(map[string]struct{}),
		subcategories: make(map[string]struct{}),
		sellers:       make(map[string]struct{}),
	}

	var parts []string
	var priceSum float64
	var priced int
	for _, entry := range history {
		if entry.Category != "" {
			p.categories[entry.Category] = struct{}{}
		}
		if entry.Subcategory != "" {
			p.subcategories[entry.Subcategory] = struct{}{}
		}
		if entry.SellerID != "" {
			p.sellers[entry.SellerID] = struct{}{}
		}

		product, err := e.repo.GetProduct(ctx, entry.ProductID)
		if err != nil {
			continue // product gone, category signal above still counts
		}
		parts = append(parts, productDoc(product))
		priceSum += float64(product.StartingBid)
		priced++
	}
	for _, s := range searches {
		parts = append(parts, s.Query)
	}

	if priced > 0 {
		p.avgPrice = priceSum / float64(priced)
	}
	p.text = strings.Join(parts, " ")
	return p
}

func (e *Engine) score(c candidate, docVec, profileVec termVector, p profile) float64 {
	content := cosine(docVec, profileVec)

	var category float64
	if _, ok := p.categories[c.product.Category]; ok && c.product.Category != "" {
		category += categoryShare
	}
	if _, ok := p.subcategories[c.product.Subcategory]; ok && c.product.Subcategory != "" {
		category += subcategoryShare
	}

	var seller float64
	if _, ok := p.sellers[c.product.SellerID]; ok {
		seller = 1
	}

	score := weightContent*content + weightCategory*category + weightSeller*seller

	if p.avgPrice > 0 {
		distance := math.Abs(float64(c.product.StartingBid)-p.avgPrice) / p.avgPrice
		if distance < 1 {
			score += priceBonusMax * (1 - distance)
		}
	}

	// busier auctions get a mild boost, capped so popularity never
	// overwhelms relevance
	popularity := float64(c.bidCount)
	if popularity > 10 {
		popularity = 10
	}
	return score * (1 + popularity/50)
}

// loadCandidates returns every live or upcoming auction with its product and
// bid count, excluding auctions the user is selling.
func (e *Engine) loadCandidates(ctx context.Context, userID string) ([]candidate, error) {
	auctions, err := e.repo.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommender: failed to list auctions: %w", err)
	}

	now := e.now().UTC()
	candidates := make([]candidate, 0, len(auctions))
	for _, auction := range auctions {
		status := auction.StatusAt(now)
		if status == model.StatusEnded {
			continue
		}

		product, err := e.repo.GetProduct(ctx, auction.ProductID)
		if err != nil {
			utils.Warn("skipping auction with missing product", map[string]any{
				"auction_id": auction.AuctionID,
				"product_id": auction.ProductID,
			})
			continue
		}
		if product.SellerID == userID {
			continue
		}

		bidCount := 0
		bids, err := e.repo.GetBidsByAuction(ctx, auction.AuctionID)
		switch {
		case err == nil:
			bidCount = len(bids)
		case errors.Is(err, auctionerrors.ErrNoBids):
		default:
			return nil, fmt.Errorf("recommender: failed to count bids for auction %s: %w", auction.AuctionID, err)
		}

		candidates = append(candidates, candidate{
			product:  product,
			auction:  auction,
			status:   status,
			bidCount: bidCount,
		})
	}
	return candidates, nil
}

// newestFirst is the cold-start fallback: candidates arrive newest first
// from the repository, so the order is kept and scores stay zero.
func newestFirst(candidates []candidate, limit int) []Recommendation {
	recommendations := make([]Recommendation, 0, limit)
	for _, c := range candidates {
		if len(recommendations) == limit {
			break
		}
		recommendations = append(recommendations, Recommendation{
			Product: c.product,
			Auction: c.auction,
			Status:  c.status,
		})
	}
	return recommendations
}

// Search scores products against the query terms, heaviest on name matches,
// then keywords, then description. The query is logged to the user's search
// history so later recommendations reflect it.
func (e *Engine) Search(ctx context.Context, userID, query string) ([]SearchResult, error) {
	terms := tokenize(query)
	if len(terms) == 0 {
		return []SearchResult{}, nil
	}

	candidates, err := e.loadCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0)
	for _, c := range candidates {
		score := searchScore(c.product, terms)
		if score == 0 {
			continue
		}
		results = append(results, SearchResult{
			Product: c.product,
			Auction: c.auction,
			Status:  c.status,
			Score:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if userID != "" {
		e.recordSearch(ctx, userID, query)
	}
	return results, nil
}

func searchScore(p model.Product, terms []string) int {
	name := strings.ToLower(p.Name)
	keywords := strings.ToLower(p.Keywords)
	description := strings.ToLower(p.Description)

	score := 0
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += searchWeightName
		}
		if strings.Contains(keywords, term) {
			score += searchWeightKeywords
		}
		if strings.Contains(description, term) {
			score += searchWeightDescription
		}
	}
	return score
}

func (e *Engine) recordSearch(ctx context.Context, userID, query string) {
	entry := model.SearchHistoryEntry{
		SearchID:   utils.GenerateID(),
		UserID:     userID,
		Query:      query,
		SearchType: "keyword",
		CreatedAt:  e.now().UTC(),
	}
	if err := e.repo.RecordSearch(ctx, entry); err != nil {
		utils.Warn("failed to record search history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
