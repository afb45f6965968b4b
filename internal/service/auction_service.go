package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openbid/auctiond/internal/cache"
	"github.com/openbid/auctiond/internal/errors"
	"github.com/openbid/auctiond/internal/model"
	"github.com/openbid/auctiond/internal/repository"
	"github.com/openbid/auctiond/internal/serializer"
	"github.com/openbid/auctiond/internal/validation"
)

// CreateAuctionParams carries a validated-shape auction creation payload.
type CreateAuctionParams struct {
	Title            string
	Description      string
	StartingPrice    decimal.Decimal
	MinimumIncrement decimal.Decimal
	EndTime          string
	ImageURL         string
}

// AuctionService implements the auction lifecycle and bid placement.
type AuctionService interface {
	Create(ctx context.Context, sellerID string, params CreateAuctionParams) (any, error)
	Get(ctx context.Context, id string) (any, error)
	List(ctx context.Context) (any, error)
	PlaceBid(ctx context.Context, bidderID, auctionID string, amount decimal.Decimal) error
	ListBySeller(ctx context.Context, userID string) (any, error)
	ListByBidder(ctx context.Context, userID string) (any, error)
}

type auctionService struct {
	auctionRepo repository.AuctionRepository
	cache       *cache.Client
}

// NewAuctionService creates a new auction service.
func NewAuctionService(auctionRepo repository.AuctionRepository, cacheClient *cache.Client) AuctionService {
	return &auctionService{
		auctionRepo: auctionRepo,
		cache:       cacheClient,
	}
}

// Create validates the payload and persists a new auction whose current
// bid starts at the starting price with an empty bid sequence.
func (s *auctionService) Create(ctx context.Context, sellerID string, params CreateAuctionParams) (any, error) {
	sellerOID, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, errors.Unprocessable("Invalid user ID format")
	}

	endTime, err := validation.Auction(params.Title, params.Description, params.StartingPrice, params.MinimumIncrement, params.EndTime)
	if err != nil {
		return nil, err
	}

	auction := model.NewAuction(params.Title, params.Description, params.StartingPrice, params.MinimumIncrement, endTime, sellerOID, params.ImageURL)

	id, err := s.auctionRepo.Create(ctx, auction)
	if err != nil {
		return nil, fmt.Errorf("create auction: %w", err)
	}

	doc, err := s.auctionRepo.FindDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read back auction: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.AuctionListKey())

	return serializer.Serialize(doc), nil
}

// Get fetches one auction by its 24-hex identifier.
func (s *auctionService) Get(ctx context.Context, id string) (any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Invalid auction ID")
	}

	var cached map[string]any
	if hit, _ := s.cache.GetJSON(ctx, cache.AuctionKey(id), &cached); hit {
		return cached, nil
	}

	doc, err := s.auctionRepo.FindDocument(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Auction not found")
		}
		return nil, fmt.Errorf("find auction: %w", err)
	}

	out := serializer.Serialize(doc)
	_ = s.cache.SetJSON(ctx, cache.AuctionKey(id), out, cache.AuctionTTL)
	return out, nil
}

// List returns all auctions, unfiltered, in natural store order.
func (s *auctionService) List(ctx context.Context) (any, error) {
	var cached []any
	if hit, _ := s.cache.GetJSON(ctx, cache.AuctionListKey(), &cached); hit {
		return cached, nil
	}

	docs, err := s.auctionRepo.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	out := serializer.Serialize(docs)
	_ = s.cache.SetJSON(ctx, cache.AuctionListKey(), out, cache.AuctionTTL)
	return out, nil
}

// PlaceBid appends a bid to an open auction. The write is a single
// conditional update: it only lands if the stored current bid is still
// below the new amount and the auction is still open, so concurrent
// higher bids are never overwritten by lower ones. A lost race surfaces
// as a distinct conflict so the caller can decide to retry.
func (s *auctionService) PlaceBid(ctx context.Context, bidderID, auctionID string, amount decimal.Decimal) error {
	bidderOID, err := primitive.ObjectIDFromHex(bidderID)
	if err != nil {
		return errors.Unauthorized("Invalid user identity")
	}
	auctionOID, err := primitive.ObjectIDFromHex(auctionID)
	if err != nil {
		return errors.NotFound("Invalid auction ID")
	}

	auction, err := s.auctionRepo.FindByID(ctx, auctionOID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.NotFound("Auction not found")
		}
		return fmt.Errorf("find auction: %w", err)
	}

	now := time.Now().UTC()
	if auction.Ended(now) {
		return errors.Expired("Auction has ended")
	}

	currentBid, err := model.FromDecimal128(auction.CurrentBid)
	if err != nil {
		return fmt.Errorf("decode current bid: %w", err)
	}
	if err := validation.Bid(amount, currentBid); err != nil {
		return err
	}

	bid := model.NewBid(bidderOID, amount)
	accepted, err := s.auctionRepo.AppendBid(ctx, auctionOID, bid)
	if err != nil {
		return fmt.Errorf("append bid: %w", err)
	}
	if !accepted {
		return s.diagnoseRejectedBid(ctx, auctionOID)
	}

	_ = s.cache.Delete(ctx, cache.AuctionKey(auctionID))
	_ = s.cache.Delete(ctx, cache.AuctionListKey())
	return nil
}

// diagnoseRejectedBid re-reads the auction after a conditional update
// miss to tell apart a vanished auction, a close that raced the bid, and
// a concurrent higher bid.
func (s *auctionService) diagnoseRejectedBid(ctx context.Context, auctionOID primitive.ObjectID) error {
	auction, err := s.auctionRepo.FindByID(ctx, auctionOID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.NotFound("Auction not found")
		}
		return fmt.Errorf("find auction: %w", err)
	}
	if auction.Ended(time.Now().UTC()) {
		return errors.Expired("Auction has ended")
	}
	currentBid, err := model.FromDecimal128(auction.CurrentBid)
	if err != nil {
		return fmt.Errorf("decode current bid: %w", err)
	}
	return errors.Outbid(fmt.Sprintf("A higher bid was placed concurrently; current bid is $%s", currentBid.String()))
}

// ListBySeller returns the auctions created by userID.
func (s *auctionService) ListBySeller(ctx context.Context, userID string) (any, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.Unprocessable("Invalid user ID format")
	}

	docs, err := s.auctionRepo.ListBySeller(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("list user auctions: %w", err)
	}
	return serializer.Serialize(docs), nil
}

// ListByBidder returns the auctions holding at least one bid by userID.
func (s *auctionService) ListByBidder(ctx context.Context, userID string) (any, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.Unprocessable("Invalid user ID format")
	}

	docs, err := s.auctionRepo.ListByBidder(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("list user bids: %w", err)
	}
	return serializer.Serialize(docs), nil
}
