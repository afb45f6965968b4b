package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auction is a sellable listing with a closing time and a running highest
// bid. Bids are embedded in the auction document, append-only, insertion
// order chronological. CurrentBid equals the highest accepted bid amount,
// or StartingPrice while Bids is empty.
type Auction struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Title            string               `bson:"title"`
	Description      string               `bson:"description"`
	StartingPrice    primitive.Decimal128 `bson:"starting_price"`
	MinimumIncrement primitive.Decimal128 `bson:"minimum_increment"`
	CurrentBid       primitive.Decimal128 `bson:"current_bid"`
	EndTime          time.Time            `bson:"end_time"`
	ImageURL         string               `bson:"image_url,omitempty"`
	SellerID         primitive.ObjectID   `bson:"seller_id"`
	CreatedAt        time.Time            `bson:"created_at"`
	Bids             []Bid                `bson:"bids"`
}

// NewAuction constructs an open auction for sellerID. The current bid
// starts at the starting price and the bid sequence starts empty.
func NewAuction(title, description string, startingPrice, minimumIncrement decimal.Decimal, endTime time.Time, sellerID primitive.ObjectID, imageURL string) *Auction {
	return &Auction{
		Title:            title,
		Description:      description,
		StartingPrice:    ToDecimal128(startingPrice),
		MinimumIncrement: ToDecimal128(minimumIncrement),
		CurrentBid:       ToDecimal128(startingPrice),
		EndTime:          endTime.UTC(),
		ImageURL:         imageURL,
		SellerID:         sellerID,
		CreatedAt:        time.Now().UTC(),
		Bids:             []Bid{},
	}
}

// Ended reports whether the auction is past its end time. The open/closed
// transition is time-driven; there is no stored status flag.
func (a *Auction) Ended(now time.Time) bool {
	return !a.EndTime.After(now)
}
