package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bid is an immutable, timestamped offer against an auction. Bids are only
// ever appended to an auction document, never mutated or removed.
type Bid struct {
	UserID primitive.ObjectID   `bson:"user_id"`
	Amount primitive.Decimal128 `bson:"amount"`
	Time   time.Time            `bson:"time"`
}

// NewBid constructs a bid with a server-assigned timestamp.
func NewBid(userID primitive.ObjectID, amount decimal.Decimal) Bid {
	return Bid{
		UserID: userID,
		Amount: ToDecimal128(amount),
		Time:   time.Now().UTC(),
	}
}
