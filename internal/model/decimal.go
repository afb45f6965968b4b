package model

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToDecimal128 converts a domain decimal to its storage representation.
// Decimal128 compares numerically in store-side query filters, which the
// conditional bid update depends on.
func ToDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		// decimal.Decimal.String always yields a valid decimal literal.
		panic(err)
	}
	return v
}

// FromDecimal128 converts a stored amount back to a domain decimal.
func FromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(v.String())
}
