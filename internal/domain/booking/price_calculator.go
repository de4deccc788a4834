package booking

import "github.com/google/uuid"

// OptionPrice is a resolved, active option reduced to what pricing needs.
type OptionPrice struct {
	ID    uuid.UUID
	Price Money
}

type PriceCalculator interface {
	Total(options []OptionPrice) Money
}

type SumPriceCalculator struct{}

func NewSumPriceCalculator() *SumPriceCalculator {
	return &SumPriceCalculator{}
}

// Total sums option prices. An empty list totals zero.
func (SumPriceCalculator) Total(options []OptionPrice) Money {
	total := NewMoney(0)
	for _, opt := range options {
		total = total.Add(opt.Price)
	}
	return total
}

func OptionIDs(options []OptionPrice) []uuid.UUID {
	ids := make([]uuid.UUID, len(options))
	for i, opt := range options {
		ids[i] = opt.ID
	}
	return ids
}
