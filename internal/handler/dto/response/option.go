package response

import (
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OptionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	SortOrder   int32     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromOptionList(views []*queries.OptionView) ([]*OptionResponse, error) {
	res := make([]*OptionResponse, len(views))
	for i, v := range views {
		item := &OptionResponse{}
		if err := copier.Copy(item, v); err != nil {
			return nil, err
		}
		item.Price = booking.NewMoney(v.PriceCents).Float64()
		res[i] = item
	}
	return res, nil
}
