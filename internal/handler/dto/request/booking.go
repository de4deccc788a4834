package request

import (
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/patch"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/validator"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/commands"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/google/uuid"
)

var bookingMessages = validator.Messages{
	"name.min":                 "Naam moet minimaal 2 tekens bevatten",
	"email.required":           "Ongeldig e-mailadres",
	"email.email":              "Ongeldig e-mailadres",
	"phone.min":                "Telefoonnummer moet minimaal 10 tekens bevatten",
	"reservationType.min":      "Selecteer minimaal één reserveringstype",
	"reservationType.uuid_any": "Ongeldig reserveringstype",
	"date.required":            "Selecteer een datum",
	"date.min":                 "Selecteer een datum",
	"date.datetime":            "Ongeldige datum",
	"startTime.required":       "Selecteer een starttijd",
	"startTime.min":            "Selecteer een starttijd",
	"duration.required":        "Selecteer een duur",
	"duration.min":             "Selecteer een duur",
	"startDate.datetime":       "Ongeldige startdatum",
	"endDate.datetime":         "Ongeldige einddatum",
}

type CreateBookingRequest struct {
	Name            string   `json:"name" validate:"min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"min=10"`
	ReservationType []string `json:"reservationType" validate:"min=1,dive,uuid_any"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string   `json:"startTime" validate:"required"`
	Duration        string   `json:"duration" validate:"required"`
	Notes           *string  `json:"notes,omitempty"`
}

// Every field is optional; present fields follow the create rules.
type UpdateBookingRequest struct {
	Name            *string   `json:"name,omitempty" validate:"omitnil,min=2"`
	Email           *string   `json:"email,omitempty" validate:"omitnil,email"`
	Phone           *string   `json:"phone,omitempty" validate:"omitnil,min=10"`
	ReservationType *[]string `json:"reservationType,omitempty" validate:"omitnil,min=1,dive,uuid_any"`
	Date            *string   `json:"date,omitempty" validate:"omitnil,min=1,datetime=2006-01-02"`
	StartTime       *string   `json:"startTime,omitempty" validate:"omitnil,min=1"`
	Duration        *string   `json:"duration,omitempty" validate:"omitnil,min=1"`
	Notes           *string   `json:"notes,omitempty"`
}

func (r *CreateBookingRequest) Validate() error {
	return validator.Struct(r, bookingMessages)
}

func (r *UpdateBookingRequest) Validate() error {
	return validator.Struct(r, bookingMessages)
}

// ToCommand assumes Validate passed.
func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	optionIDs, err := parseOptionIDs(r.ReservationType)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}

	return commands.CreateBookingRequest{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      date,
		Notes:     patch.NonZero(r.Notes),
		OptionIDs: optionIDs,
	}, nil
}

// ToCommand assumes Validate passed. An empty notes string is kept so the
// note gets cleared.
func (r *UpdateBookingRequest) ToCommand() (commands.UpdateBookingRequest, error) {
	cmd := commands.UpdateBookingRequest{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}

	if r.Date != nil {
		date, err := booking.ParseDate(*r.Date)
		if err != nil {
			return commands.UpdateBookingRequest{}, err
		}
		cmd.Date = &date
	}

	if r.ReservationType != nil {
		optionIDs, err := parseOptionIDs(*r.ReservationType)
		if err != nil {
			return commands.UpdateBookingRequest{}, err
		}
		cmd.OptionIDs = optionIDs
	}

	return cmd, nil
}

// Schedule returns the unpersisted start time and duration sent with the request.
func (r *CreateBookingRequest) Schedule() queries.Schedule {
	return queries.Schedule{StartTime: r.StartTime, Duration: r.Duration}
}

func (r *UpdateBookingRequest) Schedule() queries.Schedule {
	var s queries.Schedule
	if r.StartTime != nil {
		s.StartTime = *r.StartTime
	}
	if r.Duration != nil {
		s.Duration = *r.Duration
	}
	return s
}

// BookingListQuery holds the query string of booking and calendar listings.
type BookingListQuery struct {
	StartDate       string   `form:"startDate"`
	EndDate         string   `form:"endDate"`
	ReservationType []string `form:"reservationType"`
}

func (q *BookingListQuery) ToFilter() (queries.BookingFilter, error) {
	if err := validator.Merge(
		validateOptionalDate("startDate", q.StartDate),
		validateOptionalDate("endDate", q.EndDate),
		validateOptionIDs(q.ReservationType),
	); err != nil {
		return queries.BookingFilter{}, err
	}

	var filter queries.BookingFilter
	if q.StartDate != "" {
		d, _ := booking.ParseDate(q.StartDate)
		filter.StartDate = &d
	}
	if q.EndDate != "" {
		d, _ := booking.ParseDate(q.EndDate)
		filter.EndDate = &d
	}
	ids, _ := parseOptionIDs(q.ReservationType)
	if len(ids) > 0 {
		filter.ReservationTypes = ids
	}
	return filter, nil
}

func validateOptionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	return validator.Var(field, value, "datetime=2006-01-02", bookingMessages)
}

func validateOptionIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return validator.Var("reservationType", ids, "dive,uuid_any", bookingMessages)
}

func parseOptionIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
