package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Location         string          `json:"location"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	ImageURL         string          `json:"image_url,omitempty"`
	TotalCapacity    int             `json:"total_capacity"`
	AvailableTickets int             `json:"available_tickets"`
	TicketPrice      decimal.Decimal `json:"ticket_price"`
	IsPublished      bool            `json:"is_published"`
	IsCanceled       bool            `json:"is_canceled"`
	ReminderSent     bool            `json:"-"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TicketsSold is the quantity currently held by pending and paid orders.
func (e *Event) TicketsSold() int {
	return e.TotalCapacity - e.AvailableTickets
}

type CreateEventInput struct {
	Title         string
	Description   string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
	ImageURL      string
	TotalCapacity int
	TicketPrice   decimal.Decimal
	IsPublished   bool
}

type UpdateEventInput struct {
	Title         *string
	Description   *string
	Location      *string
	StartDate     *time.Time
	EndDate       *time.Time
	ImageURL      *string
	TotalCapacity *int
	TicketPrice   *decimal.Decimal
	IsPublished   *bool
	IsCanceled    *bool
}

type EventFilter struct {
	Location      string
	Upcoming      *bool
	PublishedOnly bool
	Limit         int
	Offset        int
}
