package dto

import (
	"time"

	"github.com/tickethub-io/tickethub/internal/domain"
)

type EventResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Location         string `json:"location,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	TotalCapacity    int    `json:"total_capacity"`
	AvailableTickets int    `json:"available_tickets"`
	TicketsSold      int    `json:"tickets_sold"`
	TicketPrice      string `json:"ticket_price"`
	IsPublished      bool   `json:"is_published"`
	IsCanceled       bool   `json:"is_canceled"`
	CreatedAt        string `json:"created_at"`
}

type OrderResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	EventID       string  `json:"event_id"`
	Quantity      int     `json:"quantity"`
	UnitPrice     string  `json:"unit_price"`
	TotalAmount   string  `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentID     *string `json:"payment_id,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at"`
	PaidAt        *string `json:"paid_at,omitempty"`
}

type OrderDetailsResponse struct {
	OrderResponse
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
}

type PaymentResponse struct {
	Status        string `json:"status"`
	PaymentID     string `json:"payment_id,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		StartDate:        e.StartDate.Format(time.RFC3339),
		ImageURL:         e.ImageURL,
		TotalCapacity:    e.TotalCapacity,
		AvailableTickets: e.AvailableTickets,
		TicketsSold:      e.TicketsSold(),
		TicketPrice:      e.TicketPrice.StringFixed(2),
		IsPublished:      e.IsPublished,
		IsCanceled:       e.IsCanceled,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if !e.EndDate.IsZero() {
		resp.EndDate = e.EndDate.Format(time.RFC3339)
	}
	return resp
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		EventID:       o.EventID,
		Quantity:      o.Quantity,
		UnitPrice:     o.UnitPrice.StringFixed(2),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Status:        string(o.Status),
		PaymentID:     o.PaymentID,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
	if o.PaidAt != nil {
		paidAt := o.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}

func ToOrderDetailsResponse(d *domain.OrderDetails) OrderDetailsResponse {
	return OrderDetailsResponse{
		OrderResponse: ToOrderResponse(&d.Order),
		EventTitle:    d.EventTitle,
		EventDate:     d.EventDate.Format(time.RFC3339),
	}
}

func ToPaymentResponse(r *domain.PaymentResult) PaymentResponse {
	if !r.Succeeded {
		return PaymentResponse{Status: "failed", FailureReason: r.FailureReason}
	}
	return PaymentResponse{Status: "succeeded", PaymentID: r.PaymentID}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		IsAdmin:        u.IsAdmin,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
