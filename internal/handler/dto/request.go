package dto

type CreateEventRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date"`
	ImageURL      string `json:"image_url"`
	TotalCapacity int    `json:"total_capacity" binding:"required,gt=0"`
	TicketPrice   string `json:"ticket_price" binding:"required"`
	IsPublished   bool   `json:"is_published"`
}

type UpdateEventRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	ImageURL      *string `json:"image_url"`
	TotalCapacity *int    `json:"total_capacity"`
	TicketPrice   *string `json:"ticket_price"`
	IsPublished   *bool   `json:"is_published"`
}

type CreateOrderRequest struct {
	EventID       string `json:"event_id" binding:"required,uuid"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type ProcessPaymentRequest struct {
	CardNumber   string `json:"card_number"`
	CardExpMonth int    `json:"card_exp_month"`
	CardExpYear  int    `json:"card_exp_year"`
	CardCVC      string `json:"card_cvc"`
	WalletEmail  string `json:"paypal_email"`
}

type RegisterRequest struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
