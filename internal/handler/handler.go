package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/handler/dto"
)

// PrincipalKey is the context key the auth middleware stores the
// authenticated principal under.
const PrincipalKey = "principal"

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string, principal *domain.Principal) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter, principal *domain.Principal) ([]*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Publish(ctx context.Context, id string) (*domain.Event, error)
	Cancel(ctx context.Context, id string) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type OrderSvc interface {
	Create(ctx context.Context, principal domain.Principal, input domain.CreateOrderInput) (*domain.Order, error)
	GetDetails(ctx context.Context, principal domain.Principal, orderID string) (*domain.OrderDetails, error)
	ListByUser(ctx context.Context, userID string, f domain.OrderFilter) ([]*domain.Order, error)
	ListAll(ctx context.Context, f domain.OrderFilter) ([]*domain.Order, error)
	ProcessPayment(ctx context.Context, principal domain.Principal, orderID string, details domain.PaymentDetails) (*domain.PaymentResult, error)
	Cancel(ctx context.Context, principal domain.Principal, orderID string) (*domain.Order, error)
	Refund(ctx context.Context, orderID string) (*domain.Order, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

type Handler struct {
	eventService EventSvc
	orderService OrderSvc
	userService  UserSvc
}

func NewHandler(eventService EventSvc, orderService OrderSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService: eventService,
		orderService: orderService,
		userService:  userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
		return
	}

	var endDate time.Time
	if req.EndDate != "" {
		if endDate, err = time.Parse(time.RFC3339, req.EndDate); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
			return
		}
	}

	price, err := decimal.NewFromString(req.TicketPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket_price"})
		return
	}

	input := domain.CreateEventInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDate:     startDate,
		EndDate:       endDate,
		ImageURL:      req.ImageURL,
		TotalCapacity: req.TotalCapacity,
		TicketPrice:   price,
		IsPublished:   req.IsPublished,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id, principalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	f := domain.EventFilter{
		Location: c.Query("location"),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}
	if v := c.Query("upcoming"); v != "" {
		upcoming := v == "true"
		f.Upcoming = &upcoming
	}

	events, err := h.eventService.List(c.Request.Context(), f, principalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toUpdateEventInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) PublishEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Publish(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Orders

func (h *Handler) CreateOrder(c *ginext.Context) {
	principal := principalFrom(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), *principal, domain.CreateOrderInput{
		EventID:       req.EventID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	principal := principalFrom(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	details, err := h.orderService.GetDetails(c.Request.Context(), *principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderDetailsResponse(details))
}

func (h *Handler) ListMyOrders(c *ginext.Context) {
	principal := principalFrom(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	f, err := orderFilterFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	orders, err := h.orderService.ListByUser(c.Request.Context(), principal.UserID, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) ListAllOrders(c *ginext.Context) {
	f, err := orderFilterFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	orders, err := h.orderService.ListAll(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) ProcessPayment(c *ginext.Context) {
	principal := principalFrom(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.orderService.ProcessPayment(c.Request.Context(), *principal, id, domain.PaymentDetails{
		CardNumber:   req.CardNumber,
		CardExpMonth: req.CardExpMonth,
		CardExpYear:  req.CardExpYear,
		CardCVC:      req.CardCVC,
		WalletEmail:  req.WalletEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(result))
}

func (h *Handler) CancelOrder(c *ginext.Context) {
	principal := principalFrom(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), *principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) RefundOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.Refund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// Users

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.CreateUserInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, accessToken, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        dto.ToUserResponse(user),
	})
}

func (h *Handler) Me(c *ginext.Context) {
	principal := principalFrom(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context(), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInventoryExhausted),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrAlreadyCanceled),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCapacityViolation),
		errors.Is(err, domain.ErrEventHasOrders):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrEventCanceled):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func principalFrom(c *ginext.Context) *domain.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, ok := v.(domain.Principal)
	if !ok {
		return nil
	}
	return &p
}

func orderFilterFrom(c *ginext.Context) (domain.OrderFilter, error) {
	f := domain.OrderFilter{
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}
	if v := c.Query("status"); v != "" {
		status := domain.OrderStatus(v)
		if !status.Valid() {
			return f, errors.New("invalid status filter")
		}
		f.Status = &status
	}
	return f, nil
}

func toOrderResponses(orders []*domain.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	return resp
}

func toUpdateEventInput(req dto.UpdateEventRequest) (domain.UpdateEventInput, error) {
	input := domain.UpdateEventInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		TotalCapacity: req.TotalCapacity,
		IsPublished:   req.IsPublished,
	}

	if req.StartDate != nil {
		t, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return input, errors.New("invalid start_date format, expected RFC3339")
		}
		input.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return input, errors.New("invalid end_date format, expected RFC3339")
		}
		input.EndDate = &t
	}
	if req.TicketPrice != nil {
		price, err := decimal.NewFromString(*req.TicketPrice)
		if err != nil {
			return input, errors.New("invalid ticket_price")
		}
		input.TicketPrice = &price
	}

	return input, nil
}

func queryInt(c *ginext.Context, name string) int {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
