package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id, actorID string, input domain.EventInput) (*domain.Event, error)
	CancelEvent(ctx context.Context, id, actorID string) (*domain.Event, error)
	ReopenEvent(ctx context.Context, id, actorID string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, f domain.EventFilter) (*domain.EventListing, error)
}

type BookingSvc interface {
	Book(ctx context.Context, in domain.BookInput) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, actorID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type CommentSvc interface {
	Add(ctx context.Context, eventID, userID, body string) (*domain.Comment, error)
	List(ctx context.Context, eventID string) ([]*domain.Comment, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
	commentService CommentSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, userService UserSvc, commentService CommentSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
		commentService: commentService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toEventInput(req.EventRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		OwnerID:    req.UserID,
		EventInput: input,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toEventInput(req.EventRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req.UserID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	h.changeEventState(c, h.eventService.CancelEvent)
}

func (h *Handler) ReopenEvent(c *ginext.Context) {
	h.changeEventState(c, h.eventService.ReopenEvent)
}

func (h *Handler) changeEventState(c *ginext.Context, change func(ctx context.Context, id, actorID string) (*domain.Event, error)) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := change(c.Request.Context(), eventID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

// ListEvents accepts optional q and category query parameters.
func (h *Handler) ListEvents(c *ginext.Context) {
	listing, err := h.eventService.List(c.Request.Context(), domain.EventFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(listing))
}

// Orders

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		h.handleError(c, err)
		return
	}

	order, err := h.bookingService.Book(c.Request.Context(), domain.BookInput{
		EventID:  eventID,
		UserID:   req.UserID,
		Tier:     tier,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) CancelOrder(c *ginext.Context) {
	orderID, ok := pathID(c, "id", "invalid order id")
	if !ok {
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.bookingService.Cancel(c.Request.Context(), orderID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) GetUserOrders(c *ginext.Context) {
	userID, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	orders, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// Comments

func (h *Handler) AddComment(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), eventID, req.UserID, req.Body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *Handler) ListComments(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, dto.ToCommentResponse(cm))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
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

func pathID(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func toEventInput(req dto.EventRequest) (domain.EventInput, error) {
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return domain.EventInput{}, errors.New("invalid starts_at format, expected RFC3339")
	}

	var endsAt *time.Time
	if req.EndsAt != "" {
		t, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			return domain.EventInput{}, errors.New("invalid ends_at format, expected RFC3339")
		}
		t = t.UTC()
		endsAt = &t
	}

	return domain.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Category:    req.Category,
		StartsAt:    startsAt.UTC(),
		EndsAt:      endsAt,
		General:     domain.TierSpec{PriceCents: req.General.PriceCents, Capacity: req.General.Capacity},
		VIP:         domain.TierSpec{PriceCents: req.VIP.PriceCents, Capacity: req.VIP.Capacity},
	}, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var capErr *domain.CapacityExceededError
	switch {
	case errors.As(err, &capErr):
		remaining := capErr.Remaining
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:     fmt.Sprintf("only %d %s tickets remaining", remaining, capErr.Tier),
			Remaining: &remaining,
		})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingUnavailable),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
