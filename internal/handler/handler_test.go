package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/handler/dto"
	hmocks "github.com/Jairobuifranco/A2-Group17/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testDeps struct {
	events   *hmocks.MockEventSvc
	bookings *hmocks.MockBookingSvc
	users    *hmocks.MockUserSvc
	comments *hmocks.MockCommentSvc
}

func setupRouter(t *testing.T) (testDeps, http.Handler) {
	t.Helper()
	d := testDeps{
		events:   hmocks.NewMockEventSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		comments: hmocks.NewMockCommentSvc(t),
	}

	h := NewHandler(d.events, d.bookings, d.users, d.comments)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.POST("/events/:id/reopen", h.ReopenEvent)
		api.POST("/events/:id/orders", h.BookEvent)
		api.POST("/orders/:id/cancel", h.CancelOrder)
		api.GET("/events/:id/comments", h.ListComments)
		api.POST("/events/:id/comments", h.AddComment)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/orders", h.GetUserOrders)
	}

	return d, r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:        uuid.New().String(),
		OwnerID:   uuid.New().String(),
		Title:     "Concert",
		Venue:     "Arena",
		StartsAt:  time.Now().Add(24 * time.Hour),
		General:   domain.TierSpec{PriceCents: 5000, Capacity: 100},
		VIP:       domain.TierSpec{PriceCents: 15000, Capacity: 10},
		Status:    domain.EventStatusOpen,
		CreatedAt: time.Now(),
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	d, r := setupRouter(t)

	event := sampleEvent()
	startsAt := event.StartsAt.UTC().Truncate(time.Second)

	d.events.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.OwnerID == event.OwnerID &&
			in.StartsAt.Equal(startsAt) &&
			in.General.Capacity == 100 &&
			in.VIP.PriceCents == 15000 &&
			in.Category == "music"
	})).Return(event, nil)

	w := do(r, http.MethodPost, "/api/events", ginext.H{
		"user_id":   event.OwnerID,
		"title":     "Concert",
		"venue":     "Arena",
		"category":  "music",
		"starts_at": startsAt.Format(time.RFC3339),
		"general":   ginext.H{"price_cents": 5000, "capacity": 100},
		"vip":       ginext.H{"price_cents": 15000, "capacity": 10},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Title)
	assert.Equal(t, "Open", resp.Status)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":""}`},
		{"missing owner", `{"title":"X","venue":"Y","starts_at":"2030-01-01T10:00:00Z"}`},
		{"invalid date", fmt.Sprintf(`{"user_id":"%s","title":"X","venue":"Y","starts_at":"tomorrow"}`, uuid.New())},
		{"negative capacity", fmt.Sprintf(`{"user_id":"%s","title":"X","venue":"Y","starts_at":"2030-01-01T10:00:00Z","vip":{"capacity":-1}}`, uuid.New())},
		{"category too long", fmt.Sprintf(`{"user_id":"%s","title":"X","venue":"Y","starts_at":"2030-01-01T10:00:00Z","category":"%s"}`, uuid.New(), strings.Repeat("c", 61))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t)

			w := do(r, http.MethodPost, "/api/events", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_CreateEvent_ValidationFromService(t *testing.T) {
	d, r := setupRouter(t)

	d.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: at least one tier needs capacity", domain.ErrValidation))

	w := do(r, http.MethodPost, "/api/events", ginext.H{
		"user_id": uuid.New().String(), "title": "X", "venue": "Y", "starts_at": "2030-01-01T10:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least one tier")
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	actor := uuid.New().String()
	d.events.EXPECT().UpdateEvent(mock.Anything, eventID, actor, mock.Anything).
		Return(nil, domain.ErrForbidden)

	w := do(r, http.MethodPut, "/api/events/"+eventID, ginext.H{
		"user_id": actor, "title": "X", "venue": "Y", "starts_at": "2030-01-01T10:00:00Z",
		"general": ginext.H{"capacity": 10},
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelEvent_Success(t *testing.T) {
	d, r := setupRouter(t)

	event := sampleEvent()
	event.Status = domain.EventStatusCancelled
	d.events.EXPECT().CancelEvent(mock.Anything, event.ID, event.OwnerID).Return(event, nil)

	w := do(r, http.MethodPost, "/api/events/"+event.ID+"/cancel", ginext.H{"user_id": event.OwnerID})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Cancelled"`)
}

func TestHandler_ReopenEvent_InvalidState(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	actor := uuid.New().String()
	d.events.EXPECT().ReopenEvent(mock.Anything, eventID, actor).Return(nil, domain.ErrInvalidState)

	w := do(r, http.MethodPost, "/api/events/"+eventID+"/reopen", ginext.H{"user_id": actor})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	d, r := setupRouter(t)

	event := sampleEvent()
	details := &domain.EventDetails{
		EventSummary: domain.EventSummary{
			Event: *event,
			Availability: domain.Availability{
				Sold:           domain.TierCounts{General: 100, VIP: 4},
				Remaining:      domain.TierCounts{General: 0, VIP: 6},
				TotalSold:      104,
				TotalRemaining: 6,
			},
			Status: domain.DisplayOpen,
		},
		Orders:   []domain.Order{{ID: "o1", EventID: event.ID, Tier: domain.TierVIP, Quantity: 4, UnitPriceCents: 15000, Active: true}},
		Comments: []domain.Comment{},
	}

	d.events.EXPECT().GetDetails(mock.Anything, event.ID).Return(details, nil)

	w := do(r, http.MethodGet, "/api/events/"+event.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.TotalRemaining)
	assert.Equal(t, 0, resp.General.Remaining)
	assert.Equal(t, 6, resp.VIP.Remaining)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(60000), resp.Orders[0].TotalCents)
	assert.NotNil(t, resp.Comments)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	d.events.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := do(r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	d, r := setupRouter(t)

	listing := &domain.EventListing{
		Upcoming: []*domain.EventSummary{{Event: *sampleEvent(), Status: domain.DisplaySoldOut}},
		Past:     []*domain.EventSummary{{Event: *sampleEvent(), Status: domain.DisplayExpired}},
	}
	d.events.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(listing, nil)

	w := do(r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Upcoming, 1)
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "Sold Out", resp.Upcoming[0].Status)
	assert.Equal(t, "Expired", resp.Past[0].Status)
}

func TestHandler_ListEvents_Filter(t *testing.T) {
	d, r := setupRouter(t)

	event := sampleEvent()
	event.Category = "music"
	d.events.EXPECT().
		List(mock.Anything, domain.EventFilter{Query: "jazz night", Category: "music"}).
		Return(&domain.EventListing{
			Upcoming: []*domain.EventSummary{{Event: *event, Status: domain.DisplayOpen}},
		}, nil)

	w := do(r, http.MethodGet, "/api/events?q=jazz+night&category=music", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "music", resp.Upcoming[0].Category)
	assert.NotNil(t, resp.Past)
	assert.Empty(t, resp.Past)
}

func TestHandler_ListEvents_InternalError(t *testing.T) {
	d, r := setupRouter(t)

	d.events.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

// --- Orders ---

func TestHandler_BookEvent_Success(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	order := &domain.Order{
		ID: uuid.New().String(), EventID: eventID, UserID: userID,
		Tier: domain.TierGeneral, Quantity: 2, UnitPriceCents: 5000, Active: true, CreatedAt: time.Now(),
	}

	d.bookings.EXPECT().Book(mock.Anything, domain.BookInput{
		EventID: eventID, UserID: userID, Tier: domain.TierGeneral, Quantity: 2,
	}).Return(order, nil)

	w := do(r, http.MethodPost, "/api/events/"+eventID+"/orders", ginext.H{
		"user_id": userID, "tier": "general", "quantity": 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10000), resp.TotalCents)
	assert.True(t, resp.Active)
}

func TestHandler_BookEvent_BadRequest(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name string
		body ginext.H
	}{
		{"unknown tier", ginext.H{"user_id": userID, "tier": "balcony", "quantity": 1}},
		{"zero quantity", ginext.H{"user_id": userID, "tier": "vip", "quantity": 0}},
		{"negative quantity", ginext.H{"user_id": userID, "tier": "vip", "quantity": -1}},
		{"bad user id", ginext.H{"user_id": "bob", "tier": "vip", "quantity": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t)

			w := do(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_BookEvent_UnknownTierNeverReachesService(t *testing.T) {
	d, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/orders", ginext.H{
		"user_id": uuid.New().String(), "tier": "VIP", "quantity": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown ticket tier")
	d.bookings.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
}

func TestHandler_BookEvent_CapacityExceeded(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("book: %w", &domain.CapacityExceededError{Tier: domain.TierVIP, Requested: 5, Remaining: 3}))

	w := do(r, http.MethodPost, "/api/events/"+eventID+"/orders", ginext.H{
		"user_id": uuid.New().String(), "tier": "vip", "quantity": 5,
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Remaining)
	assert.Equal(t, 3, *resp.Remaining)
	assert.Contains(t, resp.Error, "3 vip tickets remaining")
}

func TestHandler_BookEvent_Unavailable(t *testing.T) {
	d, r := setupRouter(t)

	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: event is Sold Out", domain.ErrBookingUnavailable))

	w := do(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/orders", ginext.H{
		"user_id": uuid.New().String(), "tier": "general", "quantity": 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Remaining)
}

func TestHandler_CancelOrder(t *testing.T) {
	orderID := uuid.New().String()
	actor := uuid.New().String()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusOK},
		{"not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := setupRouter(t)

			var order *domain.Order
			if tt.err == nil {
				now := time.Now()
				order = &domain.Order{ID: orderID, Tier: domain.TierGeneral, Quantity: 1, CancelledAt: &now}
			}
			d.bookings.EXPECT().Cancel(mock.Anything, orderID, actor).Return(order, tt.err)

			w := do(r, http.MethodPost, "/api/orders/"+orderID+"/cancel", ginext.H{"user_id": actor})

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_GetUserOrders_Success(t *testing.T) {
	d, r := setupRouter(t)

	userID := uuid.New().String()
	orders := []*domain.Order{
		{ID: "o1", UserID: userID, Tier: domain.TierGeneral, Quantity: 1, Active: true},
		{ID: "o2", UserID: userID, Tier: domain.TierVIP, Quantity: 2},
	}
	d.bookings.EXPECT().ListByUser(mock.Anything, userID).Return(orders, nil)

	w := do(r, http.MethodGet, "/api/users/"+userID+"/orders", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Comments ---

func TestHandler_AddComment_Success(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	d.comments.EXPECT().Add(mock.Anything, eventID, userID, "great lineup").
		Return(&domain.Comment{ID: "c1", EventID: eventID, UserID: userID, Body: "great lineup"}, nil)

	w := do(r, http.MethodPost, "/api/events/"+eventID+"/comments", ginext.H{"user_id": userID, "body": "great lineup"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ListComments_EventNotFound(t *testing.T) {
	d, r := setupRouter(t)

	eventID := uuid.New().String()
	d.comments.EXPECT().List(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := do(r, http.MethodGet, "/api/events/"+eventID+"/comments", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	d, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()}
	d.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Username: "alice", Email: "alice@example.com"}).
		Return(user, nil)

	w := do(r, http.MethodPost, "/api/users", ginext.H{"username": "alice", "email": "alice@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_InvalidEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/users", ginext.H{"username": "alice", "email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	d, r := setupRouter(t)

	d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := do(r, http.MethodPost, "/api/users", ginext.H{"username": "alice"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	d, r := setupRouter(t)

	d.users.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1", Username: "alice"}}, nil)

	w := do(r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d, r := setupRouter(t)

		userID := uuid.New().String()
		d.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID, Username: "bob"}, nil)

		w := do(r, http.MethodGet, "/api/users/"+userID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"bob"`)
	})

	t.Run("not found", func(t *testing.T) {
		d, r := setupRouter(t)

		userID := uuid.New().String()
		d.users.EXPECT().GetByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

		w := do(r, http.MethodGet, "/api/users/"+userID, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
