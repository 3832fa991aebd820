package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/handler/dto"
	hmocks "github.com/stpnv0/RidePooler/internal/handler/mocks"
	"github.com/stpnv0/RidePooler/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testAccountID = "11111111-1111-1111-1111-111111111111"

func setupRouter(t *testing.T) (*hmocks.MockMatcherSvc, *hmocks.MockAccountSvc, http.Handler) {
	t.Helper()
	matcherSvc := hmocks.NewMockMatcherSvc(t)
	accountSvc := hmocks.NewMockAccountSvc(t)

	h := NewHandler(matcherSvc, accountSvc)

	r := ginext.New("test")
	// Стаб авторизации: кладёт фиксированный аккаунт в контекст.
	fakeAuth := func(c *ginext.Context) {
		c.Set(middleware.AccountIDKey, testAccountID)
		c.Set(middleware.SessionTokenKey, "tok-1")
		c.Next()
	}

	api := r.Group("/api")
	{
		api.POST("/accounts/signup", h.SignUp)
		api.POST("/accounts/signin", h.SignIn)
		api.POST("/accounts/signout", fakeAuth, h.SignOut)
		api.PATCH("/accounts/salary", fakeAuth, h.UpdateSalary)
		api.GET("/accounts/me/bookings", fakeAuth, h.ListMyBookings)
		api.POST("/bookings", fakeAuth, h.SubmitBooking)
		api.GET("/bookings/:id", fakeAuth, h.GetBookingStatus)
		api.DELETE("/bookings/:id", fakeAuth, h.CancelBooking)
		api.GET("/carpools/:id", fakeAuth, h.GetCarpool)
	}

	return matcherSvc, accountSvc, r
}

// --- Accounts ---

func TestHandler_SignUp_Success(t *testing.T) {
	_, accountSvc, r := setupRouter(t)

	account := &domain.Account{
		ID:        uuid.New().String(),
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
	session := &domain.Session{
		Token:     uuid.New().String(),
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	accountSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(account, session, nil)

	body, _ := json.Marshal(dto.SignUpRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Password:  "s3cret",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, session.Token, resp.Token)
	assert.Equal(t, "alice", resp.Account.Username)
}

func TestHandler_SignUp_InvalidBody(t *testing.T) {
	_, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signup", bytes.NewReader([]byte(`{"username":"x"}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	_, accountSvc, r := setupRouter(t)

	accountSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.SignUpRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Password:  "s3cret",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SignIn_WrongPassword(t *testing.T) {
	_, accountSvc, r := setupRouter(t)

	accountSvc.EXPECT().SignIn(mock.Anything, "alice@example.com", "nope").Return(nil, nil, domain.ErrWrongPassword)

	body, _ := json.Marshal(dto.SignInRequest{Email: "alice@example.com", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signin", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SignOut(t *testing.T) {
	_, accountSvc, r := setupRouter(t)

	accountSvc.EXPECT().SignOut(mock.Anything, "tok-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/signout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateSalary(t *testing.T) {
	_, accountSvc, r := setupRouter(t)

	accountSvc.EXPECT().UpdateSalary(mock.Anything, testAccountID, int64(150000)).Return(nil)

	body, _ := json.Marshal(dto.UpdateSalaryRequest{NewSalary: 150000})
	req := httptest.NewRequest(http.MethodPatch, "/api/accounts/salary", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Bookings ---

func TestHandler_SubmitBooking_Success(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	carpoolID := uuid.New().String()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		AccountID:   testAccountID,
		State:       domain.BookingStateAssigned,
		CarpoolID:   &carpoolID,
		Pickup:      domain.Coordinate{Lat: 55.75, Lon: 37.61},
		Destination: domain.Coordinate{Lat: 55.70, Lon: 37.50},
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(10 * time.Minute),
	}

	matcherSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.SubmitBookingRequest{
		PickupLat: 55.75, PickupLon: 37.61,
		DestLat: 55.70, DestLon: 37.50,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "assigned", resp.State)
	require.NotNil(t, resp.CarpoolID)
	assert.Equal(t, carpoolID, *resp.CarpoolID)
}

func TestHandler_SubmitBooking_ActiveBookingExists(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	matcherSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrActiveBookingExists)

	body, _ := json.Marshal(dto.SubmitBookingRequest{
		PickupLat: 55.75, PickupLon: 37.61,
		DestLat: 55.70, DestLon: 37.50,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBookingStatus(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	matcherSvc.EXPECT().Status(mock.Anything, testAccountID, bookingID).Return(&domain.Booking{
		ID:        bookingID,
		AccountID: testAccountID,
		State:     domain.BookingStatePending,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.State)
	assert.Nil(t, resp.CarpoolID)
}

func TestHandler_GetBookingStatus_BadID(t *testing.T) {
	_, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Expired(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	matcherSvc.EXPECT().Cancel(mock.Anything, testAccountID, bookingID).Return(domain.ErrBookingExpired)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	matcherSvc.EXPECT().ListByAccount(mock.Anything, testAccountID).Return([]*domain.Booking{
		{ID: uuid.New().String(), AccountID: testAccountID, State: domain.BookingStateCancelled},
		{ID: uuid.New().String(), AccountID: testAccountID, State: domain.BookingStatePending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/me/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Carpools ---

func TestHandler_GetCarpool(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	carpoolID := uuid.New().String()
	matcherSvc.EXPECT().GetCarpool(mock.Anything, carpoolID).Return(&domain.Carpool{
		ID:          carpoolID,
		State:       domain.CarpoolStateOpen,
		Capacity:    4,
		MemberCount: 2,
		Members:     []string{"b1", "b2"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/carpools/"+carpoolID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CarpoolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "open", resp.State)
	assert.Equal(t, 2, resp.MemberCount)
	assert.Len(t, resp.Members, 2)
}

func TestHandler_GetCarpool_NotFound(t *testing.T) {
	matcherSvc, _, r := setupRouter(t)

	carpoolID := uuid.New().String()
	matcherSvc.EXPECT().GetCarpool(mock.Anything, carpoolID).Return(nil, domain.ErrCarpoolNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/carpools/"+carpoolID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
