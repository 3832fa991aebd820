package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/handler/dto"
	"github.com/stpnv0/RidePooler/internal/middleware"
)

type MatcherSvc interface {
	Submit(ctx context.Context, input domain.SubmitBookingInput) (*domain.Booking, error)
	Status(ctx context.Context, accountID, bookingID string) (*domain.Booking, error)
	Cancel(ctx context.Context, accountID, bookingID string) error
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error)
	GetCarpool(ctx context.Context, id string) (*domain.Carpool, error)
}

type AccountSvc interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.Account, *domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Account, *domain.Session, error)
	SignOut(ctx context.Context, token string) error
	UpdateSalary(ctx context.Context, accountID string, salary int64) error
}

type Handler struct {
	matcherService MatcherSvc
	accountService AccountSvc
}

func NewHandler(matcherService MatcherSvc, accountService AccountSvc) *Handler {
	return &Handler{
		matcherService: matcherService,
		accountService: accountService,
	}
}

// Accounts

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SignUpInput{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		Salary:         req.Salary,
		TelegramChatID: req.TelegramChatID,
	}

	account, session, err := h.accountService.SignUp(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(account, session))
}

func (h *Handler) SignIn(c *ginext.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, session, err := h.accountService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(account, session))
}

func (h *Handler) SignOut(c *ginext.Context) {
	token := c.GetString(middleware.SessionTokenKey)

	if err := h.accountService.SignOut(c.Request.Context(), token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "signed out"})
}

func (h *Handler) UpdateSalary(c *ginext.Context) {
	var req dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	accountID := c.GetString(middleware.AccountIDKey)
	if err := h.accountService.UpdateSalary(c.Request.Context(), accountID, req.NewSalary); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Bookings

func (h *Handler) SubmitBooking(c *ginext.Context) {
	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SubmitBookingInput{
		AccountID:   c.GetString(middleware.AccountIDKey),
		Pickup:      domain.Coordinate{Lat: req.PickupLat, Lon: req.PickupLon},
		Destination: domain.Coordinate{Lat: req.DestLat, Lon: req.DestLon},
	}
	if req.LifetimeSeconds > 0 {
		input.ExpiresAt = time.Now().UTC().Add(time.Duration(req.LifetimeSeconds) * time.Second)
	}

	booking, err := h.matcherService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBookingStatus(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	accountID := c.GetString(middleware.AccountIDKey)
	booking, err := h.matcherService.Status(c.Request.Context(), accountID, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingStatusResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	accountID := c.GetString(middleware.AccountIDKey)
	if err := h.matcherService.Cancel(c.Request.Context(), accountID, bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	accountID := c.GetString(middleware.AccountIDKey)

	bookings, err := h.matcherService.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Carpools

func (h *Handler) GetCarpool(c *ginext.Context) {
	carpoolID := c.Param("id")
	if _, err := uuid.Parse(carpoolID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid carpool id"})
		return
	}

	carpool, err := h.matcherService.GetCarpool(c.Request.Context(), carpoolID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarpoolResponse(carpool))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidBooking):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCarpoolNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrActiveBookingExists),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrBookingExpired),
		errors.Is(err, domain.ErrCarpoolFull),
		errors.Is(err, domain.ErrCarpoolClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
