package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/trip"
)

type mockTripUseCase struct {
	trip       *entity.Trip
	tripErr    error
	page       *model.Page[entity.Trip]
	created    *entity.Trip
	lastUserID uint
}

func (m *mockTripUseCase) GetTrip(userID uint, tripID uint) (*entity.Trip, error) {
	m.lastUserID = userID
	return m.trip, m.tripErr
}

func (m *mockTripUseCase) ListTrips(userID uint, page int, size int) (*model.Page[entity.Trip], error) {
	m.lastUserID = userID
	return m.page, nil
}

func (m *mockTripUseCase) CreateTrip(userID uint, dto model.CreateTripDTO) (*entity.Trip, error) {
	m.lastUserID = userID
	return m.created, nil
}

func (m *mockTripUseCase) UpdateTrip(userID uint, tripID uint, dto model.UpdateTripDTO) (*entity.Trip, error) {
	return m.trip, m.tripErr
}

func (m *mockTripUseCase) DeleteTrip(userID uint, tripID uint) error {
	return m.tripErr
}

func newTripTestServer(useCase trip.UseCase) *echo.Echo {
	e := echo.New()
	controller := NewTripController(e.Group(""), useCase)
	controller.InitTripRoutes()
	return e
}

func TestListTripsRequiresUserHeader(t *testing.T) {
	e := newTripTestServer(&mockTripUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListTripsOK(t *testing.T) {
	useCase := &mockTripUseCase{
		page: model.NewPage([]entity.Trip{{ID: 1, Name: "Maghreb"}}, 0, 20, 1),
	}
	e := newTripTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set(UserIDHeader, "10")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(10), useCase.lastUserID)

	var body model.Page[entity.Trip]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.TotalElements)
	require.Len(t, body.Content, 1)
	assert.Equal(t, "Maghreb", body.Content[0].Name)
}

func TestGetTripForbidden(t *testing.T) {
	e := newTripTestServer(&mockTripUseCase{tripErr: trip.ErrNotOwner})

	req := httptest.NewRequest(http.MethodGet, "/trips/1", nil)
	req.Header.Set(UserIDHeader, "11")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateTripValidatesName(t *testing.T) {
	e := newTripTestServer(&mockTripUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(UserIDHeader, "10")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTripOK(t *testing.T) {
	useCase := &mockTripUseCase{created: &entity.Trip{ID: 1, UserID: 10, Name: "Italie du nord"}}
	e := newTripTestServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(`{"name":"Italie du nord"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(UserIDHeader, "10")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteTripNotFound(t *testing.T) {
	e := newTripTestServer(&mockTripUseCase{tripErr: trip.ErrTripNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/trips/5", nil)
	req.Header.Set(UserIDHeader, "10")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
