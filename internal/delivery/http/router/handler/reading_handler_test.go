package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"terrasense/internal/delivery/http/middleware"
	"terrasense/internal/delivery/http/validator"
	"terrasense/internal/domain/entity"
	mockUsecase "terrasense/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReadingTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, int64(1))
	c.SetParamNames("sensorId")
	c.SetParamValues("20")

	return c, rec
}

func TestReadingHandler_Add_Success(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)
	uc.EXPECT().
		Add(mock.Anything, int64(1), int64(20), mock.AnythingOfType("*usecase.AddReadingInput")).
		Return(&entity.SensorReading{ID: 100, SensorID: 20, Value: 21.5}, nil)

	c, rec := newReadingTestContext(t, http.MethodPost, "/sensors/20/data", `{"value":21.5}`)
	handler := NewReadingHandler(uc, newTestLogger())

	require.NoError(t, handler.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReadingHandler_Add_EmptyBody(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)

	c, rec := newReadingTestContext(t, http.MethodPost, "/sensors/20/data", "")
	handler := NewReadingHandler(uc, newTestLogger())

	// An empty body leaves the bound input nil; the handler must answer with
	// a client error, never reach the usecase.
	require.NoError(t, handler.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReadingHandler_Add_NullBody(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)

	c, rec := newReadingTestContext(t, http.MethodPost, "/sensors/20/data", `null`)
	handler := NewReadingHandler(uc, newTestLogger())

	require.NoError(t, handler.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReadingHandler_Add_MissingValue(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)

	c, rec := newReadingTestContext(t, http.MethodPost, "/sensors/20/data", `{"timestamp":"2024-06-01T12:00:00Z"}`)
	handler := NewReadingHandler(uc, newTestLogger())

	require.NoError(t, handler.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReadingHandler_List_OrderByPassedThrough(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)
	uc.EXPECT().
		List(mock.Anything, int64(1), int64(20), 10, "asc").
		Return([]*entity.SensorReading{}, nil)

	c, rec := newReadingTestContext(t, http.MethodGet, "/sensors/20/data?limit=10&orderBy=asc", "")
	handler := NewReadingHandler(uc, newTestLogger())

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadingHandler_List_Defaults(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)
	uc.EXPECT().
		List(mock.Anything, int64(1), int64(20), 0, "").
		Return([]*entity.SensorReading{}, nil)

	c, rec := newReadingTestContext(t, http.MethodGet, "/sensors/20/data", "")
	handler := NewReadingHandler(uc, newTestLogger())

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadingHandler_List_InvalidLimit(t *testing.T) {
	uc := mockUsecase.NewMockReadingUsecase(t)

	c, rec := newReadingTestContext(t, http.MethodGet, "/sensors/20/data?limit=abc", "")
	handler := NewReadingHandler(uc, newTestLogger())

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
