package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	canteenHandler "github.com/vasiliy-maslov/canteen-service/internal/handler/http"
	"github.com/vasiliy-maslov/canteen-service/internal/menu"
)

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) ListItems(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

func (m *MockMenuService) CreateItem(ctx context.Context, input menu.ItemInput) (*menu.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuService) UpdateItem(ctx context.Context, id uuid.UUID, input menu.ItemInput) (*menu.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newMenuRouter(svc menu.Service) chi.Router {
	router := chi.NewRouter()
	canteenHandler.NewMenuHandler(svc).RegisterRoutes(router)
	return router
}

func TestMenuHandler_handleCreateItem_DefaultsAvailable(t *testing.T) {
	mockService := new(MockMenuService)
	router := newMenuRouter(mockService)

	mockService.On("CreateItem", mock.Anything, mock.MatchedBy(func(in menu.ItemInput) bool {
		return in.Title == "Idli" && in.Price == 25 && in.Available && in.Description == nil
	})).Return(&menu.Item{ID: uuid.Must(uuid.NewV4()), Title: "Idli", Price: 25, Available: true}, nil).Once()

	rr := serve(router, http.MethodPost, "/api/menu", `{"title":"Idli","price":25}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	mockService.AssertExpectations(t)
}

func TestMenuHandler_handleCreateItem_ZeroPriceIsAccepted(t *testing.T) {
	mockService := new(MockMenuService)
	router := newMenuRouter(mockService)

	mockService.On("CreateItem", mock.Anything, mock.MatchedBy(func(in menu.ItemInput) bool {
		return in.Price == 0 && !in.Available
	})).Return(&menu.Item{ID: uuid.Must(uuid.NewV4()), Title: "Water"}, nil).Once()

	rr := serve(router, http.MethodPost, "/api/menu", `{"title":"Water","price":0,"available":false}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	mockService.AssertExpectations(t)
}

func TestMenuHandler_handleCreateItem_Validation(t *testing.T) {
	mockService := new(MockMenuService)
	router := newMenuRouter(mockService)

	rr := serve(router, http.MethodPost, "/api/menu", `{"price":-5}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var resp canteenHandler.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.ElementsMatch(t, []string{
		"Field 'title' is required",
		"Field 'price' must be greater than or equal to 0",
	}, resp.Details)
	mockService.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestMenuHandler_handleListItems(t *testing.T) {
	mockService := new(MockMenuService)
	router := newMenuRouter(mockService)

	items := []menu.Item{{ID: uuid.Must(uuid.NewV4()), Title: "Dosa", Price: 40, Available: true}}
	mockService.On("ListItems", mock.Anything).Return(items, nil).Once()

	rr := serve(router, http.MethodGet, "/api/menu", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []menu.Item
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Dosa", got[0].Title)
}

func TestMenuHandler_handleUpdateItem(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	t.Run("success", func(t *testing.T) {
		mockService := new(MockMenuService)
		router := newMenuRouter(mockService)
		mockService.On("UpdateItem", mock.Anything, id, mock.AnythingOfType("menu.ItemInput")).
			Return(&menu.Item{ID: id, Title: "Dosa", Price: 45}, nil).Once()

		rr := serve(router, http.MethodPut, "/api/menu/"+id.String(), `{"title":"Dosa","price":45}`)

		require.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("not_found", func(t *testing.T) {
		mockService := new(MockMenuService)
		router := newMenuRouter(mockService)
		mockService.On("UpdateItem", mock.Anything, id, mock.Anything).Return(nil, menu.ErrItemNotFound).Once()

		rr := serve(router, http.MethodPut, "/api/menu/"+id.String(), `{"title":"Dosa","price":45}`)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Item not found", decodeError(t, rr))
	})
}

func TestMenuHandler_handleDeleteItem(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	t.Run("success", func(t *testing.T) {
		mockService := new(MockMenuService)
		router := newMenuRouter(mockService)
		mockService.On("DeleteItem", mock.Anything, id).Return(nil).Once()

		rr := serve(router, http.MethodDelete, "/api/menu/"+id.String(), "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	})

	t.Run("malformed_id", func(t *testing.T) {
		mockService := new(MockMenuService)
		router := newMenuRouter(mockService)

		rr := serve(router, http.MethodDelete, "/api/menu/xyz", "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}
