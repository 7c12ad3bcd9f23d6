package handler

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

func doRespond(t *testing.T, err error) (int, utils.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/", nil)

	respondError(c, err)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		code     string
	}{
		{"insufficient stock", &utils.InsufficientStockError{ProductID: "p1", Available: 2}, 409, "INSUFFICIENT_STOCK"},
		{"validation", &utils.ValidationError{Field: "phone", Message: "bad"}, 400, "VALIDATION_FAILURE"},
		{"auth required", utils.ErrAuthRequired, 401, "AUTH_REQUIRED"},
		{"session expired", utils.ErrSessionExpired, 401, "SESSION_EXPIRED"},
		{"product not found", utils.ErrProductNotFound, 404, "PRODUCT_NOT_FOUND"},
		{"empty cart", utils.ErrEmptyCart, 400, "EMPTY_CART"},
		{"catalog not loaded", utils.ErrCatalogNotLoaded, 503, "CATALOG_NOT_LOADED"},
		{"payment verification", utils.ErrPaymentVerification, 400, "PAYMENT_VERIFICATION_FAILED"},
		{"network failure", utils.WrapNetwork(errors.New("conn refused")), 502, "NETWORK_FAILURE"},
		{"raw api error", &commerce.APIError{HTTPStatus: 500, Message: "backend blew up"}, 502, "NETWORK_FAILURE"},
		{"unknown", errors.New("surprise"), 500, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doRespond(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestRespondErrorStockMessageCarriesAvailability(t *testing.T) {
	_, body := doRespond(t, &utils.InsufficientStockError{ProductID: "p3", Available: 1})
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Message, "only 1 item(s) available")
}
