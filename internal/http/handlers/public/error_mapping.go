package public

import (
	"errors"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a business error to its API response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrNotAuthenticated, code: response.CodeUnauthorized, msg: "not authenticated"},
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "menu item not found"},
	{target: service.ErrItemUnavailable, code: response.CodeBadRequest, msg: "menu item not available"},
	{target: service.ErrInvalidVariation, code: response.CodeBadRequest, msg: "invalid price variation"},
	{target: service.ErrPricingModeInvalid, code: response.CodeBadRequest, msg: "invalid pricing mode"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "quantity must be at least 1"},
}

var orderSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrNotAuthenticated, code: response.CodeUnauthorized, msg: "not authenticated"},
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrInvalidCartLine, code: response.CodeBadRequest, msg: "cart contains an invalid line"},
	{target: service.ErrMissingDeliveryInfo, code: response.CodeBadRequest, msg: "delivery address and phone are required"},
	{target: service.ErrItemsNoLongerAvailable, code: response.CodeBadRequest, msg: "some items in your cart are no longer available"},
}

var orderFetchErrorRules = []mappedHandlerError{
	{target: service.ErrNotAuthenticated, code: response.CodeUnauthorized, msg: "not authenticated"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
}
