package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/the-auction-games/auction-api/internal/auctionerrors"
	engine "github.com/the-auction-games/auction-api/internal/offerEngine"
	"github.com/the-auction-games/auction-api/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrAuctionExists):
		return http.StatusConflict, "auction already exists"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// MapResultToHTTP maps an offer engine result to HTTP status code and message
func MapResultToHTTP(result engine.Result) (int, string) {
	switch result {
	case engine.ResultSuccess:
		return http.StatusCreated, "offer accepted"
	case engine.ResultNotFound:
		return http.StatusNotFound, "auction not found"
	case engine.ResultExpired:
		return http.StatusNotAcceptable, "auction has expired"
	case engine.ResultAlreadyPurchased:
		return http.StatusConflict, "auction already purchased"
	case engine.ResultTooLow:
		return http.StatusConflict, "offer price too low"
	case engine.ResultTooHigh:
		return http.StatusConflict, "offer price too high"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
