package httpserver

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"gudang-gateway/internal/domain"
)

// writeError maps an error to one HTTP response. Every engine fault yields
// exactly one response; nothing propagates past this boundary unhandled.
func writeError(c *gin.Context, err error) {
	var checkout *domain.CheckoutError
	if errors.As(err, &checkout) {
		status := http.StatusBadGateway
		if checkout.Fault.Kind == domain.FaultValidation {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": gin.H{
			"message": "checkout failed",
			"fault":   checkout.Fault.Kind.String(),
			"detail":  checkout.Fault.Detail,
		}})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrItemNotFound):
		respond(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrCheckoutInProgress),
		errors.Is(err, domain.ErrConfirmNotPending):
		respond(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrMissingRecipient):
		respond(c, http.StatusBadRequest, err.Error())
	default:
		var fault *domain.Fault
		if errors.As(err, &fault) {
			switch fault.Kind {
			case domain.FaultValidation:
				respond(c, http.StatusBadRequest, fault.Detail)
			default:
				respond(c, http.StatusBadGateway, fault.Detail)
			}
			return
		}
		respond(c, http.StatusInternalServerError, "internal error")
	}
}

func respond(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message}})
}
