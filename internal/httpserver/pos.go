package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gudang-gateway/internal/domain"
	"gudang-gateway/internal/pos"
)

// cartView is what the presentation shell reads: lines, derived total, the
// checkout state and an optional human message.
type cartView struct {
	Lines     []domain.CartLine `json:"lines"`
	Total     int64             `json:"total"`
	Recipient string            `json:"recipient,omitempty"`
	State     string            `json:"state"`
	Message   string            `json:"message,omitempty"`
}

func viewOf(engine *pos.Engine, message string) cartView {
	return cartView{
		Lines:     engine.Lines(),
		Total:     engine.Total(),
		Recipient: engine.Recipient(),
		State:     engine.State().String(),
		Message:   message,
	}
}

func getCartHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			view = viewOf(engine, "")
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

type addItemRequest struct {
	ItemID int64 `json:"itemId" binding:"required"`
}

func addItemHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "itemId required")
			return
		}
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			if err := engine.AddItem(req.ItemID); err != nil {
				return err
			}
			message := ""
			for _, line := range engine.Lines() {
				if line.ItemID == req.ItemID {
					message = fmt.Sprintf("%s added to cart", line.Name)
					break
				}
			}
			view = viewOf(engine, message)
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

type adjustItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func adjustItemHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req adjustItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "delta required")
			return
		}
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			if err := engine.AdjustQuantity(id, req.Delta); err != nil {
				return err
			}
			view = viewOf(engine, "")
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func removeItemHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			engine.RemoveItem(id)
			view = viewOf(engine, "")
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

type beginCheckoutRequest struct {
	Recipient string `json:"recipient"`
}

func beginCheckoutHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req beginCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "invalid request body")
			return
		}
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			if err := engine.BeginCheckout(req.Recipient); err != nil {
				return err
			}
			view = viewOf(engine, "")
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func confirmCheckoutHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			if err := engine.ConfirmCheckout(c.Request.Context()); err != nil {
				return err
			}
			view = viewOf(engine, "stock released")
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func cancelCheckoutHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view cartView
		err := sessions.Do(c.Request.Context(), clientToken(c), func(engine *pos.Engine) error {
			if err := engine.CancelCheckout(); err != nil {
				return err
			}
			view = viewOf(engine, "")
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func releaseSessionHandler(sessions posSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Release(clientToken(c))
		c.Status(http.StatusNoContent)
	}
}
