package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gudang-gateway/internal/domain"
)

type itemRequest struct {
	Name           string `json:"name" binding:"required"`
	UnitPrice      int64  `json:"unitPrice"`
	QuantityOnHand int    `json:"quantityOnHand"`
	CategoryID     int64  `json:"categoryId"`
	SupplierID     int64  `json:"supplierId"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"`
}

func (r itemRequest) toDomain() domain.StockItem {
	return domain.StockItem{
		Name:           r.Name,
		UnitPrice:      r.UnitPrice,
		QuantityOnHand: r.QuantityOnHand,
		CategoryID:     r.CategoryID,
		SupplierID:     r.SupplierID,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
	}
}

func listItemsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.Query("search"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func createItemHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "item name required")
			return
		}
		item, err := svc.Create(c.Request.Context(), req.toDomain())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func updateItemHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "item name required")
			return
		}
		item, err := svc.Update(c.Request.Context(), id, req.toDomain())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deleteItemHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
