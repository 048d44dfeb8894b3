package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gudang-gateway/internal/domain"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func listCategoriesHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func createCategoryHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "category name required")
			return
		}
		created, err := svc.Create(c.Request.Context(), req.Name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateCategoryHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "category name required")
			return
		}
		updated, err := svc.Update(c.Request.Context(), id, req.Name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteCategoryHandler(svc categoryService) gin.HandlerFunc {
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

type supplierRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

func (r supplierRequest) toDomain() domain.Supplier {
	return domain.Supplier{
		CompanyName: r.CompanyName,
		Address:     r.Address,
		Phone:       r.Phone,
	}
}

func listSuppliersHandler(svc supplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		suppliers, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
	}
}

func createSupplierHandler(svc supplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req supplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "supplier company name required")
			return
		}
		created, err := svc.Create(c.Request.Context(), req.toDomain())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateSupplierHandler(svc supplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req supplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, http.StatusBadRequest, "supplier company name required")
			return
		}
		updated, err := svc.Update(c.Request.Context(), id, req.toDomain())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteSupplierHandler(svc supplierService) gin.HandlerFunc {
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
