package api

import (
	"context"       // Request scoped cancellation
	"encoding/json" // Numeric form values
	"net/http"      // HTTP status codes
	"strconv"       // Path parsing
	"time"          // Log timestamps

	"product_catalog/internal/domain"     // Importing domain models
	"product_catalog/internal/middleware" // Session token access

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Price parsing
	"github.com/sirupsen/logrus"    // Logging library
)

// ProductService is the ownership-scoped product API used by the handlers
type ProductService interface {
	ListMine(ctx context.Context, session string) ([]domain.Product, error)
	CreateMine(ctx context.Context, session string, fields domain.ProductFields) (*domain.Product, error)
	ViewOne(ctx context.Context, session string, id uint) (*domain.Product, error)
	EditableOne(ctx context.Context, session string, id uint) (*domain.Product, error)
	EditMine(ctx context.Context, session string, id uint, fields domain.ProductFields) (*domain.Product, error)
	DeleteMine(ctx context.Context, session string, id uint) error
}

// ProductRequest is the body of create and edit, as JSON or the product form fields
type ProductRequest struct {
	Name        string      `form:"nome" json:"name" binding:"required"`   // Name must be provided
	Description string      `form:"descricao" json:"description"`          // Optional description
	Price       json.Number `form:"preco" json:"price" binding:"required"` // Decimal string or JSON number
}

// fields converts the request into validated domain values
func (r ProductRequest) fields() (domain.ProductFields, error) {
	price, err := decimal.NewFromString(r.Price.String())
	if err != nil {
		return domain.ProductFields{}, domain.ErrInvalidProduct
	}
	f := domain.ProductFields{Name: r.Name, Description: r.Description, Price: price}
	return f, f.Validate()
}

// bindProduct binds and converts the request body, answering 400 on failure
func bindProduct(c *gin.Context, cookie CookieSettings) (domain.ProductFields, bool) {
	var req ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, cookie, domain.ErrInvalidProduct, "save")
		return domain.ProductFields{}, false
	}
	fields, err := req.fields()
	if err != nil {
		respondError(c, cookie, err, "save")
		return domain.ProductFields{}, false
	}
	return fields, true
}

// productID parses the :id path parameter
func productID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListProductsHandler returns the caller's products
func ListProductsHandler(products ProductService, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.ListMine(c.Request.Context(), middleware.SessionToken(c))
		if err != nil {
			respondError(c, cookie, err, "list")
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

// CreateProductHandler adds a product owned by the caller
func CreateProductHandler(products ProductService, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := bindProduct(c, cookie)
		if !ok {
			return
		}
		p, err := products.CreateMine(c.Request.Context(), middleware.SessionToken(c), fields)
		if err != nil {
			respondError(c, cookie, err, "create")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    p.UserID,                        // Owner
			"product_id": p.ID,                            // New product
			"price":      p.Price.String(),                // Price
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Product created")
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully!", "product": p})
	}
}

// ViewProductHandler returns one of the caller's products
func ViewProductHandler(products ProductService, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			respondError(c, cookie, domain.ErrNotFoundOrForbidden, "view")
			return
		}
		p, err := products.ViewOne(c.Request.Context(), middleware.SessionToken(c), id)
		if err != nil {
			respondError(c, cookie, err, "view")
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}

// EditFormHandler returns the product the edit form starts from
func EditFormHandler(products ProductService, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			respondError(c, cookie, domain.ErrNotFound, "edit")
			return
		}
		p, err := products.EditableOne(c.Request.Context(), middleware.SessionToken(c), id)
		if err != nil {
			respondError(c, cookie, err, "edit")
			return
		}
		c.JSON(http.StatusOK, gin.H{"form": "edit", "product": p})
	}
}

// EditProductHandler applies an edit to one of the caller's products
func EditProductHandler(products ProductService, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			respondError(c, cookie, domain.ErrNotFound, "edit")
			return
		}
		// Ownership is settled before the body is looked at
		if _, err := products.EditableOne(c.Request.Context(), middleware.SessionToken(c), id); err != nil {
			respondError(c, cookie, err, "edit")
			return
		}
		fields, ok := bindProduct(c, cookie)
		if !ok {
			return
		}
		p, err := products.EditMine(c.Request.Context(), middleware.SessionToken(c), id, fields)
		if err != nil {
			respondError(c, cookie, err, "edit")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    p.UserID,                        // Owner
			"product_id": p.ID,                            // Edited product
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Product edited")
		c.JSON(http.StatusOK, gin.H{"message": "Product edited successfully!", "product": p, "redirect": listPath})
	}
}

// DeleteProductHandler removes one of the caller's products
func DeleteProductHandler(products ProductService, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			respondError(c, cookie, domain.ErrNotFound, "delete")
			return
		}
		if err := products.DeleteMine(c.Request.Context(), middleware.SessionToken(c), id); err != nil {
			respondError(c, cookie, err, "delete")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    middleware.UserID(c),            // Owner
			"product_id": id,                              // Deleted product
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Product deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!", "redirect": listPath})
	}
}
