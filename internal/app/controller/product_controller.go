package controller

import (
	"errors"
	"net/http"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type ProductRequest struct {
	Name          string `json:"name" binding:"required"`
	SKU           string `json:"sku" binding:"required"`
	Category      string `json:"category"`
	YourPrice     string `json:"your_price" binding:"required"`
	MarketPrice   string `json:"market_price"`
	Image         string `json:"image"`
	StockQuantity int    `json:"stock_quantity"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ListProducts returns the catalog, optionally filtered
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctrl.productService.ListProducts(service.ProductListOptions{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product id")
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a catalog entry
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name, sku and your_price are required")
		return
	}

	product := &model.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		YourPrice:     req.YourPrice,
		MarketPrice:   req.MarketPrice,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
	}

	if err := ctrl.productService.CreateProduct(product); err != nil {
		switch {
		case errors.Is(err, service.ErrSKUExists):
			apperrors.Conflict(c, apperrors.ProductSKUExists, "A product with this SKU already exists")
		case errors.Is(err, service.ErrInvalidPrice):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Price must be a positive amount")
		default:
			log.Error("Failed to create product", err, map[string]interface{}{
				"sku": req.SKU,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created",
		"product": product,
	})
}

// UpdateProduct replaces a catalog entry's fields
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product id")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name, sku and your_price are required")
		return
	}

	product := &model.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		YourPrice:     req.YourPrice,
		MarketPrice:   req.MarketPrice,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
	}
	product.ID = id

	if err := ctrl.productService.UpdateProduct(product); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated",
		"product": product,
	})
}

// AdjustStock applies a signed stock delta
// PUT /api/v1/products/:id/stock
func (ctrl *ProductController) AdjustStock(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product id")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "delta is required")
		return
	}

	product, err := ctrl.productService.AdjustStock(id, req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "adjust stock")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock adjusted",
		"product": product,
	})
}
