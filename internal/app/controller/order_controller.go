package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type CreateOrderRequest struct {
	DeliveredOn string `json:"delivered_on"`
}

type ReviewOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

type PayOrderRequest struct {
	Method string `json:"method"`
}

// CreateOrder places an order from the current cart
// POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	order, err := ctrl.orderService.CreateFromCart(c.Request.Context(), userID, req.DeliveredOn)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			apperrors.BadRequest(c, apperrors.OrderCartEmpty, "Cart is empty")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "A product in the cart no longer exists")
		case errors.Is(err, service.ErrInsufficientStock):
			apperrors.Conflict(c, apperrors.OrderInsufficientStock, "Insufficient stock for a product in the cart")
		default:
			log.Error("Failed to create order", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create order")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// ListOrders returns orders, optionally filtered by status; non-admin roles
// outside the approval sections only see their own
// GET /api/v1/orders
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	status := model.OrderStatus(c.Query("status"))

	// purchasing managers work their own queue; reviewer roles see all
	filterUserID := uint(0)
	if role == model.RolePurchasingManager {
		filterUserID = userID
	}
	if mineOnly, _ := strconv.ParseBool(c.Query("mine")); mineOnly {
		filterUserID = userID
	}

	orders, err := ctrl.orderService.GetOrders(status, filterUserID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns one order with its items
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	orderID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid order id")
		return
	}

	order, err := ctrl.orderService.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ReviewOrder approves or rejects a pending order
// PUT /api/v1/orders/:id/status
func (ctrl *OrderController) ReviewOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid order id")
		return
	}

	var req ReviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "status is required")
		return
	}

	order, err := ctrl.orderService.SetStatus(orderID, reviewerID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "Status must be approved or rejected")
		case errors.Is(err, service.ErrOrderAlreadyDecided):
			apperrors.Conflict(c, apperrors.OrderAlreadyDecided, "Order has already been approved or rejected")
		default:
			log.Error("Failed to review order", err, map[string]interface{}{
				"order_id": orderID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order " + req.Status,
		"order":   order,
	})
}

// PayOrder records payment against an approved order
// PUT /api/v1/orders/:id/payment
func (ctrl *OrderController) PayOrder(c *gin.Context) {
	orderID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid order id")
		return
	}

	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}
	if req.Method == "" {
		req.Method = "bank_transfer"
	}

	order, err := ctrl.orderService.MarkPaid(orderID, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		case errors.Is(err, service.ErrOrderNotApproved):
			apperrors.BadRequest(c, apperrors.OrderPaymentInvalid, "Only approved orders can be paid")
		case errors.Is(err, service.ErrPaymentAlreadyMade):
			apperrors.Conflict(c, apperrors.OrderPaymentInvalid, "Order has already been paid")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "pay order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment recorded",
		"order":   order,
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
