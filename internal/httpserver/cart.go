package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muerroui/gsm-ma-achat-simple/internal/logger"
	catalogsvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/catalog"
	ordersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/order"
)

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cart": toCartDTO(currentSession(c).Cart)})
	}
}

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

func addCartItemHandler(catalog *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			writeError(c, err)
			return
		}

		state := currentSession(c)
		if err := state.Cart.AddItem(*product); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": toCartDTO(state.Cart)})
	}
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func setCartQuantityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		state := currentSession(c)
		if err := state.Cart.SetQuantity(productID, *req.Quantity); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": toCartDTO(state.Cart)})
	}
}

func checkoutHandler(orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := currentSession(c)

		lines, err := state.Cart.BeginCheckout()
		if err != nil {
			writeError(c, err)
			return
		}
		defer state.Cart.EndCheckout()

		created, err := orders.Submit(c.Request.Context(), lines)
		if err != nil {
			writeError(c, err)
			return
		}
		state.Cart.Clear()

		logger.FromCtx(c.Request.Context()).Info("order submitted",
			zap.String("order_id", created.ID),
			zap.Int64("total_cents", created.TotalCents),
			zap.Int("items", created.Items),
		)
		c.JSON(http.StatusCreated, gin.H{
			"order":   toOrderDTO(*created),
			"message": "Commande confirmée ! Vous recevrez un email de confirmation.",
		})
	}
}
