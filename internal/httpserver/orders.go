package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/order"
)

func listOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.Search(c.Request.Context(), c.Query("search"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": toOrderDTOs(orders), "total": len(orders)})
	}
}

func recentOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.Recent(c.Request.Context(), c.Query("search"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": toOrderDTOs(orders), "total": len(orders)})
	}
}
