package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/product"
	catalogsvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/catalog"
)

func listCatalogHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := productrepo.Filter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		}

		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]productDTO, 0, len(products))
		for _, p := range products {
			out = append(out, toProductDTO(p))
		}
		c.JSON(http.StatusOK, gin.H{"products": out, "total": len(out)})
	}
}

func categoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalogsvc.CategoryOptions()})
	}
}
