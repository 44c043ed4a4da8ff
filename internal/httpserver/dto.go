package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/cart"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/catalog"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/customer"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/session"
)

// formatEuros renders integer cents as the "1299.00" style amount the
// storefront displays.
func formatEuros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

type productDTO struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	Category            string `json:"category"`
	PriceCents          int64  `json:"priceCents"`
	Price               string `json:"price"`
	WholesalePriceCents int64  `json:"wholesalePriceCents"`
	WholesalePrice      string `json:"wholesalePrice"`
	DiscountPercent     int    `json:"discountPercent"`
	Stock               int    `json:"stock"`
	MinQuantity         int    `json:"minQuantity"`
	InStock             bool   `json:"inStock"`
}

func toProductDTO(p domain.Product) productDTO {
	return productDTO{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		Category:            p.Category,
		PriceCents:          p.PriceCents,
		Price:               formatEuros(p.PriceCents),
		WholesalePriceCents: p.WholesalePriceCents,
		WholesalePrice:      formatEuros(p.WholesalePriceCents),
		DiscountPercent:     catalog.DiscountPercent(p),
		Stock:               p.Stock,
		MinQuantity:         p.MinQuantity,
		InStock:             p.InStock(),
	}
}

type cartLineDTO struct {
	Product      productDTO `json:"product"`
	Quantity     int        `json:"quantity"`
	TotalCents   int64      `json:"totalCents"`
	Total        string     `json:"total"`
	BelowMinimum bool       `json:"belowMinimum"`
}

type cartDTO struct {
	Lines              []cartLineDTO `json:"lines"`
	LineCount          int           `json:"lineCount"`
	TotalUnits         int           `json:"totalUnits"`
	SubtotalCents      int64         `json:"subtotalCents"`
	Subtotal           string        `json:"subtotal"`
	TotalDiscountCents int64         `json:"totalDiscountCents"`
	TotalDiscount      string        `json:"totalDiscount"`
}

func toCartDTO(e *cart.Engine) cartDTO {
	lines := e.Lines()
	out := cartDTO{
		Lines:              make([]cartLineDTO, 0, len(lines)),
		LineCount:          len(lines),
		SubtotalCents:      e.SubtotalCents(),
		TotalDiscountCents: e.TotalDiscountCents(),
	}
	for _, l := range lines {
		out.TotalUnits += l.Quantity
		out.Lines = append(out.Lines, cartLineDTO{
			Product:      toProductDTO(l.Product),
			Quantity:     l.Quantity,
			TotalCents:   l.TotalCents(),
			Total:        formatEuros(l.TotalCents()),
			BelowMinimum: l.BelowMinimum(),
		})
	}
	out.Subtotal = formatEuros(out.SubtotalCents)
	out.TotalDiscount = formatEuros(out.TotalDiscountCents)
	return out
}

type orderDTO struct {
	ID           string            `json:"id"`
	PlacedAt     time.Time         `json:"placedAt"`
	Status       string            `json:"status"`
	StatusInfo   domain.StatusInfo `json:"statusInfo"`
	TotalCents   int64             `json:"totalCents"`
	Total        string            `json:"total"`
	Items        int               `json:"items"`
	TrackingCode string            `json:"trackingCode,omitempty"`
}

func toOrderDTO(o domain.Order) orderDTO {
	return orderDTO{
		ID:           o.ID,
		PlacedAt:     o.PlacedAt,
		Status:       string(o.Status),
		StatusInfo:   o.Status.Info(),
		TotalCents:   o.TotalCents,
		Total:        formatEuros(o.TotalCents),
		Items:        o.Items,
		TrackingCode: o.TrackingCode,
	}
}

func toOrderDTOs(orders []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	return out
}

type sessionDTO struct {
	LoggedIn   bool   `json:"loggedIn"`
	CustomerID string `json:"customerId,omitempty"`
	View       string `json:"view"`
	Locale     string `json:"locale"`
	CartUnits  int    `json:"cartUnits"`
	CartLines  int    `json:"cartLines"`
}

func toSessionDTO(s *session.State) sessionDTO {
	return sessionDTO{
		LoggedIn:   s.LoggedIn(),
		CustomerID: s.CustomerID(),
		View:       string(s.View()),
		Locale:     s.Locale(),
		CartUnits:  s.Cart.TotalUnits(),
		CartLines:  s.Cart.LineCount(),
	}
}

// writeError maps service errors onto HTTP statuses. Boundary failures are
// never swallowed; everything surfaces as a JSON error message.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, customer.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, customer.ErrAccountNotApproved):
		status = http.StatusForbidden
	case errors.Is(err, customer.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, cart.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, cart.ErrOutOfStock):
		status = http.StatusConflict
	case errors.Is(err, cart.ErrBelowMinimum):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, cart.ErrCheckoutPending):
		status = http.StatusConflict
	case errors.Is(err, session.ErrInvalidView):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
