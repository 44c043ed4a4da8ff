package domain

import "time"

// OrderStatus is the lifecycle state of a wholesale order. Wire values keep
// the storefront's French labels.
type OrderStatus string

const (
	StatusPending   OrderStatus = "en-attente"
	StatusConfirmed OrderStatus = "confirmee"
	StatusPrepared  OrderStatus = "preparee"
	StatusShipped   OrderStatus = "expediee"
	StatusDelivered OrderStatus = "livree"
)

// StatusInfo carries the display label and badge color for a status.
type StatusInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusInfos = map[OrderStatus]StatusInfo{
	StatusPending:   {Label: "En attente", Color: "yellow"},
	StatusConfirmed: {Label: "Confirmée", Color: "blue"},
	StatusPrepared:  {Label: "Préparée", Color: "purple"},
	StatusShipped:   {Label: "Expédiée", Color: "orange"},
	StatusDelivered: {Label: "Livrée", Color: "green"},
}

// Info returns the presentation mapping for the status. Unrecognized values
// get a generic gray badge with the raw value as label instead of failing.
func (s OrderStatus) Info() StatusInfo {
	if info, ok := statusInfos[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Color: "gray"}
}

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	_, ok := statusInfos[s]
	return ok
}

// Order is a placed wholesale order. TrackingCode is empty until the order
// ships.
type Order struct {
	ID           string      `json:"id"`
	PlacedAt     time.Time   `json:"placedAt"`
	Status       OrderStatus `json:"status"`
	TotalCents   int64       `json:"totalCents"`
	Items        int         `json:"items"`
	TrackingCode string      `json:"trackingCode,omitempty"`
}
