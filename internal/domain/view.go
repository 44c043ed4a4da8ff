package domain

// View is the active storefront page of a session.
type View string

const (
	ViewHome    View = "home"
	ViewCatalog View = "catalog"
	ViewCart    View = "cart"
	ViewOrders  View = "orders"
)

// Valid reports whether v names a known storefront view. Any view is
// reachable from any other, so this is the only navigation rule.
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewCatalog, ViewCart, ViewOrders:
		return true
	}
	return false
}
