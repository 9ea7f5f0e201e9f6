package entity

// CartItem embeds a copy of the menu item taken at the moment it was
// added, so later catalog edits never change a cart line or an order.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
