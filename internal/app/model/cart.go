package model

// CartLine is one product/quantity/price entry in the ephemeral cart. Carts
// never touch the database: they live in the cart store (Redis or memory)
// for the lifetime of a visit.
type CartLine struct {
	ID    string `json:"id"` // "cart-<product id>-<unix ms>"
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Qty   int    `json:"qty"`
	Price string `json:"price"` // line total display string, e.g. "$30"
	Image string `json:"image"`
}

// Cart is a user's full set of lines plus derived totals
type Cart struct {
	Lines    []CartLine `json:"lines"`
	TotalQty int        `json:"total_qty"`
}
