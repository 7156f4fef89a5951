package model

// CartItem is one POS cart line. The ID is the product's identifier;
// price is snapshotted when the line is added.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is ephemeral session state, never persisted.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Total is the running sum of price * quantity, recomputed on every call.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
