package domain

// ConcessionItem is a food and beverage catalog entry. Prices are whole
// currency units, consistent with ticket pricing.
type ConcessionItem struct {
	ID    string
	Name  string
	Price int64
}

type ConcessionsCatalog []ConcessionItem

func DefaultConcessionsCatalog() ConcessionsCatalog {
	return ConcessionsCatalog{
		{ID: "popcorn", Name: "Popcorn", Price: 150},
		{ID: "coke", Name: "Coke", Price: 80},
		{ID: "nachos", Name: "Nachos", Price: 180},
		{ID: "coffee", Name: "Coffee", Price: 120},
	}
}

func (c ConcessionsCatalog) Price(itemID string) (int64, bool) {
	for _, item := range c {
		if item.ID == itemID {
			return item.Price, true
		}
	}
	return 0, false
}

func (c ConcessionsCatalog) Contains(itemID string) bool {
	_, ok := c.Price(itemID)
	return ok
}

// ConcessionsCart maps item id to quantity. Entries at quantity zero are
// logically absent.
type ConcessionsCart map[string]int

// Increment adds one of the item. Ids outside the catalog are a no-op,
// mirroring the tolerant UI behavior.
func (cart ConcessionsCart) Increment(itemID string, catalog ConcessionsCatalog) {
	if !catalog.Contains(itemID) {
		return
	}

	cart[itemID]++
}

// Decrement removes one of the item, flooring at zero.
func (cart ConcessionsCart) Decrement(itemID string) {
	if cart[itemID] <= 1 {
		delete(cart, itemID)
		return
	}

	cart[itemID]--
}

func (cart ConcessionsCart) Quantity(itemID string) int {
	return cart[itemID]
}

// Subtotal sums price times quantity over the cart. Stale entries that no
// longer exist in the catalog contribute zero rather than failing.
func (cart ConcessionsCart) Subtotal(catalog ConcessionsCatalog) int64 {
	var total int64

	for itemID, qty := range cart {
		price, ok := catalog.Price(itemID)
		if !ok {
			continue
		}
		total += price * int64(qty)
	}

	return total
}
