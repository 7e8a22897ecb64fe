package domain

import "github.com/shopspring/decimal"

// CartLine is one pending sale line. UnitPrice is a snapshot taken
// when the item was added, not a live reference to the catalog.
type CartLine struct {
	ItemID    uint            `json:"item_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart is the transient list of pending sale lines held for the
// duration of a session. It is a value: operations return an updated
// copy instead of mutating shared state.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// QuantityOf returns the quantity already carted for an item, 0 if absent.
func (c Cart) QuantityOf(itemID uint) int {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}

	return 0
}

// WithLine merges the quantity into an existing line for the same item,
// or appends a new line.
func (c Cart) WithLine(added CartLine) Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)

	for i, line := range lines {
		if line.ItemID == added.ItemID {
			lines[i].Quantity += added.Quantity
			return Cart{Lines: lines}
		}
	}

	return Cart{Lines: append(lines, added)}
}

// WithoutItem drops the line for the item if present.
func (c Cart) WithoutItem(itemID uint) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}

	return Cart{Lines: lines}
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return subtotal
}
