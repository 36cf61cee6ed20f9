package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line in a cart. Line identity for merge-on-add is the
// (ProductID, Color.Name, Size) triple; ID is a synthetic handle for
// update/remove calls.
type CartItem struct {
	ID        string        `bson:"id" json:"id"`
	ProductID int           `bson:"productId" json:"productId"`
	Name      string        `bson:"name" json:"name"`
	Image     string        `bson:"image" json:"image"`
	Color     ColorOption   `bson:"color" json:"color"`
	Size      string        `bson:"size" json:"size"`
	UnitPrice float64       `bson:"unitPrice" json:"unitPrice"`
	Quantity  int           `bson:"quantity" json:"quantity"`
	Design    *CustomDesign `bson:"design,omitempty" json:"design,omitempty"`
}

type Cart struct {
	SessionID string     `bson:"_id" json:"-"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// AddItem merges the item into an existing line with the same product,
// color and size, otherwise appends it as a new line.
func (c *Cart) AddItem(item CartItem) {
	for i, existing := range c.Items {
		if existing.ProductID == item.ProductID &&
			existing.Color.Name == item.Color.Name &&
			existing.Size == item.Size {
			c.Items[i].Quantity += item.Quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or below
// removes the line. Reports whether the line was found.
func (c *Cart) UpdateQuantity(itemID string, quantity int) bool {
	for i, item := range c.Items {
		if item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.UpdatedAt = time.Now()
		return true
	}
	return false
}

// RemoveItem deletes a line by its synthetic ID.
func (c *Cart) RemoveItem(itemID string) bool {
	return c.UpdateQuantity(itemID, 0)
}
