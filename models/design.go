package models

import "time"

// DesignElement is one positioned piece of artwork on the garment canvas.
type DesignElement struct {
	Type     string  `bson:"type" json:"type"` // "text" or "image"
	Content  string  `bson:"content" json:"content"`
	X        float64 `bson:"x" json:"x"`
	Y        float64 `bson:"y" json:"y"`
	Scale    float64 `bson:"scale" json:"scale"`
	Rotation float64 `bson:"rotation" json:"rotation"`
	Color    string  `bson:"color,omitempty" json:"color,omitempty"`
	Font     string  `bson:"font,omitempty" json:"font,omitempty"`
}

// CustomDesign is the design payload attached to a cart line or saved design.
type CustomDesign struct {
	Elements []DesignElement `bson:"elements" json:"elements"`
	Preview  string          `bson:"preview,omitempty" json:"preview,omitempty"`
}

// SavedDesign is a session-owned design record.
type SavedDesign struct {
	ID        string       `bson:"_id" json:"id"`
	SessionID string       `bson:"sessionId" json:"-"`
	Name      string       `bson:"name" json:"name"`
	ProductID int          `bson:"productId" json:"productId"`
	Color     ColorOption  `bson:"color" json:"color"`
	Size      string       `bson:"size" json:"size"`
	Design    CustomDesign `bson:"design" json:"design"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
}

// DesignShare is a public, expiring link to a saved design.
type DesignShare struct {
	Token     string    `bson:"_id" json:"token"`
	DesignID  string    `bson:"designId" json:"designId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Expired reports whether the share is past its expiry at the given time.
func (s DesignShare) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
