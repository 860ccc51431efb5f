package domain

// TradeOffer represents a buy or sell option at an NPC
type TradeOffer struct {
	NPC   string `json:"npc"`
	Price int    `json:"price"`
}

// Weapon represents a single weapon from the content catalog.
// Type is a free-form category string (sword, axe, club, distance, ...).
type Weapon struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Attack      int          `json:"attack"`
	Defense     int          `json:"defense"`
	Weight      float64      `json:"weight"`
	DroppedBy   []string     `json:"dropped_by"`
	BuyFrom     []TradeOffer `json:"buy_from"`
	SellTo      []TradeOffer `json:"sell_to"`
	Description string       `json:"description,omitempty"`
}
