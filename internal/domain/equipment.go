package domain

// Equipment slot constants
const (
	SlotHelmet = "helmet"
	SlotArmor  = "armor"
	SlotLegs   = "legs"
	SlotBoots  = "boots"
	SlotShield = "shield"
	SlotRing   = "ring"
	SlotAmulet = "amulet"
)

// EquipmentItem represents a wearable item from the content catalog
type EquipmentItem struct {
	ID          string       `json:"id"`
	Slot        string       `json:"slot"`
	Name        string       `json:"name"`
	Defense     int          `json:"defense"`
	Weight      float64      `json:"weight"`
	DroppedBy   []string     `json:"dropped_by"`
	BuyFrom     []TradeOffer `json:"buy_from"`
	SellTo      []TradeOffer `json:"sell_to"`
	Description string       `json:"description,omitempty"`
}
