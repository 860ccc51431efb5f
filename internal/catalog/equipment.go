package catalog

import "github.com/fibulaproject/fibulopedia/internal/domain"

var equipmentRequiredFields = []string{"id", "slot", "name", "defense"}

func buildEquipmentItem(rec Record) domain.EquipmentItem {
	return domain.EquipmentItem{
		ID:          ToString(rec["id"]),
		Slot:        ToString(rec["slot"]),
		Name:        ToString(rec["name"]),
		Defense:     ToInt(rec["defense"], 0),
		Weight:      ToFloat(rec["weight"], 0),
		DroppedBy:   ToStringList(rec["dropped_by"]),
		BuyFrom:     toTradeOffers(rec["buy_from"]),
		SellTo:      toTradeOffers(rec["sell_to"]),
		Description: ToString(rec["description"]),
	}
}

func equipmentTextFields(e domain.EquipmentItem) []string {
	fields := []string{e.Name, e.Slot}
	return append(fields, e.DroppedBy...)
}

// Equipment loads all equipment items from the content store, in source order
func (s *Service) Equipment() []domain.EquipmentItem {
	return loadCatalog(s.store, EquipmentFile, domain.EntityTypeEquipment, equipmentRequiredFields, buildEquipmentItem)
}

// EquipmentByID returns the first equipment item with the given id
func (s *Service) EquipmentByID(id string) (domain.EquipmentItem, error) {
	if e, ok := findByID(s.Equipment(), id, func(e domain.EquipmentItem) string { return e.ID }); ok {
		return e, nil
	}
	return domain.EquipmentItem{}, domain.ErrNotFound
}

// SearchEquipment matches query against name, slot and dropped_by.
// An empty query returns the full collection.
func (s *Service) SearchEquipment(query string) []domain.EquipmentItem {
	return searchCatalog(s.Equipment(), query, equipmentTextFields)
}

// FilterEquipmentBySlot filters equipment on the slot category
func (s *Service) FilterEquipmentBySlot(slot string) []domain.EquipmentItem {
	return filterCatalog(s.Equipment(), slot, func(e domain.EquipmentItem) string { return e.Slot })
}

// EquipmentSlots returns the distinct slot values, sorted
func (s *Service) EquipmentSlots() []string {
	return distinctValues(s.Equipment(), func(e domain.EquipmentItem) string { return e.Slot })
}
