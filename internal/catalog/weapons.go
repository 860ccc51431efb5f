package catalog

import "github.com/fibulaproject/fibulopedia/internal/domain"

var weaponRequiredFields = []string{"id", "type", "name", "attack", "defense"}

func buildWeapon(rec Record) domain.Weapon {
	return domain.Weapon{
		ID:          ToString(rec["id"]),
		Type:        ToString(rec["type"]),
		Name:        ToString(rec["name"]),
		Attack:      ToInt(rec["attack"], 0),
		Defense:     ToInt(rec["defense"], 0),
		Weight:      ToFloat(rec["weight"], 0),
		DroppedBy:   ToStringList(rec["dropped_by"]),
		BuyFrom:     toTradeOffers(rec["buy_from"]),
		SellTo:      toTradeOffers(rec["sell_to"]),
		Description: ToString(rec["description"]),
	}
}

func weaponTextFields(w domain.Weapon) []string {
	fields := []string{w.Name, w.Type}
	return append(fields, w.DroppedBy...)
}

// toTradeOffers coerces a raw buy_from/sell_to list into trade offers
func toTradeOffers(v any) []domain.TradeOffer {
	raw := ToList(v)
	offers := make([]domain.TradeOffer, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		offers = append(offers, domain.TradeOffer{
			NPC:   ToString(m["npc"]),
			Price: ToInt(m["price"], 0),
		})
	}
	return offers
}

// Weapons loads all weapons from the content store, in source order
func (s *Service) Weapons() []domain.Weapon {
	return loadCatalog(s.store, WeaponsFile, domain.EntityTypeWeapon, weaponRequiredFields, buildWeapon)
}

// WeaponByID returns the first weapon with the given id
func (s *Service) WeaponByID(id string) (domain.Weapon, error) {
	if w, ok := findByID(s.Weapons(), id, func(w domain.Weapon) string { return w.ID }); ok {
		return w, nil
	}
	return domain.Weapon{}, domain.ErrNotFound
}

// SearchWeapons matches query against name, type and dropped_by.
// An empty query returns the full collection.
func (s *Service) SearchWeapons(query string) []domain.Weapon {
	return searchCatalog(s.Weapons(), query, weaponTextFields)
}

// FilterWeaponsByType filters weapons on the type category
func (s *Service) FilterWeaponsByType(weaponType string) []domain.Weapon {
	return filterCatalog(s.Weapons(), weaponType, func(w domain.Weapon) string { return w.Type })
}

// WeaponTypes returns the distinct weapon type values, sorted
func (s *Service) WeaponTypes() []string {
	return distinctValues(s.Weapons(), func(w domain.Weapon) string { return w.Type })
}
