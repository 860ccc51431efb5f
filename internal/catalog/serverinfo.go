package catalog

import (
	"log/slog"

	"github.com/fibulaproject/fibulopedia/internal/domain"
)

// ServerInfo loads the singleton server information record. The second
// return value is false when the file is missing, malformed or not a
// single mapping. Absent fields fall back to server defaults.
func (s *Service) ServerInfo() (*domain.ServerInfo, bool) {
	doc, ok := s.store.LoadJSON(ServerInfoFile)
	if !ok {
		return nil, false
	}

	rec, ok := asRecord(doc)
	if !ok {
		slog.Warn(LogMsgUnexpectedShape, "file", ServerInfoFile, "kind", domain.EntityTypeServerInfo)
		return nil, false
	}

	info := &domain.ServerInfo{
		ID:             ToString(rec["id"]),
		Name:           ToString(rec["name"]),
		Description:    ToString(rec["description"]),
		Rates:          toRates(rec["rates"]),
		Version:        ToString(rec["version"]),
		Website:        ToString(rec["website"]),
		Discord:        ToString(rec["discord"]),
		AdditionalInfo: ToString(rec["additional_info"]),
	}
	if info.ID == "" {
		info.ID = DefaultServerID
	}
	if info.Name == "" {
		info.Name = DefaultServerName
	}
	if info.Version == "" {
		info.Version = DefaultServerVersion
	}
	return info, true
}

// Rate returns a server rate multiplier by name (exp, loot, skill, magic)
func (s *Service) Rate(name string) (float64, bool) {
	info, ok := s.ServerInfo()
	if !ok {
		return 0, false
	}
	rate, ok := info.Rates[name]
	return rate, ok
}

func toRates(v any) map[string]float64 {
	raw, ok := v.(map[string]any)
	if !ok {
		return map[string]float64{}
	}
	rates := make(map[string]float64, len(raw))
	for name, value := range raw {
		rates[name] = ToFloat(value, 0)
	}
	return rates
}
