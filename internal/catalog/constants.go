package catalog

// Content file names inside the content directory
const (
	WeaponsFile    = "weapons.json"
	EquipmentFile  = "equipment.json"
	SpellsFile     = "spells.json"
	MonstersFile   = "monsters.json"
	QuestsFile     = "quests.json"
	ServerInfoFile = "server_info.json"
	LanguagesFile  = "languages.json"
)

// ServerInfo defaults, applied when the singleton record omits a field
const (
	DefaultServerID      = "server_001"
	DefaultServerName    = "Fibula Project"
	DefaultServerVersion = "7.1"
)

// Log messages
const (
	LogMsgFileNotFound     = "Content file not found"
	LogMsgInvalidJSON      = "Invalid JSON in content file"
	LogMsgReadFailed       = "Failed to read content file"
	LogMsgLoaded           = "Loaded content file"
	LogMsgSaved            = "Saved content file"
	LogMsgUnexpectedShape  = "Content file has unexpected shape"
	LogMsgRecordSkipped    = "Skipping record with missing required fields"
	LogMsgCatalogLoaded    = "Loaded catalog"
	LogMsgSearchPerformed  = "Catalog search performed"
	LogMsgCacheHit         = "Content cache hit"
	LogMsgCacheInvalidated = "Content cache entry invalidated"
)
