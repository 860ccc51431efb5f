package config

// Default directory locations
const (
	DefaultContentDir = "content"
	DefaultSchemaDir  = "configs/schemas"
)
