package logging

// Component names for structured logging.
const (
	ComponentStartup = "startup"
	ComponentEngine  = "engine"
	ComponentCodec   = "codec"
	ComponentPalette = "palette"
	ComponentServer  = "server"
)
