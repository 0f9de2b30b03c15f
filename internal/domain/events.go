package domain

// ConfigLoadedEvent is published after a config file has been read
type ConfigLoadedEvent struct {
	Path string
	Rows int
}

// ConfigSavedEvent is published after a config file has been written
type ConfigSavedEvent struct {
	Path string
}
