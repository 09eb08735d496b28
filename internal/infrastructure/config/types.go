package config

// UIConfig is the root config for ui.yaml
type UIConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Clock      ClockConfig      `yaml:"clock"`
	Transition TransitionConfig `yaml:"transition"`
	Assets     AssetsConfig     `yaml:"assets"`
	Music      MusicConfig      `yaml:"music"`
	Modals     ModalsConfig     `yaml:"modals"`
}

type DisplayConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	TPS       int    `yaml:"tps"`
	Title     string `yaml:"title"`
}

type ClockConfig struct {
	MaxStep float64 `yaml:"maxStep"` // Largest per-frame delta (seconds)
}

type TransitionConfig struct {
	FadeSpeed float64 `yaml:"fadeSpeed"` // Opacity per second
}

// AssetsConfig lists the images the shell preloads
type AssetsConfig struct {
	BasePath        string            `yaml:"basePath"`
	LoadConcurrency int               `yaml:"loadConcurrency"`
	Backgrounds     BackgroundsConfig `yaml:"backgrounds"`
}

// BackgroundsConfig maps (scene, theme) to an image path relative to BasePath.
// The dream scene has no theme variant.
type BackgroundsConfig struct {
	MenuDay   string `yaml:"menuDay"`
	MenuNight string `yaml:"menuNight"`
	RoomDay   string `yaml:"roomDay"`
	RoomNight string `yaml:"roomNight"`
	Dream     string `yaml:"dream"`
}

// Paths returns every background path in a stable order
func (b BackgroundsConfig) Paths() []string {
	return []string{b.MenuDay, b.MenuNight, b.RoomDay, b.RoomNight, b.Dream}
}

type MusicConfig struct {
	SampleRate int               `yaml:"sampleRate"`
	Volume     float64           `yaml:"volume"`
	Tracks     map[string]string `yaml:"tracks"` // mode name -> audio file
}

type ModalsConfig struct {
	Help    ModalConfig `yaml:"help"`
	Credits ModalConfig `yaml:"credits"`
}

// ModalConfig is the text content of one overlay panel
type ModalConfig struct {
	Title    string  `yaml:"title"`
	FontSize float64 `yaml:"fontSize"`
	Body     string  `yaml:"body"`
}
