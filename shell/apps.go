// Package shell is the phone's home screen: the app registry, focus
// navigation over the icon grid and the open/close routing that drives the
// snake engine and the music.
package shell

// App is one icon on the home grid and the panel it opens.
type App struct {
	Key   string
	Label string
	Glyph string // single-cell icon for frontends without emoji
	Title string
	Lines []string
}

// GameKey is the app that hosts the snake engine.
const GameKey = "game"

// Columns is the width of the home grid.
const Columns = 3

// DefaultApps returns the phone apps in home-grid order.
func DefaultApps() []App {
	return []App{
		{
			Key: "video", Label: "Video", Glyph: "V", Title: "Video Gallery",
			Lines: []string{
				"Chiedo Asilo - 2025, Animation",
				"SHAR - 2024, Animation, Digital Drawing",
				"Ciarat AL-hosh - 2024, Film, Digital Drawing",
				"Benghazi 101 - 2023, Motion Graphic",
			},
		},
		{
			Key: "xr", Label: "XR", Glyph: "X", Title: "XR / VR Samples",
			Lines: []string{
				"XR Scene 1 - placeholder 3D scene",
				"XR Scene 2 - placeholder interaction demo",
			},
		},
		{
			Key: "frames", Label: "Frames", Glyph: "F", Title: "Stills / Frames",
			Lines: []string{
				"Shas", "Italian Kids", "SHAR 4", "Soldiers", "Woke Up Like This",
				"Dodge 1", "The Fight After Prayer", "Friday", "Bozaid",
			},
		},
		{
			Key: "instagram", Label: "Socials", Glyph: "S", Title: "Socials",
			Lines: []string{
				"@ahmed.eshhh",
				"Ahmed Shuwehdi - Multimedia Artist & XR Creator",
			},
		},
		{
			Key: GameKey, Label: "Game", Glyph: "G", Title: "Snake Game",
		},
		{
			Key: "contact", Label: "Contact", Glyph: "C", Title: "Contact",
			Lines: []string{
				"Email: yourname@example.com",
				"Instagram: @yourhandle",
				"Location: New York, NY",
			},
		},
		{
			Key: "about", Label: "About", Glyph: "A", Title: "About",
			Lines: []string{
				"Ahmed Shuwehdi, multimedia artist working in XR, VR, AR",
				"and video art.",
				"Student at Bennington College, Vermont.",
			},
		},
	}
}
