package game

import "fmt"

// Screen is the top level state of the game.
type Screen uint8

const (
	Splash Screen = iota + 1
	Loading
	Menu
	Hello
)

var Screens = []Screen{Splash, Loading, Menu, Hello}

func (s Screen) String() string {
	switch s {
	case Splash:
		return "Splash"
	case Loading:
		return "Loading"
	case Menu:
		return "Menu"
	case Hello:
		return "Hello"
	default:
		return fmt.Sprintf("Screen(%d)", uint8(s))
	}
}

// Submenu is the page of the menu that is shown. It is SubmenuNone
// whenever the Menu screen is not active.
type Submenu uint8

const (
	SubmenuNone Submenu = iota
	SubmenuMain
	SubmenuOptions
)

var Submenus = []Submenu{SubmenuNone, SubmenuMain, SubmenuOptions}

func (s Submenu) String() string {
	switch s {
	case SubmenuNone:
		return "None"
	case SubmenuMain:
		return "Main"
	case SubmenuOptions:
		return "Options"
	default:
		return fmt.Sprintf("Submenu(%d)", uint8(s))
	}
}
