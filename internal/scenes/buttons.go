package scenes

import (
	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/ui"
)

var (
	normalColor          = color.Gray(0.15)
	hoveredColor         = color.Gray(0.25)
	hoveredSelectedColor = color.RGB(0.25, 0.65, 0.25)
	clickedColor         = color.RGB(0.35, 0.75, 0.35)

	textColor = color.Gray(0.9)
)

const (
	buttonFontSize      = 40
	buttonFontSizeSmall = 30
)

var (
	buttonSize  = gm.VecOf(200, 65)
	settingSize = gm.VecOf(150, 50)
)

// Action is the payload of the buttons of the menu and hello screens.
type Action uint8

const (
	ActionPlay Action = iota + 1
	ActionOptions
	ActionQuit
	ActionWindowed
	ActionFullScreen
	ActionBack
	ActionMenu
)

func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "Play"
	case ActionOptions:
		return "Options"
	case ActionQuit:
		return "Quit"
	case ActionWindowed:
		return "Windowed"
	case ActionFullScreen:
		return "FullScreen"
	case ActionBack:
		return "Back"
	case ActionMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

func button(scope any, center gm.Vec, text string, action Action) ui.Node {
	return ui.Node{
		Scope:     scope,
		Kind:      ui.KindButton,
		Rect:      gm.RectWithCenterAndSize(center, buttonSize),
		Color:     normalColor,
		Text:      text,
		TextSize:  buttonFontSize,
		TextColor: textColor,
		Action:    action,
	}
}

func setting(scope any, center gm.Vec, text string, action Action, selected bool) ui.Node {
	node := button(scope, center, text, action)
	node.Rect = gm.RectWithCenterAndSize(center, settingSize)
	node.TextSize = buttonFontSizeSmall
	node.Selected = selected
	node.Color = buttonColor(ui.InteractionNone, selected)
	return node
}

func buttonColor(interaction ui.Interaction, selected bool) color.Color {
	switch {
	case interaction == ui.InteractionPressed:
		return clickedColor
	case interaction == ui.InteractionHovered && selected:
		return hoveredSelectedColor
	case interaction == ui.InteractionHovered:
		return hoveredColor
	case selected:
		return clickedColor
	default:
		return normalColor
	}
}

func buttonColorsSystem(nodes *ui.Nodes) {
	for node := range nodes.Items() {
		if _, ok := node.Action.(Action); ok && node.Kind == ui.KindButton {
			node.Color = buttonColor(node.Interaction, node.Selected)
		}
	}
}

// actionsOf returns the actions of all clicked buttons.
func actionsOf(clicks []ui.Clicked) []Action {
	var actions []Action

	for _, click := range clicks {
		if action, ok := click.Action.(Action); ok {
			actions = append(actions, action)
		}
	}

	return actions
}
