package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"
)

var (
	backgroundColor = graphics.RGB(0x12, 0x12, 0x14)
	surfaceColor    = graphics.RGB(0x2C, 0x2C, 0x2E)
	mutedColor      = graphics.RGB(0x8E, 0x8E, 0x93)
)

// labelStyle returns a text style for descriptive labels.
func labelStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:    mutedColor,
		FontSize: 14,
	}
}

// navButton creates a full-width navigation button.
func navButton(label string, onTap func()) core.Widget {
	return widgets.Button{
		Label:        label,
		OnTap:        onTap,
		Color:        surfaceColor,
		TextColor:    graphics.ColorWhite,
		BorderRadius: 8,
		Haptic:       true,
	}
}

// pageBackground stacks items in a centered column on the app background.
func pageBackground(items ...core.Widget) core.Widget {
	return widgets.Container{
		Color: backgroundColor,
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMax,
			Children:           items,
		},
	}
}

// secretContent is the protected page shown behind each lock.
func secretContent(title, body string, back func()) core.Widget {
	return pageBackground(
		widgets.Text{Content: title, Style: graphics.TextStyle{
			Color:      graphics.ColorWhite,
			FontSize:   22,
			FontWeight: graphics.FontWeightBold,
		}},
		widgets.VSpace(12),
		widgets.Text{Content: body, Style: labelStyle()},
		widgets.VSpace(32),
		navButton("Back", back),
	)
}
