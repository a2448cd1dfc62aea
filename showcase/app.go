// Package main provides the screen lock demo application.
package main

import (
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"
)

// App returns the root widget for the screen lock demo.
func App() core.Widget {
	return LockDemoApp{}
}

// LockDemoApp switches between the home page and one demo at a time.
type LockDemoApp struct {
	core.StatefulBase
}

func (LockDemoApp) CreateState() core.State {
	return &lockDemoState{}
}

type lockDemoState struct {
	core.StateBase
	route string
}

func (s *lockDemoState) Build(ctx core.BuildContext) core.Widget {
	if demo, ok := findDemo(s.route); ok {
		return demo.Builder(func() { s.open("") })
	}
	return buildHomePage(s.open)
}

func (s *lockDemoState) open(route string) {
	if route != "" {
		log.Printf("opening demo %s", route)
	}
	s.SetState(func() {
		s.route = route
	})
}

// buildHomePage lists the demos.
func buildHomePage(open func(route string)) core.Widget {
	items := []core.Widget{
		widgets.Text{Content: "Screen Lock", Style: graphics.TextStyle{
			Color:      graphics.ColorWhite,
			FontSize:   28,
			FontWeight: graphics.FontWeightBold,
		}},
		widgets.VSpace(8),
		widgets.Text{Content: "Gate content behind Face ID, Touch ID or a passcode", Style: labelStyle()},
		widgets.VSpace(32),
	}
	for _, demo := range demos {
		route := demo.Route
		items = append(items,
			navButton(demo.Title, func() { open(route) }),
			widgets.VSpace(4),
			widgets.Text{Content: demo.Subtitle, Style: labelStyle()},
			widgets.VSpace(16),
		)
	}
	return pageBackground(items...)
}
