// Gamepad probe: polls the first connected gamepad through the input
// manager and prints button/axis transitions plus the joystick motion
// vector after deadzone filtering.
package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/coldiron/colonist/backend"
	"github.com/coldiron/colonist/event"
	"github.com/coldiron/colonist/input"
	"github.com/coldiron/colonist/key"
)

const maxLog = 10

type game struct {
	mgr *input.Manager
	pad *backend.Gamepad

	ids []ebiten.GamepadID
	buf []event.Event
	log []string
}

func (g *game) Update() error {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	if len(g.ids) == 0 {
		g.pad = nil
		return nil
	}
	if g.pad == nil || g.pad.ID() != g.ids[0] {
		g.pad = backend.NewGamepad(g.ids[0])
		g.addLog(fmt.Sprintf("gamepad %d: %s", g.ids[0], ebiten.GamepadName(g.ids[0])))
	}

	g.buf = g.pad.Poll(g.buf[:0])
	for _, ev := range g.buf {
		slot, ok := g.mgr.Process(ev)
		switch ev.Type {
		case event.JoyButtonDown, event.JoyButtonUp:
			line := fmt.Sprintf("%s %s", ev.Type, key.Label(ev.Key))
			if ok {
				line += " -> " + slot.String()
			}
			g.addLog(line)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	jm := g.mgr.JoyMotion()
	msg := fmt.Sprintf("joy-probe\nmotion: (%+.2f, %+.2f, %+.2f)  deadzone: %.2f\n\n",
		jm.X, jm.Y, jm.Z, g.mgr.Deadzone())
	if g.pad == nil {
		msg += "no gamepad connected\n"
	}
	for _, line := range g.log {
		msg += line + "\n"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 480, 320
}

func (g *game) addLog(s string) {
	if len(g.log) >= maxLog {
		copy(g.log, g.log[1:])
		g.log = g.log[:maxLog-1]
	}
	g.log = append(g.log, s)
}

func main() {
	ebiten.SetWindowSize(480, 320)
	ebiten.SetWindowTitle("joy-probe")

	if err := ebiten.RunGame(&game{mgr: input.New()}); err != nil {
		log.Fatal(err)
	}
}
