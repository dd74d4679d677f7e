// Interactive input-manager probe: shows which logical slot each raw
// event resolves to, the live modifier/tracked/mouse state, and the
// keyboard motion vector. Plays a short blip when a key hits a bound
// slot. Ctrl+C quits.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/coldiron/colonist/backend"
	"github.com/coldiron/colonist/event"
	"github.com/coldiron/colonist/input"
)

const maxLog = 12

type probe struct {
	screen    tcell.Screen
	mgr       *input.Manager
	source    *backend.Terminal
	eventLog  []string
	audioInit bool
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	p := &probe{
		screen:   screen,
		mgr:      input.New(),
		source:   backend.NewTerminal(),
		eventLog: make([]string, 0, maxLog),
	}

	if err := p.initAudio(); err != nil {
		// Non-fatal, probe works silently
		log.Printf("audio init failed: %v", err)
	}

	p.render()

	buf := make([]event.Event, 0, 8)
	for {
		tev := screen.PollEvent()
		if _, ok := tev.(*tcell.EventResize); ok {
			screen.Sync()
			p.render()
			continue
		}

		buf = p.source.Translate(tev, buf[:0])
		for _, ev := range buf {
			slot, ok := p.mgr.Process(ev)
			if ok {
				if slot == input.SlotQuit {
					return
				}
				p.addLog(fmt.Sprintf("%-16s -> %s (%s)", ev.Type, slot, p.mgr.SlotKeysString(slot)))
				p.playBlip()
			} else if ev.Type != event.MouseMove {
				p.addLog(fmt.Sprintf("%-16s unbound", ev.Type))
			}
		}

		// Ctrl+C quits even if the quit slot was rebound away
		if kev, ok := tev.(*tcell.EventKey); ok && kev.Key() == tcell.KeyCtrlC {
			return
		}

		p.render()
	}
}

func (p *probe) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		p.audioInit = true
	}
	return err
}

func (p *probe) playBlip() {
	if !p.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, _ := generators.SineTone(sampleRate, 880)
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

func (p *probe) addLog(s string) {
	if len(p.eventLog) >= maxLog {
		copy(p.eventLog, p.eventLog[1:])
		p.eventLog = p.eventLog[:maxLog-1]
	}
	p.eventLog = append(p.eventLog, s)
}

func (p *probe) render() {
	p.screen.Clear()

	text(p.screen, 1, 0, "input-probe - press keys, move mouse - Ctrl+C quits")

	y := 2
	for _, entry := range p.eventLog {
		text(p.screen, 1, y, entry)
		y++
	}

	pos := p.mgr.MousePos()
	km := p.mgr.KeyMotion()
	y += 2
	text(p.screen, 1, y, fmt.Sprintf("mouse: (%.0f,%.0f) L:%v R:%v M:%v",
		pos.X, pos.Y, p.mgr.ButtonState(0), p.mgr.ButtonState(1), p.mgr.ButtonState(2)))
	text(p.screen, 1, y+1, fmt.Sprintf("mods: shift:%v ctrl:%v alt:%v",
		p.mgr.ModState(event.ModShift), p.mgr.ModState(event.ModCtrl), p.mgr.ModState(event.ModAlt)))
	text(p.screen, 1, y+2, fmt.Sprintf("tracked: pgup:%v pgdn:%v",
		p.mgr.TrackedState(input.TrackedPageUp), p.mgr.TrackedState(input.TrackedPageDown)))
	text(p.screen, 1, y+3, fmt.Sprintf("key motion: (%+.0f,%+.0f,%+.0f)", km.X, km.Y, km.Z))

	p.screen.Show()
}

func text(s tcell.Screen, x, y int, msg string) {
	style := tcell.StyleDefault
	for i, r := range msg {
		s.SetContent(x+i, y, r, nil, style)
	}
}
