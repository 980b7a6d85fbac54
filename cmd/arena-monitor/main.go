package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tolvren/arena/audio"
	"github.com/tolvren/arena/events"
	"github.com/tolvren/arena/listeners"
)

const (
	tickMs       = 50
	spawnMs      = 1200
	maxActors    = 16
	maxLog       = 8
	despawnOdds  = 400 // 1-in-N per actor per tick
	walkMaxSpeed = 1.5
)

var speciesPool = []string{"Goblin", "Wolf", "Slime", "Wraith"}

type Monitor struct {
	screen        tcell.Screen
	width, height int

	queue      *events.Queue
	dispatcher *events.Dispatcher
	tracker    *listeners.TrackerListener
	sounds     *audio.SoundManager

	eventLog  []string
	nextUID   uint64
	lastSpawn time.Time
}

func NewMonitor() (*Monitor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	m := &Monitor{
		screen:     screen,
		queue:      events.NewQueue(),
		dispatcher: events.NewDispatcher(),
		tracker:    listeners.NewTrackerListener(io.Discard),
		sounds:     audio.NewSoundManager(),
		eventLog:   make([]string, 0, maxLog),
		nextUID:    10001,
		lastSpawn:  time.Now(),
	}
	m.width, m.height = screen.Size()

	// Non-fatal, monitor can run without sound
	if err := m.sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}

	m.tracker.Register(m.dispatcher)
	events.SubscribeFunc(m.dispatcher, events.EventSoundRequest, listeners.NewSoundListener(m.sounds).OnEvent)

	// Event log tap: actor and reset events feed the on-screen log via
	// registry names; sound requests are left out to keep the log readable
	for _, k := range []events.EventKind{
		events.EventActorMove,
		events.EventActorSpawn,
		events.EventActorDespawn,
		events.EventArenaReset,
	} {
		m.dispatcher.Register(k, m.logEvent)
	}

	return m, nil
}

func (m *Monitor) logEvent(ev events.GameEvent) {
	var entry string
	switch p := ev.Payload.(type) {
	case *events.ActorMovePayload:
		entry = fmt.Sprintf("%s uid=%d (%.1f, %.1f)", events.NameForKind(ev.Kind), p.UID, p.X, p.Y)
	case *events.ActorSpawnPayload:
		entry = fmt.Sprintf("%s uid=%d %s (%.1f, %.1f)", events.NameForKind(ev.Kind), p.UID, p.Species, p.X, p.Y)
	case *events.ActorDespawnPayload:
		entry = fmt.Sprintf("%s uid=%d", events.NameForKind(ev.Kind), p.UID)
	default:
		entry = events.NameForKind(ev.Kind)
	}

	if len(m.eventLog) >= maxLog {
		copy(m.eventLog, m.eventLog[1:])
		m.eventLog = m.eventLog[:maxLog-1]
	}
	m.eventLog = append(m.eventLog, entry)
}

// simulate stages this tick's events on the queue
// All arena state changes flow as events; the tracker applies them on dispatch
func (m *Monitor) simulate() {
	gridW := float64(m.width)
	gridH := float64(m.height - maxLog - 3)
	if gridW < 4 || gridH < 4 {
		return
	}

	if time.Since(m.lastSpawn).Milliseconds() > spawnMs && m.tracker.Len() < maxActors {
		uid := m.nextUID
		m.nextUID++
		m.queue.Push(events.GameEvent{
			Kind: events.EventActorSpawn,
			Payload: &events.ActorSpawnPayload{
				Species: speciesPool[rand.Intn(len(speciesPool))],
				UID:     uid,
				X:       1 + rand.Float64()*(gridW-2),
				Y:       1 + rand.Float64()*(gridH-2),
			},
		})
		m.queue.Push(events.GameEvent{
			Kind:    events.EventSoundRequest,
			Payload: &events.SoundRequestPayload{Sound: audio.SoundSpawnChirp},
		})
		m.lastSpawn = time.Now()
	}

	for _, a := range m.tracker.Actors() {
		if rand.Intn(despawnOdds) == 0 {
			m.queue.Push(events.GameEvent{
				Kind:    events.EventActorDespawn,
				Payload: &events.ActorDespawnPayload{UID: a.UID},
			})
			m.queue.Push(events.GameEvent{
				Kind:    events.EventSoundRequest,
				Payload: &events.SoundRequestPayload{Sound: audio.SoundDespawnFall},
			})
			continue
		}

		x := a.X + (rand.Float64()*2-1)*walkMaxSpeed
		y := a.Y + (rand.Float64()*2-1)*walkMaxSpeed
		if x < 0 {
			x = 0
		}
		if x > gridW-1 {
			x = gridW - 1
		}
		if y < 0 {
			y = 0
		}
		if y > gridH-1 {
			y = gridH - 1
		}
		m.queue.Push(events.GameEvent{
			Kind:    events.EventActorMove,
			Payload: &events.ActorMovePayload{UID: a.UID, X: x, Y: y},
		})
	}
}

func speciesStyle(species string) tcell.Style {
	switch species {
	case "Goblin":
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case "Wolf":
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	case "Slime":
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case "Wraith":
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	default:
		return tcell.StyleDefault
	}
}

func (m *Monitor) draw() {
	m.screen.Clear()

	title := "Arena Monitor - r: reset, Esc/Ctrl+C: quit"
	drawText(m.screen, 1, 0, title, tcell.StyleDefault.Bold(true))

	for _, a := range m.tracker.Actors() {
		x, y := int(a.X), int(a.Y)+1
		if x >= 0 && x < m.width && y >= 1 && y < m.height-maxLog-1 {
			m.screen.SetContent(x, y, rune(a.Species[0]), nil, speciesStyle(a.Species))
		}
	}

	logTop := m.height - maxLog - 1
	status := fmt.Sprintf("Actors: %d | Next uid: %d", m.tracker.Len(), m.nextUID)
	drawText(m.screen, 1, logTop-1, status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	for i, entry := range m.eventLog {
		drawText(m.screen, 1, logTop+i, entry, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	m.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (m *Monitor) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			m.queue.Push(events.GameEvent{Kind: events.EventArenaReset})
		}

	case *tcell.EventResize:
		m.width, m.height = m.screen.Size()
	}
	return true
}

func (m *Monitor) run() {
	ticker := time.NewTicker(tickMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- m.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !m.handleInput(ev) {
				return
			}

		case <-ticker.C:
			m.simulate()
			m.dispatcher.DispatchAll(m.queue)
			m.draw()
		}
	}
}

func main() {
	events.InitRegistry()

	m, err := NewMonitor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer m.screen.Fini()
	defer m.sounds.Cleanup()

	m.run()
}
