package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flipmatch/audio"
	"github.com/lixenwraith/flipmatch/constants"
	"github.com/lixenwraith/flipmatch/content"
	"github.com/lixenwraith/flipmatch/core"
	"github.com/lixenwraith/flipmatch/engine"
	"github.com/lixenwraith/flipmatch/events"
	"github.com/lixenwraith/flipmatch/input"
	"github.com/lixenwraith/flipmatch/render"
	"github.com/lixenwraith/flipmatch/solver"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/flipmatch.log")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	difficultyFlag = flag.String("difficulty", "chill", "Starting difficulty: chill, focus, intense")
)

func parseDifficulty(name string) (content.DifficultyID, error) {
	for _, d := range content.All() {
		if d.ID.String() == name {
			return d.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", name)
}

// game bundles the loop state of one TUI run
type game struct {
	screen   tcell.Screen
	session  *engine.Session
	router   *events.Router[*engine.Session]
	machine  *input.Machine
	renderer *render.BoardRenderer
	sound    *audio.SoundManager

	cursor    int
	autoSolve *solver.Solver
}

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nFLIPMATCH CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Catalog preconditions are startup-fatal, never checked per call
	if err := content.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid difficulty catalog: %v\n", err)
		os.Exit(1)
	}

	difficulty, err := parseDifficulty(*difficultyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Goroutines spawned via core.Go reset the terminal before dying
	core.SetCrashHandler(func(any) {
		screen.Fini()
	})

	queue := events.NewEventQueue()
	session, err := engine.NewSession(difficulty, engine.NewMonotonicTimeProvider(), queue, engine.DefaultConfig())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}

	router := events.NewRouter[*engine.Session](queue)

	// Sound is a collaborator on the event stream; initialization failure
	// means a silent game, not an error
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	} else {
		defer sound.Cleanup()
		router.Register(audio.NewHandler(sound))
	}
	if *muteFlag && !sound.IsMuted() {
		sound.ToggleMute()
	}

	g := &game{
		screen:   screen,
		session:  session,
		router:   router,
		machine:  input.NewMachine(),
		renderer: render.NewBoardRenderer(screen),
		sound:    sound,
	}
	g.run()
}

func (g *game) run() {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
			// Route collaborator events immediately, ahead of the frame tick
			g.router.DispatchAll(g.session)

		case <-frameTicker.C:
			now := time.Now()
			g.session.Update(now)
			g.stepSolver(now)
			g.router.DispatchAll(g.session)
			g.renderer.Draw(g.session.Snapshot(), g.cursor, g.sound.IsMuted())
		}
	}
}

func (g *game) stepSolver(now time.Time) {
	if g.autoSolve == nil {
		return
	}
	done, err := g.autoSolve.Step(now)
	if done {
		if err != nil {
			log.Printf("solver stopped: %v", err)
		}
		g.autoSolve = nil
	}
}

func (g *game) handleInput(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		g.screen.Sync()

	case input.IntentMotion:
		g.moveCursor(intent.DX, intent.DY)

	case input.IntentReveal:
		// Human play interrupts an active solver run
		g.autoSolve = nil
		g.session.Reveal(g.cursor)

	case input.IntentReset:
		g.restart(g.session.Difficulty().ID)

	case input.IntentDifficulty:
		g.restart(intent.Difficulty)

	case input.IntentToggleMute:
		g.sound.ToggleMute()

	case input.IntentAutoSolve:
		if g.autoSolve == nil {
			g.autoSolve = solver.New(g.session, engine.DefaultConfig())
		} else {
			g.autoSolve = nil
		}
	}
	return true
}

func (g *game) restart(id content.DifficultyID) {
	g.autoSolve = nil
	g.cursor = 0
	if err := g.session.Reset(id); err != nil {
		log.Printf("reset failed: %v", err)
	}
}

func (g *game) moveCursor(dx, dy int) {
	cfg := g.session.Difficulty()
	cols := cfg.Columns
	count := cfg.CardCount()

	col := g.cursor%cols + dx
	row := g.cursor/cols + dy

	rows := (count + cols - 1) / cols
	if col < 0 {
		col = cols - 1
	}
	if col >= cols {
		col = 0
	}
	if row < 0 {
		row = rows - 1
	}
	if row >= rows {
		row = 0
	}

	next := row*cols + col
	if next >= count {
		next = count - 1
	}
	g.cursor = next
}
