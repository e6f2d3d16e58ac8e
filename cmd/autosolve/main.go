// Command autosolve runs the auto-solver against a fresh session and
// prints the outcome. It is the scripted-verification entry point: the
// whole engine is exercised end-to-end through the public protocol with
// no human timing variance.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/flipmatch/constants"
	"github.com/lixenwraith/flipmatch/content"
	"github.com/lixenwraith/flipmatch/engine"
	"github.com/lixenwraith/flipmatch/format"
	"github.com/lixenwraith/flipmatch/solver"
)

var (
	difficultyFlag = flag.String("difficulty", "chill", "Difficulty to solve: chill, focus, intense")
	fastFlag       = flag.Bool("fast", false, "Drive a mock clock instead of waiting out real delays")
)

func parseDifficulty(name string) (content.DifficultyID, bool) {
	for _, d := range content.All() {
		if d.ID.String() == name {
			return d.ID, true
		}
	}
	return 0, false
}

func main() {
	flag.Parse()

	if err := content.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid difficulty catalog: %v\n", err)
		os.Exit(1)
	}

	id, ok := parseDifficulty(*difficultyFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", *difficultyFlag)
		os.Exit(1)
	}

	var tp engine.TimeProvider = engine.NewMonotonicTimeProvider()
	if *fastFlag {
		tp = engine.NewMockTimeProvider(time.Now())
	}

	session, err := engine.NewSession(id, tp, nil, engine.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "session creation failed: %v\n", err)
		os.Exit(1)
	}

	sv := solver.New(session, engine.DefaultConfig())

	if *fastFlag {
		err = sv.Run(tp)
	} else {
		err = runWithProgress(session, sv, tp)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "solver stopped: %v\n", err)
		os.Exit(1)
	}

	snap := session.Snapshot()
	fmt.Printf("solved %s in %s, %s moves, %s pairs\n",
		snap.Difficulty,
		format.ClockString(snap.ElapsedMs),
		format.OrdinalDigits(snap.Moves, 2),
		format.OrdinalDigits(snap.Matches, 2),
	)
}

// runWithProgress drives the solver under real time, reporting elapsed at
// the display-tick cadence
func runWithProgress(session *engine.Session, sv *solver.Solver, tp engine.TimeProvider) error {
	var lastPrint time.Time

	for {
		now := tp.Now()
		session.Update(now)

		done, err := sv.Step(now)
		if done {
			fmt.Println()
			return err
		}

		if now.Sub(lastPrint) >= constants.ClockTickInterval {
			fmt.Printf("\r%s  moves %s  pairs %s/%s ",
				format.ClockString(session.ElapsedMs()),
				format.OrdinalDigits(session.Moves(), 2),
				format.OrdinalDigits(session.Matches(), 2),
				format.OrdinalDigits(session.Difficulty().Pairs, 2),
			)
			lastPrint = now
		}

		time.Sleep(10 * time.Millisecond)
	}
}
