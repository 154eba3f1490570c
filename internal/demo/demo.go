// Package demo holds runnable scenarios exercising the signal package the
// way an application would. Each scenario reports whether the library
// behaved as expected.
package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrUnknownScenario is returned by Run for a name not in Scenarios.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is one named check.
type Scenario struct {
	Name        string
	Description string
	Run         func() bool
}

// Scenarios lists every scenario in run order.
var Scenarios = []Scenario{
	{"basic", "owning and non-owning connections on a two-signature signal", basic},
	{"basic-example", "single signature, func slot", basicExample},
	{"disconnect-at-emit", "slot closes its own connection and re-emits", disconnectAtEmit},
	{"full-example", "emitter type exposing connect, receiver type holding its connection", fullExample},
	{"move", "slots share the emitted value within a pass", move},
	{"move-connection", "moved connections keep receiving", moveConnection},
	{"multi-signature", "one catch-all slot for three signatures", multiSignature},
	{"signal-destroyed-before-slot", "closing the signal before its connection", signalDestroyedBeforeSlot},
}

// Lookup returns the scenario called name.
func Lookup(name string) (Scenario, bool) {
	for _, sc := range Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// Result is the outcome of one scenario.
type Result struct {
	Name   string
	Passed bool
	Panic  any
}

// Run runs the named scenarios, or all of them when names is empty, and
// writes one progress line per scenario to w.
func Run(w io.Writer, names ...string) ([]Result, error) {
	selected := Scenarios
	if len(names) > 0 {
		selected = make([]Scenario, 0, len(names))
		for _, name := range names {
			sc, ok := Lookup(name)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownScenario, "%q", name)
			}
			selected = append(selected, sc)
		}
	}

	results := make([]Result, 0, len(selected))
	for _, sc := range selected {
		fmt.Fprintf(w, "Running %s test... ", sc.Name)
		res := runOne(sc)
		if res.Passed {
			fmt.Fprintln(w, "OK")
		} else {
			fmt.Fprintln(w, "FAILED")
		}
		results = append(results, res)
	}
	return results, nil
}

// runOne turns a panicking scenario into a failure.
func runOne(sc Scenario) (res Result) {
	res.Name = sc.Name
	defer func() {
		if r := recover(); r != nil {
			res.Passed = false
			res.Panic = r
		}
	}()
	res.Passed = sc.Run()
	return res
}

// Passed counts the passing results.
func Passed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Passed {
			n++
		}
	}
	return n
}
