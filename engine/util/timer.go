package util

import (
	"fmt"
	"strings"
	"time"
)

type TimerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64
}

func (t *TimerState) averageDuration() float64 {
	return t.totalDuration / float64(t.executionCount)
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms", t.name, t.lastDuration, t.averageDuration())
}

type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

// Measure runs f and records its wall-clock duration under the given name.
func (t *Timer) Measure(name string, f func()) {
	start := time.Now()
	f()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	state, exists := t.states[name]
	if !exists {
		state = &TimerState{name: name}
		t.states[name] = state
		t.timerNames = append(t.timerNames, name)
	}
	state.lastDuration = elapsed
	state.totalDuration += elapsed
	state.executionCount++
}

func (t *Timer) String() string {
	lines := make([]string, 0, len(t.timerNames))
	for _, name := range t.timerNames {
		lines = append(lines, t.states[name].String())
	}
	return strings.Join(lines, "\n")
}
