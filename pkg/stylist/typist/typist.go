// Package typist produces the 1-2 second pause shown as a typing indicator
// before every assistant reply resolves.
package typist

import (
	"math/rand"
	"time"
)

type Typist struct {
	sleep func(time.Duration)
	rand  func() float64
}

func New() *Typist {
	return &Typist{sleep: time.Sleep, rand: rand.Float64}
}

// NewWith injects the sleeper and randomness source, for tests.
func NewWith(sleep func(time.Duration), random func() float64) *Typist {
	return &Typist{sleep: sleep, rand: random}
}

// Pause blocks for a randomized 1-2 seconds.
func (t *Typist) Pause() {
	t.sleep(time.Second + time.Duration(t.rand()*float64(time.Second)))
}
