package input

import "sync"

// Point is a recorded pointer position.
type Point struct {
	X float64
	Y float64
}

// Recorder is a test implementation of Injector that captures every call
// instead of touching the OS.
type Recorder struct {
	mu      sync.Mutex
	moves   []Point
	clicks  []Button
	scrolls []int
	err     error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetError makes every subsequent call return err.
func (r *Recorder) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// MoveTo records the target position.
func (r *Recorder) MoveTo(x, y float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.moves = append(r.moves, Point{X: x, Y: y})
	return nil
}

// Click records the button.
func (r *Recorder) Click(button Button) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.clicks = append(r.clicks, button)
	return nil
}

// Scroll records the amount.
func (r *Recorder) Scroll(amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.scrolls = append(r.scrolls, amount)
	return nil
}

// Moves returns a copy of the recorded pointer positions.
func (r *Recorder) Moves() []Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Point(nil), r.moves...)
}

// Clicks returns a copy of the recorded button presses.
func (r *Recorder) Clicks() []Button {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Button(nil), r.clicks...)
}

// Scrolls returns a copy of the recorded scroll amounts.
func (r *Recorder) Scrolls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.scrolls...)
}
