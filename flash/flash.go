// Package flash shows a message banner that fades out and hides itself.
package flash

import (
	"context"
	"log"
	"sync"
	"time"

	"weather-widget/page"
)

// State of the banner
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// DefaultDuration is the length of one fade-out
const DefaultDuration = 3000 * time.Millisecond

// Controller plays the fade-out animation on one banner element.
// Plays are not deduplicated: a second Play while one is running animates
// the same element and the first one to finish hides it.
type Controller struct {
	doc       page.Document
	elementID string
	duration  time.Duration
	frame     time.Duration
	curve     CubicBezier

	mu     sync.Mutex
	active int
	plays  int
}

// NewController creates a banner controller for elementID
func NewController(doc page.Document, elementID string, duration, frame time.Duration) *Controller {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if frame <= 0 || frame > duration {
		frame = duration
	}
	return &Controller{
		doc:       doc,
		elementID: elementID,
		duration:  duration,
		frame:     frame,
		curve:     EaseInOut,
	}
}

// Duration returns the length of one fade-out
func (c *Controller) Duration() time.Duration {
	return c.duration
}

// State reports whether any play is in progress
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active > 0 {
		return Visible
	}
	return Hidden
}

// Plays returns how many plays have been started
func (c *Controller) Plays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}

// Play shows message, fades the banner from opaque to transparent and hides it.
// It blocks until the animation completes or ctx is done; the banner is
// hidden in both cases.
func (c *Controller) Play(ctx context.Context, message string) error {
	c.doc.SetText(c.elementID, message)
	c.doc.SetVisible(c.elementID, true)
	c.doc.SetOpacity(c.elementID, 1)

	c.mu.Lock()
	c.active++
	c.plays++
	c.mu.Unlock()

	defer func() {
		c.doc.SetVisible(c.elementID, false)
		c.mu.Lock()
		c.active--
		c.mu.Unlock()
	}()

	start := time.Now()
	ticker := time.NewTicker(c.frame)
	defer ticker.Stop()
	done := time.NewTimer(c.duration)
	defer done.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Banner animation on %s interrupted: %v", c.elementID, ctx.Err())
			return ctx.Err()
		case <-done.C:
			c.doc.SetOpacity(c.elementID, 0)
			return nil
		case now := <-ticker.C:
			progress := float64(now.Sub(start)) / float64(c.duration)
			c.doc.SetOpacity(c.elementID, 1-c.curve.At(progress))
		}
	}
}
