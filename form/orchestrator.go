// Package form handles search submissions from the widget page: it validates
// the input, fetches current weather and updates the page.
package form

import (
	"context"
	"log"
	"strings"
	"sync"

	"weather-widget/datasource"
	"weather-widget/flash"
	"weather-widget/location"
	"weather-widget/models"
	"weather-widget/page"
	"weather-widget/render"

	"github.com/google/uuid"
)

// State of the search form
type State string

const (
	Idle         State = "idle"
	Validating   State = "validating"
	Fetching     State = "fetching"
	ErrorVisible State = "error-visible"
)

// Outcome of one submission
type Outcome string

const (
	OutcomeInvalid   Outcome = "invalid"
	OutcomeRendered  Outcome = "rendered"
	OutcomeHTTPError Outcome = "http-error"
	OutcomeTransport Outcome = "transport-error"
	OutcomeStale     Outcome = "stale"
	OutcomeIgnored   Outcome = "ignored"
)

// DefaultTransportMessage is shown when the provider cannot be reached
const DefaultTransportMessage = "Unable to reach the weather service"

// Result describes what happened to one submission
type Result struct {
	ID             string                `json:"id"`
	Input          string                `json:"input"`
	Classification string                `json:"classification"`
	Query          string                `json:"query,omitempty"`
	Outcome        Outcome               `json:"outcome"`
	Record         *models.WeatherRecord `json:"record,omitempty"`
	Message        string                `json:"message,omitempty"`
	Err            error                 `json:"-"`
}

// Options tune how failures are presented
type Options struct {
	// SilentTransportErrors drops transport failures without any page feedback
	SilentTransportErrors bool

	// TransportMessage is the banner text for transport failures
	TransportMessage string

	// DetachBanner plays the error banner in the background so Submit
	// returns as soon as the fetch has resolved
	DetachBanner bool
}

// Orchestrator runs the submit/keystroke state machine for one page
type Orchestrator struct {
	doc    page.Document
	source datasource.WeatherSource
	banner *flash.Controller
	opts   Options

	mu         sync.Mutex
	state      State
	armed      bool
	generation uint64

	banners sync.WaitGroup
}

// NewOrchestrator wires a page, a weather source and a banner controller
func NewOrchestrator(doc page.Document, source datasource.WeatherSource, banner *flash.Controller, opts Options) *Orchestrator {
	if opts.TransportMessage == "" {
		opts.TransportMessage = DefaultTransportMessage
	}
	return &Orchestrator{
		doc:    doc,
		source: source,
		banner: banner,
		opts:   opts,
		state:  Idle,
	}
}

// State returns the current form state
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Armed reports whether keystrokes currently re-run validation
func (o *Orchestrator) Armed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.armed
}

// Wait blocks until every detached banner animation has finished
func (o *Orchestrator) Wait() {
	o.banners.Wait()
}

// Submit handles a form submission with the raw search field value
func (o *Orchestrator) Submit(ctx context.Context, raw string) Result {
	return o.process(ctx, raw)
}

// Keystroke handles an edit of the search field. It only does work after
// an invalid submission, until the input validates again.
func (o *Orchestrator) Keystroke(ctx context.Context, raw string) Result {
	if !o.Armed() {
		return Result{
			ID:             uuid.NewString(),
			Input:          raw,
			Classification: location.Invalid.String(),
			Outcome:        OutcomeIgnored,
		}
	}
	return o.process(ctx, raw)
}

func (o *Orchestrator) process(ctx context.Context, raw string) Result {
	input := strings.TrimSpace(raw)
	result := Result{ID: uuid.NewString(), Input: input}

	o.setState(Validating)
	classified := location.Classify(input)
	result.Classification = classified.Classification.String()

	if !classified.Valid() {
		o.doc.SetVisible(page.InputErrorID, true)
		o.mu.Lock()
		o.armed = true
		o.state = Idle
		o.mu.Unlock()

		log.Printf("Submission %s: %q is not a valid location", result.ID, input)
		result.Outcome = OutcomeInvalid
		return result
	}

	o.doc.SetVisible(page.InputErrorID, false)
	result.Query = classified.Query

	o.mu.Lock()
	o.armed = false
	o.generation++
	gen := o.generation
	o.state = Fetching
	o.mu.Unlock()

	record, err := o.source.FetchWeatherData(ctx, classified.Query)

	if !o.isCurrent(gen) {
		log.Printf("Submission %s: discarding stale response for %s", result.ID, classified.Query)
		result.Outcome = OutcomeStale
		result.Err = err
		return result
	}

	if err != nil {
		result.Err = err
		if httpErr, ok := datasource.AsHTTPError(err); ok {
			log.Printf("Submission %s: %s rejected %s: %v", result.ID, o.source.Name(), classified.Query, err)
			result.Outcome = OutcomeHTTPError
			result.Message = httpErr.Message
			o.showBanner(ctx, gen, httpErr.Message)
			return result
		}

		log.Printf("Submission %s: error fetching weather for %s from %s: %v", result.ID, classified.Query, o.source.Name(), err)
		result.Outcome = OutcomeTransport
		if o.opts.SilentTransportErrors {
			o.finish(gen)
			return result
		}
		result.Message = o.opts.TransportMessage
		o.showBanner(ctx, gen, o.opts.TransportMessage)
		return result
	}

	render.Forecast(o.doc, record)
	o.finish(gen)

	log.Printf("Submission %s: updated weather data for %s from %s", result.ID, classified.Query, o.source.Name())
	result.Outcome = OutcomeRendered
	result.Record = &record
	return result
}

// showBanner plays the error banner and returns the form to idle afterwards
func (o *Orchestrator) showBanner(ctx context.Context, gen uint64, message string) {
	o.setState(ErrorVisible)

	play := func(ctx context.Context) {
		if err := o.banner.Play(ctx, message); err != nil {
			log.Printf("Error banner stopped early: %v", err)
		}
		o.finish(gen)
	}

	if !o.opts.DetachBanner {
		play(ctx)
		return
	}

	o.banners.Add(1)
	go func() {
		defer o.banners.Done()
		play(context.WithoutCancel(ctx))
	}()
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
}

func (o *Orchestrator) isCurrent(gen uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return gen == o.generation
}

// finish returns to idle unless a newer submission has taken over
func (o *Orchestrator) finish(gen uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen == o.generation {
		o.state = Idle
	}
}
