package client

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"pokeforge/src/models"
)

// Workflow drives one creation form: validation, single-flight submission and
// gallery update. The generation call is the only suspension point; while it
// is in flight further submits are no-ops, so one workflow instance never has
// overlapping requests. There is no cancellation beyond the caller's context.
type Workflow struct {
	api      models.GenerateCaller
	gallery  *Gallery
	notifier models.Notifier

	Name        string
	Description string
	Types       *Picker
	Abilities   *Picker

	submitting atomic.Bool
}

func NewWorkflow(api models.GenerateCaller, gallery *Gallery, notifier models.Notifier) *Workflow {
	return &Workflow{
		api:       api,
		gallery:   gallery,
		notifier:  notifier,
		Types:     NewPicker(models.MaxAnimalTypes),
		Abilities: NewPicker(models.MaxAbilities),
	}
}

// ToggleType flips an animal-type selection, warning when the cap rejects it.
func (w *Workflow) ToggleType(option string) {
	if !w.Types.Toggle(option) {
		w.notifier.Warn(fmt.Sprintf("You can select at most %d animal types", models.MaxAnimalTypes))
	}
}

// ToggleAbility flips an ability selection, warning when the cap rejects it.
func (w *Workflow) ToggleAbility(option string) {
	if !w.Abilities.Toggle(option) {
		w.notifier.Warn(fmt.Sprintf("You can select at most %d abilities", models.MaxAbilities))
	}
}

// Submit validates the form and runs one generation request. On success the
// new entry lands at the front of the gallery and the form is cleared; on
// failure the gallery is untouched. Either way the workflow returns to idle.
func (w *Workflow) Submit(ctx context.Context) {
	if !w.submitting.CompareAndSwap(false, true) {
		// Already submitting; duplicate submits are dropped.
		return
	}
	defer w.submitting.Store(false)

	if msg := w.validate(); msg != "" {
		w.notifier.Error(msg)
		return
	}

	req := &models.GenerateRequest{
		Name:        strings.TrimSpace(w.Name),
		Description: strings.TrimSpace(w.Description),
		AnimalTypes: w.Types.Selected(),
		Abilities:   w.Abilities.Selected(),
	}

	resp, err := w.api.Generate(ctx, req)
	if err != nil {
		w.notifier.Error("Generation failed, please try again")
		return
	}

	w.gallery.Prepend(Entry{
		ID:          uuid.NewString(),
		Name:        req.Name,
		AnimalTypes: req.AnimalTypes,
		Abilities:   req.Abilities,
		ImageURL:    resp.ImageURL,
		CreatedAt:   time.Now(),
	})

	w.reset()
	w.notifier.Success(fmt.Sprintf("%s has been created!", req.Name))
}

// Submitting reports whether a request is currently in flight.
func (w *Workflow) Submitting() bool {
	return w.submitting.Load()
}

func (w *Workflow) validate() string {
	if strings.TrimSpace(w.Name) == "" {
		return "Name is required"
	}
	if len(w.Name) > models.MaxNameLength {
		return "Name is too long"
	}
	if len(w.Types.Selected()) == 0 {
		return "Select at least one animal type"
	}
	if len(w.Abilities.Selected()) == 0 {
		return "Select at least one ability"
	}
	return ""
}

func (w *Workflow) reset() {
	w.Name = ""
	w.Description = ""
	w.Types.Clear()
	w.Abilities.Clear()
}
