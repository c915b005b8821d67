package scenario

import (
	"fmt"
	"math"
	"strings"

	"github.com/shinji-kodama/fleetload/internal/model"
)

// ValidationError represents a specific validation failure in a manifest.
type ValidationError struct {
	// Field is the path of the offending field
	// (e.g. "blocks[0].steps[2].container").
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("manifest validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a manifest.
type ValidationErrors []ValidationError

// Error joins all problems, one per line.
func (errs ValidationErrors) Error() string {
	lines := make([]string, 0, len(errs))
	for i := range errs {
		lines = append(lines, errs[i].Error())
	}
	return strings.Join(lines, "\n")
}

// Validate checks a decoded manifest for structural problems. It returns
// every problem found (empty = valid) rather than stopping at the first.
//
// Rule violations that only happen at run time (an overfilled container,
// a full ship, a cold reefer, a negative load weight) are not validation
// errors: they are the outcomes a scenario exists to exercise. Numbers that
// are NaN or infinite (YAML .nan and .inf) are always problems.
func Validate(m *Manifest) ValidationErrors {
	var errs ValidationErrors
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Ships: at least one, unique keys, non-negative caps.
	if len(m.Ships) == 0 {
		add("ships", "at least one ship is required")
	}
	shipKeys := make(map[string]bool, len(m.Ships))
	for i, s := range m.Ships {
		field := fmt.Sprintf("ships[%d]", i)
		if s.Name == "" {
			add(field+".name", "name must not be empty")
		}
		key := s.Key()
		if key != "" {
			if shipKeys[key] {
				add(field+".id", "duplicate ship id %q", key)
			}
			shipKeys[key] = true
		}
		checkCap(field+".maxSpeed", s.MaxSpeed, add)
		if s.MaxContainers < 0 {
			add(field+".maxContainers", "must not be negative")
		}
		checkCap(field+".maxWeight", s.MaxWeight, add)
	}

	// Containers: unique ids, valid kinds, non-negative dimensions.
	kinds := make(map[string]model.ContainerKind, len(m.Containers))
	for i, c := range m.Containers {
		field := fmt.Sprintf("containers[%d]", i)
		if c.ID == "" {
			add(field+".id", "id must not be empty")
		} else if _, dup := kinds[c.ID]; dup {
			add(field+".id", "duplicate container id %q", c.ID)
		}

		spec, err := c.CargoSpec()
		if err != nil {
			add(field+".kind", "%v", err)
		} else if err := spec.Dimensions.Validate(); err != nil {
			add(field, "%v", err)
		}
		if !isFinite(c.Pressure) {
			add(field+".pressure", "must be a finite number")
		}
		if !isFinite(c.Temperature) {
			add(field+".temperature", "must be a finite number")
		}
		if c.ID != "" {
			kinds[c.ID] = spec.Kind
		}
	}

	// Blocks and steps: known actions, resolvable references.
	if len(m.Blocks) == 0 {
		add("blocks", "at least one block is required")
	}
	for bi, b := range m.Blocks {
		if len(b.Steps) == 0 {
			add(fmt.Sprintf("blocks[%d].steps", bi), "block %q has no steps", blockLabel(b, bi))
		}
		for si, step := range b.Steps {
			field := fmt.Sprintf("blocks[%d].steps[%d]", bi, si)
			validateStep(step, field, kinds, shipKeys, add)
		}
	}

	return errs
}

// validateStep checks a single step's action and references.
func validateStep(
	step Step,
	field string,
	kinds map[string]model.ContainerKind,
	shipKeys map[string]bool,
	add func(field, format string, args ...interface{}),
) {
	if !step.Action.IsValid() {
		add(field+".action", "unknown action %q", step.Action)
		return
	}

	if step.Action.needsContainer() {
		kind, ok := kinds[step.Container]
		switch {
		case step.Container == "":
			add(field+".container", "%s requires a container", step.Action)
		case !ok:
			add(field+".container", "unknown container %q", step.Container)
		case step.Action == ActionNotify && kind != "" && !kind.IsHazardous():
			add(field+".container", "%s containers do not send hazard notifications", kind)
		}
	}

	if step.Action.usesShip() && step.Ship != "" && !shipKeys[step.Ship] {
		add(field+".ship", "unknown ship %q", step.Ship)
	}

	// Fields the action does not read are rejected, mirroring the decoder's
	// refusal of unknown keys.
	unused := func(name string, set bool) {
		if set {
			add(field+"."+name, "field %s is not used by action %s", name, step.Action)
		}
	}
	unused("container", !step.Action.needsContainer() && step.Container != "")
	unused("ship", !step.Action.usesShip() && step.Ship != "")
	unused("weight", step.Action != ActionLoad && step.Weight != nil)
	unused("message", step.Action != ActionEcho && step.Message != "")

	switch step.Action {
	case ActionLoad:
		if step.Weight == nil {
			add(field+".weight", "load requires a weight")
		} else if !isFinite(*step.Weight) {
			add(field+".weight", "must be a finite number")
		}
	case ActionEcho:
		if step.Message == "" {
			add(field+".message", "echo requires a message")
		}
	}
}

// checkCap reports a ship cap that is NaN, infinite or negative.
func checkCap(field string, v float64, add func(field, format string, args ...interface{})) {
	switch {
	case !isFinite(v):
		add(field, "must be a finite number")
	case v < 0:
		add(field, "must not be negative")
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
