package scenario

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shinji-kodama/fleetload/internal/cargo"
	"github.com/shinji-kodama/fleetload/internal/model"
	"github.com/shinji-kodama/fleetload/internal/ship"
)

// Runner executes manifests. Ship listings, hazard notifications, echo
// messages and the messages of failed blocks are written to the transcript
// writer; diagnostics go to the logger.
type Runner struct {
	out    io.Writer
	logger *zap.Logger
	seq    *cargo.Sequence
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSequence makes the Runner draw serial numbers from seq instead of
// starting a fresh Sequence for every run.
func WithSequence(seq *cargo.Sequence) Option {
	return func(r *Runner) {
		if seq != nil {
			r.seq = seq
		}
	}
}

// NewRunner creates a Runner writing its transcript to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// world is the state of one run: the fleet, the containers by manifest id,
// and the ship that steps without an explicit ship refer to.
type world struct {
	fleet       *ship.Fleet
	containers  map[string]cargo.Container
	order       []string
	defaultShip *ship.Ship
}

// Run validates m, builds its ships and containers, and executes every
// block in order.
//
// A failing step aborts the rest of its block; the failure is written to
// the transcript and recorded in the Result, and the next block starts
// normally. Run itself only returns an error when the manifest is invalid.
func (r *Runner) Run(m *Manifest) (*Result, error) {
	if errs := Validate(m); len(errs) > 0 {
		return nil, errs
	}

	w, err := r.build(m)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scenario: m.Name,
		Blocks:   make([]BlockResult, 0, len(m.Blocks)),
	}

	for bi, block := range m.Blocks {
		label := blockLabel(block, bi)
		br := BlockResult{Name: label, FailedStep: -1}

		for si, step := range block.Steps {
			r.logger.Debug("Executing step",
				zap.String("block", label),
				zap.Int("step", si),
				zap.Stringer("op", step))

			if err := r.execute(w, step); err != nil {
				// The block is a protected region: report the failure and
				// skip the remaining steps of this block only.
				br.FailedStep = si
				br.FailedAction = step.Action
				br.Error = err.Error()
				br.err = err
				fmt.Fprintln(r.out, err.Error())

				r.logger.Warn("Block aborted",
					zap.String("block", label),
					zap.Int("step", si),
					zap.Stringer("op", step),
					zap.Bool("rule_violation", model.IsLoadRejection(err)),
					zap.Error(err))
				break
			}
			br.StepsRun++
		}

		br.Completed = br.FailedStep < 0
		br.Ships = snapshotShips(w.fleet)
		result.Blocks = append(result.Blocks, br)
	}

	result.Ships = snapshotShips(w.fleet)
	result.Containers = containerStates(w)
	return result, nil
}

// build constructs the fleet and the containers declared in m. Containers
// are built in manifest order, which fixes their serial numbers.
func (r *Runner) build(m *Manifest) (*world, error) {
	seq := r.seq
	if seq == nil {
		seq = cargo.NewSequence()
	}
	factory := cargo.NewFactoryWithSequence(seq)

	w := &world{
		fleet:      ship.NewFleet(),
		containers: make(map[string]cargo.Container, len(m.Containers)),
	}

	for _, spec := range m.Ships {
		s := ship.New(spec.Name, spec.MaxSpeed, spec.MaxContainers, spec.MaxWeight)
		if err := w.fleet.Add(spec.Key(), s); err != nil {
			return nil, err
		}
		if w.defaultShip == nil {
			w.defaultShip = s
		}
	}

	for _, spec := range m.Containers {
		cs, err := spec.CargoSpec()
		if err != nil {
			return nil, fmt.Errorf("container %q: %w", spec.ID, err)
		}
		c, err := factory.Build(cs)
		if err != nil {
			return nil, fmt.Errorf("container %q: %w", spec.ID, err)
		}
		w.containers[spec.ID] = c
		w.order = append(w.order, spec.ID)

		r.logger.Debug("Built container",
			zap.String("id", spec.ID),
			zap.String("serial", c.SerialNumber()),
			zap.String("kind", c.Kind().String()))
	}

	return w, nil
}

// execute performs a single step against the world.
func (r *Runner) execute(w *world, step Step) error {
	switch step.Action {
	case ActionLoad:
		return w.containers[step.Container].Load(*step.Weight)

	case ActionUnload:
		w.containers[step.Container].Unload()
		return nil

	case ActionBoard:
		return w.fleet.Board(w.shipFor(step.Ship), w.containers[step.Container])

	case ActionUnboard:
		if !w.fleet.Unboard(w.shipFor(step.Ship), w.containers[step.Container]) {
			r.logger.Debug("Container was not aboard", zap.String("container", step.Container))
		}
		return nil

	case ActionPrint:
		w.shipFor(step.Ship).PrintInfo(r.out)
		return nil

	case ActionNotify:
		c := w.containers[step.Container]
		if !cargo.NotifyHazard(c, r.out) {
			return fmt.Errorf("container %s cannot send hazard notifications", c.SerialNumber())
		}
		return nil

	case ActionEcho:
		fmt.Fprintln(r.out, step.Message)
		return nil

	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

// shipFor resolves a step's ship reference, falling back to the default ship.
func (w *world) shipFor(key string) *ship.Ship {
	if key == "" {
		return w.defaultShip
	}
	s, _ := w.fleet.Ship(key)
	return s
}

func snapshotShips(f *ship.Fleet) []ship.Snapshot {
	ships := f.Ships()
	out := make([]ship.Snapshot, 0, len(ships))
	for _, s := range ships {
		out = append(out, s.Snapshot())
	}
	return out
}

func containerStates(w *world) []ContainerState {
	out := make([]ContainerState, 0, len(w.order))
	for _, id := range w.order {
		c := w.containers[id]
		state := ContainerState{
			ID:           id,
			SerialNumber: c.SerialNumber(),
			Kind:         c.Kind(),
			LoadWeight:   c.LoadWeight(),
		}
		if carrier, ok := w.fleet.Carrier(c); ok {
			state.Ship = carrier.Name
		}
		out = append(out, state)
	}
	return out
}
