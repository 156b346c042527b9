package window

import (
	"fmt"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/i18n"
)

// Create resolves the accumulated chain against the spec and constructs the
// window. It is the terminal step of a chain: declared fields are walked in
// declaration order, conflicts and requirements are checked, stored values
// (or defaults) are applied to the backend, the backend builds the frame,
// and the unique OnInit hook runs before any dispatch. The returned Window
// is ready for Run.
//
// Cross-field failures are reported as Issues naming the offending fields;
// backend construction failures are propagated unchanged.
func (b Builder) Create(backend Backend) (*Window, error) {
	if backend == nil {
		return nil, rokoko.Issues{{
			Field:   "backend",
			Code:    rokoko.CodeInvalidType,
			Message: i18n.T(rokoko.CodeInvalidType, nil),
			Hint:    "Create requires a non-nil Backend",
		}}
	}

	sp := b.spec
	present := make(map[string]bool, len(probes))
	for name, probe := range probes {
		present[name] = probe(b.chain)
	}

	if iss := checkConstraints(sp, present); len(iss) > 0 {
		return nil, iss
	}

	for _, f := range sp.Fields {
		if err := b.applyField(f, backend); err != nil {
			return nil, err
		}
	}

	frame, err := backend.Build()
	if err != nil {
		return nil, err
	}

	l := newLoop(b.clock)
	for _, e := range sp.Events {
		b.resolveEvent(e, l)
	}
	if te, ok := rokoko.Get[TickEvery](b.chain); ok {
		l.tickEvery = te.Every
	}

	w := &Window{frame: frame, loop: l}
	// Unique callbacks run exactly once, now, before any dispatch.
	for _, e := range sp.Events {
		if e.Unique && e.Name == "on_init" && l.onInit != nil {
			l.onInit(w)
		}
	}
	return w, nil
}

// checkConstraints evaluates declared conflicts and requirements over the
// presence map. Conflicts are declared symmetrically, so each pair is
// reported once, from the side declared first.
func checkConstraints(sp *Spec, present map[string]bool) rokoko.Issues {
	order := make(map[string]int, len(sp.Fields))
	for i, f := range sp.Fields {
		order[f.Name] = i
	}

	var iss rokoko.Issues
	for _, f := range sp.Fields {
		if !present[f.Name] {
			continue
		}
		for _, c := range f.ConflictsWith {
			if present[c] && order[f.Name] < order[c] {
				iss = append(iss, rokoko.Issue{
					Field:   f.Name,
					Code:    rokoko.CodeConflict,
					Message: i18n.T(rokoko.CodeConflict, nil),
					Hint:    fmt.Sprintf("cannot have both %q and %q", f.Name, c),
					Params:  map[string]any{"with": c},
				})
			}
		}
		for _, r := range f.Requires {
			if !present[r] {
				iss = append(iss, rokoko.Issue{
					Field:   f.Name,
					Code:    rokoko.CodeRequirementMissing,
					Message: i18n.T(rokoko.CodeRequirementMissing, nil),
					Hint:    fmt.Sprintf("%q requires %q", f.Name, r),
					Params:  map[string]any{"requires": r},
				})
			}
		}
	}
	return iss
}

// applyField applies one declared field's effect to the backend: the stored
// value when present, the declared default otherwise, or nothing.
func (b Builder) applyField(f FieldSpec, target Backend) error {
	switch f.Name {
	case "title":
		if t, ok := rokoko.Get[Title](b.chain); ok {
			target.SetTitle(t.Value)
			return nil
		}
		if s, ok := f.Default.(string); ok {
			target.SetTitle(s)
		}
	case "size":
		s, ok := rokoko.Get[Size](b.chain)
		if !ok {
			return nil
		}
		if s.Value.Len() != 2 {
			return rokoko.Issues{{
				Field:   "size",
				Code:    rokoko.CodeInvalidType,
				Message: i18n.T(rokoko.CodeInvalidType, nil),
				Hint:    "size must be a 2-component vector",
				Params:  map[string]any{"len": s.Value.Len()},
			}}
		}
		class := Physical
		if rokoko.Has[SizeIsLogical](b.chain) {
			class = Logical
		}
		target.SetInnerSize(InnerSize{Width: s.Value.At(0), Height: s.Value.At(1), Class: class})
	case "maximized":
		if rokoko.Has[Maximized](b.chain) {
			target.SetMaximized(true)
		}
	case "size_is_logical", "tick_every":
		// size_is_logical folds into the size effect; tick_every is
		// consumed by the loop.
	}
	return nil
}

// resolveEvent binds one declared event slot on the loop: the stored
// callback when present, the declared default behavior otherwise.
func (b Builder) resolveEvent(e EventSpec, l *loop) {
	switch e.Name {
	case "on_init":
		if cb, ok := rokoko.Get[onInitFn](b.chain); ok {
			l.onInit = cb.fn
		}
	case "on_close":
		if cb, ok := rokoko.Get[onCloseFn](b.chain); ok {
			l.onClose = cb.fn
		} else if e.Default == "close" {
			l.onClose = (*Window).Close
		} else {
			l.onClose = func(*Window) {}
		}
	case "on_exit":
		if cb, ok := rokoko.Get[onExitFn](b.chain); ok {
			l.onExit = cb.fn
		}
	case "on_tick":
		if cb, ok := rokoko.Get[onTickFn](b.chain); ok {
			l.onTick = cb.fn
		}
	}
}
