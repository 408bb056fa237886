package game

import (
	"fmt"
	"log"

	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/application/state"
)

// Operation tracks a single scene load request.
//
// Done may be waited on from any goroutine. State and Err are written
// by the game loop and must only be read on the game loop goroutine.
type Operation struct {
	ID    scene.ID
	Mode  scene.LoadMode
	Async bool

	state state.LoadState
	err   error
	done  chan struct{}

	// Written by the loading goroutine before done is closed.
	result   scene.Scene
	buildErr error
}

// State returns the current load state.
func (op *Operation) State() state.LoadState {
	return op.state
}

// Err returns the failure reason once the state is StateFailed.
func (op *Operation) Err() error {
	return op.err
}

// Done is closed once the scene has been built, successfully or not.
// The load is applied on the next Update after that.
func (op *Operation) Done() <-chan struct{} {
	return op.done
}

// LoadOperation starts a scene load and returns its Operation.
// Unknown IDs and factory errors fail the operation without affecting
// loaded scenes.
func (g *Game) LoadOperation(id scene.ID, mode scene.LoadMode, async bool) *Operation {
	op := &Operation{
		ID:    id,
		Mode:  mode,
		Async: async,
		state: state.StateQueued,
		done:  make(chan struct{}),
	}

	factory, ok := g.registry.Factory(id)
	if !ok {
		close(op.done)
		g.fail(op, fmt.Errorf("scene %d is not registered", id))
		return op
	}

	op.state = state.StateLoading
	if !async {
		op.result, op.buildErr = factory()
		close(op.done)
		g.finish(op)
		return op
	}

	g.pending = append(g.pending, op)
	go func() {
		op.result, op.buildErr = factory()
		close(op.done)
	}()
	return op
}

// applyFinished applies completed async loads in request order.
// A load still building blocks the ones queued after it.
func (g *Game) applyFinished() {
	for len(g.pending) > 0 {
		op := g.pending[0]
		select {
		case <-op.done:
		default:
			return
		}
		g.pending[0] = nil
		g.pending = g.pending[1:]
		g.finish(op)
	}
}

func (g *Game) finish(op *Operation) {
	if op.buildErr != nil {
		g.fail(op, fmt.Errorf("failed to build scene %s: %w", g.registry.Name(op.ID), op.buildErr))
		return
	}
	if op.result == nil {
		g.fail(op, fmt.Errorf("scene %s factory returned no scene", g.registry.Name(op.ID)))
		return
	}
	g.apply(op.ID, op.result, op.Mode)
	op.result = nil
	op.state = state.StateLoaded
}

func (g *Game) fail(op *Operation, err error) {
	op.err = err
	op.state = state.StateFailed
	log.Printf("Scene load failed: %v", err)
}
