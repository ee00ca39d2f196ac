package sim

import "fmt"

// Passes renders one frame from the current world state. The shadow pass
// always runs before the main pass.
type Passes interface {
	ShadowPass(w *World)
	MainPass(w *World)
}

// World owns everything that changes from tick to tick.
type World struct {
	Camera    *OrbitCamera
	Light     *Spotlight
	Vehicle   *Vehicle
	Obstacles []Obstacle
	Edge      float64
	Events    *EventBus

	Frame uint64

	touchingObstacle bool
	touchingBoundary bool
}

// NewWorld validates the obstacle set and places the camera, light and
// vehicle at their starting poses.
func NewWorld(obstacles []Obstacle) (*World, error) {
	if err := ValidateObstacles(obstacles); err != nil {
		return nil, fmt.Errorf("invalid obstacle set: %w", err)
	}
	w := &World{
		Camera:    NewOrbitCamera(),
		Light:     NewSpotlight(),
		Vehicle:   NewVehicle(),
		Obstacles: obstacles,
		Edge:      IslandEdge,
		Events:    NewEventBus(),
	}
	return w, nil
}

// Tick runs one frame: camera, spotlight, vehicle (with every collision
// resolution), contact events, then the shadow and main passes.
func (w *World) Tick(in Snapshot, passes Passes) Step {
	w.Camera.Apply(in)
	w.Light.Orbit(in.Scroll)

	speed := w.Vehicle.Speed
	st := w.Vehicle.Update(in, w.Obstacles, w.Edge)
	w.emitContacts(st, speed)

	if passes != nil {
		passes.ShadowPass(w)
		passes.MainPass(w)
	}
	w.Frame++
	return st
}

// emitContacts publishes a hit only on the tick the contact begins, so a car
// pressed against a wall does not fire every frame.
func (w *World) emitContacts(st Step, speed float64) {
	p := w.Vehicle.Position
	if st.ObstacleHit && !w.touchingObstacle {
		w.Events.Emit(Event{Type: EventObstacleHit, X: p.X, Z: p.Z, Speed: speed, Category: st.Hit})
	}
	if st.BoundaryHit && !w.touchingBoundary {
		w.Events.Emit(Event{Type: EventBoundaryHit, X: p.X, Z: p.Z, Speed: speed})
	}
	w.touchingObstacle = st.ObstacleHit
	w.touchingBoundary = st.BoundaryHit
}
