package simkit

import "github.com/hajimehoshi/ebiten/v2"

// World holds the per-simulation state the hooks operate on.
type World struct {
	Camera *Camera
	width  int
	height int
}

// SpawnCamera attaches a fresh 2D camera to the world and returns it.
func (w *World) SpawnCamera() *Camera {
	w.Camera = NewCamera()
	return w.Camera
}

// Size returns the world's logical view size in pixels.
func (w *World) Size() (width, height int) {
	return w.width, w.height
}

// App is the simulation application: window configuration, a one-time
// setup hook, per-frame update and draw hooks, and the engine run loop.
type App struct {
	title  string
	width  int
	height int
	setup  func(*World)
	update func(*World, float64)
	draw   func(*World, *ebiten.Image)
}

// Option configures an App.
type Option func(*App)

// WindowTitle sets the window (and web page) title.
func WindowTitle(title string) Option {
	return func(a *App) { a.title = title }
}

// WindowSize overrides the default 800×600 logical view size.
func WindowSize(width, height int) Option {
	return func(a *App) {
		a.width = width
		a.height = height
	}
}

// NewApp creates an application with the given options.
func NewApp(opts ...Option) *App {
	a := &App{
		title:  "Simulation",
		width:  800,
		height: 600,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OnSetup registers the hook run once before the first frame.
func (a *App) OnSetup(fn func(*World)) {
	a.setup = fn
}

// OnUpdate registers the hook run every simulation tick. dt is the
// fixed tick duration in seconds.
func (a *App) OnUpdate(fn func(w *World, dt float64)) {
	a.update = fn
}

// OnDraw registers the hook run every rendered frame.
func (a *App) OnDraw(fn func(w *World, screen *ebiten.Image)) {
	a.draw = fn
}

// Run configures the window for the current target and starts the
// engine run loop. It blocks until the window closes or an update
// returns an error.
func (a *App) Run() error {
	configureWindow(a.title, a.width, a.height)
	return ebiten.RunGame(&game{
		app:   a,
		world: &World{width: a.width, height: a.height},
	})
}

// game adapts App to the engine's run-loop interface.
type game struct {
	app   *App
	world *World
	ready bool
}

func (g *game) Update() error {
	if !g.ready {
		if g.app.setup != nil {
			g.app.setup(g.world)
		}
		g.ready = true
	}
	if g.app.update != nil {
		g.app.update(g.world, 1.0/float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.app.draw != nil {
		g.app.draw(g.world, screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.width, g.app.height
}
