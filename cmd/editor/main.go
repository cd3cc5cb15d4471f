// Editor is a minimal shape editor built on nova: pick a tool with 1-4,
// click to place shapes, wheel to zoom around the pointer, drag with the
// middle or right button to pan, Home to reset the view.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/phanxgames/nova"
)

// editor is the ebiten game. Input mutates the world and camera in Update;
// Draw reads them. Nothing else touches either.
type editor struct {
	cfg     Config
	world   *nova.World
	camera  *nova.Camera
	control *nova.Controller
	watcher *configWatcher
	cfgPath string
	width   int
	height  int
}

func newEditor(cfg Config, cfgPath string) *editor {
	w := nova.NewWorld()
	cam := nova.NewCamera()
	e := &editor{
		world:   w,
		camera:  cam,
		control: nova.NewController(w, cam),
		cfgPath: cfgPath,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	e.apply(cfg)
	if cfg.Camera.InitialScale != 1 {
		center := nova.Vec2{X: float64(e.width) / 2, Y: float64(e.height) / 2}
		cam.ZoomAt(center, cfg.Camera.InitialScale)
	}
	return e
}

// apply installs settings that can change at runtime.
func (e *editor) apply(cfg Config) {
	e.cfg = cfg
	e.control.ZoomStep = cfg.Camera.ZoomStep
	e.control.ShapeSize = nova.Vec2{X: cfg.Shapes.Width, Y: cfg.Shapes.Height}
	if !levelFlag.set {
		slog.SetLogLoggerLevel(cfg.slogLevel())
	}
}

func (e *editor) reload() {
	cfg, err := loadConfig(e.cfgPath)
	if err != nil {
		slog.Warn("config reload failed, keeping previous settings", "path", e.cfgPath, "error", err)
		return
	}
	e.apply(cfg)
	slog.Info("config reloaded", "path", e.cfgPath)
}

func (e *editor) Update() error {
	if e.watcher != nil {
		select {
		case <-e.watcher.Events:
			e.reload()
		case err := <-e.watcher.Errors:
			slog.Warn("config watcher", "error", err)
		default:
		}
	}

	// F pans to center the selected entity at the current scale.
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		e.focusSelected()
	}

	e.control.Update()
	e.camera.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// focusSelected animates the camera so the selected entity is centered.
func (e *editor) focusSelected() {
	sel, ok := e.control.Selected()
	if !ok || e.camera.Animating() {
		return
	}
	b := sel.Bounds()
	center := nova.Vec2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
	screenCenter := nova.Vec2{X: float64(e.width) / 2, Y: float64(e.height) / 2}
	target := screenCenter.Sub(center.Scale(e.camera.Scale()))
	e.camera.PanTo(target, float32(e.cfg.Camera.AnimSeconds), ease.OutCubic)
}

func (e *editor) Draw(screen *ebiten.Image) {
	nova.DrawWorld(screen, e.world, e.camera, nova.DrawOptions{
		Segments:   e.cfg.Shapes.CircleSegments,
		SelectedID: e.control.SelectedID,
	})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("tool: %s  entities: %d  scale: %.2f  selected: %d",
		e.control.Tool, e.world.Len(), e.camera.Scale(), e.control.SelectedID))
}

func (e *editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *logFileFlag != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	if levelFlag.set {
		slog.SetLogLoggerLevel(levelFlag.value)
	}

	e := newEditor(cfg, *configFlag)
	e.world.SetDebugMode(*debugFlag)
	e.camera.SetDebugMode(*debugFlag)

	if *configFlag != "" {
		w, err := newConfigWatcher(*configFlag)
		if err != nil {
			slog.Warn("config hot reload disabled", "error", err)
		} else {
			e.watcher = w
			defer w.Close()
		}
	}

	slog.Info("starting editor", "width", cfg.Window.Width, "height", cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
