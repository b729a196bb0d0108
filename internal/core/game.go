package core

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
	"muscle-dreamer/internal/core/systems"
)

// Game owns the registry, the sample systems driving it, and the ebiten
// presentation loop. Update mutates the registry single-threaded; Draw only
// reads RenderingSystem.Gather's snapshot, never the registry directly.
type Game struct {
	registry *ecs.Registry

	transform *components.TransformStore
	sprite    *components.SpriteStore
	physics   *components.PhysicsStore
	audio     *components.AudioStore

	movement  *systems.MovementSystem
	physicsys *systems.PhysicsSystem
	rendering *systems.RenderingSystem
	audiosys  *systems.AudioSystem

	pipeline []systems.System
}

// NewGame builds a registry with every sample component type registered,
// wires the sample systems to it, and returns a ready-to-run Game.
func NewGame() *Game {
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())

	transformSchema, transformStore := components.NewTransformComponentType()
	spriteSchema, spriteStore := components.NewSpriteComponentType()
	physicsSchema, physicsStore := components.NewPhysicsComponentType()
	healthSchema, _ := components.NewHealthComponentType()
	aiSchema, _ := components.NewAIComponentType()
	inventorySchema, _ := components.NewInventoryComponentType()
	audioSchema, audioStore := components.NewAudioComponentType()
	energySchema, _ := components.NewEnergyComponentType()

	for _, schema := range []*ecs.ComponentTypeSchema{
		transformSchema, spriteSchema, physicsSchema, healthSchema,
		aiSchema, inventorySchema, audioSchema, energySchema,
	} {
		if err := reg.RegisterComponentType(schema); err != nil {
			log.Fatalf("register component type %s: %v", schema.TypeID, err)
		}
	}

	movement := systems.NewMovementSystem(transformStore, physicsStore)
	physicsys := systems.NewPhysicsSystem(transformStore, physicsStore)
	rendering := systems.NewRenderingSystem(transformStore, spriteStore)
	audiosys := systems.NewAudioSystem(audioStore)

	g := &Game{
		registry:  reg,
		transform: transformStore,
		sprite:    spriteStore,
		physics:   physicsStore,
		audio:     audioStore,
		movement:  movement,
		physicsys: physicsys,
		rendering: rendering,
		audiosys:  audiosys,
		pipeline:  []systems.System{physicsys, movement, audiosys, rendering},
	}

	for _, sys := range g.pipeline {
		if err := sys.Initialize(reg); err != nil {
			log.Fatalf("initialize system %s: %v", sys.GetType(), err)
		}
	}

	return g
}

// Registry exposes the live registry, e.g. for a mod host or a Lua bridge
// to register entities against.
func (g *Game) Registry() *ecs.Registry { return g.registry }

func (g *Game) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	for _, sys := range g.pipeline {
		if !sys.IsEnabled() {
			continue
		}
		if err := sys.Update(g.registry, deltaTime); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 100, 255})

	for _, entity := range g.rendering.Gather(g.registry) {
		vector.DrawFilledRect(screen,
			float32(entity.Position.X), float32(entity.Position.Y),
			float32(entity.Scale.X), float32(entity.Scale.Y),
			color.White, false)
	}

	ebitenutil.DebugPrint(screen, "muscle dreamer - sightseeing edition")
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return 1280, 720
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Muscle Dreamer - Sightseeing Edition")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
