package systems

import (
	"math"
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
)

// AudioEngine abstracts actual sound playback so AudioSystem stays
// decoupled from any particular audio backend. The demo binary sets no
// engine; one is supplied through SetAudioEngine.
type AudioEngine interface {
	PlaySound(soundID string, volume, pitch float64, loop bool) error
	StopSound(soundID string) error
	SetListenerPosition(position ecs.Vector2) error
}

// AudioSystem computes 3D positional volume attenuation (Volume3D) against
// a single listener position and forwards listener moves to the configured
// AudioEngine. It issues no PlaySound or StopSound calls itself.
type AudioSystem struct {
	*BaseSystem

	audio *components.AudioStore

	listenerPosition ecs.Vector2
	masterVolume     float64
	engine           AudioEngine
}

func NewAudioSystem(audio *components.AudioStore) *AudioSystem {
	return &AudioSystem{
		BaseSystem:   NewBaseSystem(AudioSystemType, AudioSystemPriority),
		audio:        audio,
		masterVolume: 1.0,
	}
}

func (as *AudioSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeAudio}
}

// Update counts the active (playing, unpaused) audio components and records
// that count in the system metrics; it does nothing when no engine is set.
// It does not compute volumes or send anything to the engine.
func (as *AudioSystem) Update(reg *ecs.Registry, deltaTime float64) error {
	if !as.IsEnabled() || as.engine == nil {
		return nil
	}
	start := time.Now()
	processed := 0

	it := reg.Iterate(as.GetRequiredComponents(), nil)
	for it.Advance() {
		h := it.Handle(ecs.ComponentTypeAudio)
		if !as.audio.IsActive(h) {
			continue
		}
		processed++
	}

	as.recordExecution(start, processed)
	return nil
}

func (as *AudioSystem) SetAudioEngine(engine AudioEngine) { as.engine = engine }
func (as *AudioSystem) GetAudioEngine() AudioEngine       { return as.engine }

func (as *AudioSystem) SetListener(position ecs.Vector2) {
	as.listenerPosition = position
	if as.engine != nil {
		as.engine.SetListenerPosition(position)
	}
}

func (as *AudioSystem) GetListener() ecs.Vector2 { return as.listenerPosition }

func (as *AudioSystem) SetMasterVolume(volume float64) {
	as.masterVolume = math.Max(0.0, math.Min(1.0, volume))
}

func (as *AudioSystem) GetMasterVolume() float64 { return as.masterVolume }

// Volume3D computes the distance-attenuated volume of an audio component
// relative to the current listener position.
func (as *AudioSystem) Volume3D(h ecs.ComponentHandle, audioPos ecs.Vector2) float64 {
	base := as.audio.Volume.Get(h.RepoSlot)
	if !as.audio.Is3D.Get(h.RepoSlot) {
		return base * as.masterVolume
	}
	maxDistance := as.audio.MaxDistance.Get(h.RepoSlot)
	distance := math.Sqrt(
		math.Pow(audioPos.X-as.listenerPosition.X, 2) +
			math.Pow(audioPos.Y-as.listenerPosition.Y, 2),
	)
	if distance >= maxDistance {
		return 0
	}
	ratio := 1.0 - distance/maxDistance
	return base * ratio * as.masterVolume
}
