package components

import (
	"muscle-dreamer/internal/core/ecs"
)

// AudioStore backs the "audio" component type: 3D positional playback
// state and distance attenuation parameters.
type AudioStore struct {
	SoundID          *ecs.TypedColumn[string]
	Volume           *ecs.TypedColumn[float64]
	Pitch            *ecs.TypedColumn[float64]
	IsPlaying        *ecs.TypedColumn[bool]
	IsLoop           *ecs.TypedColumn[bool]
	IsPaused         *ecs.TypedColumn[bool]
	Is3D             *ecs.TypedColumn[bool]
	MaxDistance      *ecs.TypedColumn[float64]
	MinDistance      *ecs.TypedColumn[float64]
	Rolloff          *ecs.TypedColumn[float64]
	FadeIn           *ecs.TypedColumn[float64]
	FadeOut          *ecs.TypedColumn[float64]
	PlaybackPosition *ecs.TypedColumn[float64]
	Priority         *ecs.TypedColumn[int]
	AudioGroup       *ecs.TypedColumn[string]
}

func NewAudioComponentType() (*ecs.ComponentTypeSchema, *AudioStore) {
	store := &AudioStore{}
	schema := &ecs.ComponentTypeSchema{
		TypeID: ecs.ComponentTypeAudio,
		Properties: []ecs.PropertySchema{
			{Name: "sound_id", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
			{Name: "volume", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "pitch", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "is_playing", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneDisabled, Shareable: true},
			{Name: "is_loop", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "is_paused", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneDisabled, Shareable: true},
			{Name: "is_3d", ValueKind: ecs.ValueBool, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "max_distance", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "min_distance", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "rolloff", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "fade_in", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "fade_out", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "playback_position", ValueKind: ecs.ValueF64, ClonePolicy: ecs.CloneDisabled, Shareable: true},
			{Name: "priority", ValueKind: ecs.ValueI32, ClonePolicy: ecs.CloneValue, Shareable: true},
			{Name: "audio_group", ValueKind: ecs.ValueObject, ClonePolicy: ecs.CloneValue},
		},
		NewColumn: func(p ecs.PropertySchema, capacity int) ecs.Column {
			switch p.Name {
			case "sound_id":
				store.SoundID = ecs.NewTypedColumn[string](capacity, p.ValueKind, p.ClonePolicy, func() string { return "" }, p.Shareable, nil)
				return store.SoundID
			case "volume":
				store.Volume = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 1 }, p.Shareable, nil)
				return store.Volume
			case "pitch":
				store.Pitch = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 1 }, p.Shareable, nil)
				return store.Pitch
			case "is_playing":
				store.IsPlaying = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.IsPlaying
			case "is_loop":
				store.IsLoop = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.IsLoop
			case "is_paused":
				store.IsPaused = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.IsPaused
			case "is_3d":
				store.Is3D = ecs.NewTypedColumn[bool](capacity, p.ValueKind, p.ClonePolicy, func() bool { return false }, p.Shareable, nil)
				return store.Is3D
			case "max_distance":
				store.MaxDistance = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 100 }, p.Shareable, nil)
				return store.MaxDistance
			case "min_distance":
				store.MinDistance = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 1 }, p.Shareable, nil)
				return store.MinDistance
			case "rolloff":
				store.Rolloff = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 1 }, p.Shareable, nil)
				return store.Rolloff
			case "fade_in":
				store.FadeIn = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 0 }, p.Shareable, nil)
				return store.FadeIn
			case "fade_out":
				store.FadeOut = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 0 }, p.Shareable, nil)
				return store.FadeOut
			case "playback_position":
				store.PlaybackPosition = ecs.NewTypedColumn[float64](capacity, p.ValueKind, p.ClonePolicy, func() float64 { return 0 }, p.Shareable, nil)
				return store.PlaybackPosition
			case "priority":
				store.Priority = ecs.NewTypedColumn[int](capacity, p.ValueKind, p.ClonePolicy, func() int { return 0 }, p.Shareable, nil)
				return store.Priority
			case "audio_group":
				store.AudioGroup = ecs.NewTypedColumn[string](capacity, p.ValueKind, p.ClonePolicy, func() string { return "sfx" }, p.Shareable, nil)
				return store.AudioGroup
			}
			return nil
		},
	}
	return schema, store
}

func (s *AudioStore) Play(h ecs.ComponentHandle) {
	slot := h.RepoSlot
	s.IsPlaying.Set(slot, true)
	s.IsPaused.Set(slot, false)
}

func (s *AudioStore) Stop(h ecs.ComponentHandle) {
	slot := h.RepoSlot
	s.IsPlaying.Set(slot, false)
	s.IsPaused.Set(slot, false)
	s.PlaybackPosition.Set(slot, 0)
}

func (s *AudioStore) Pause(h ecs.ComponentHandle) { s.IsPaused.Set(h.RepoSlot, true) }

func (s *AudioStore) Resume(h ecs.ComponentHandle) {
	if s.IsPaused.Get(h.RepoSlot) {
		s.IsPaused.Set(h.RepoSlot, false)
	}
}

// SetVolume clamps volume to [0, 1].
func (s *AudioStore) SetVolume(h ecs.ComponentHandle, volume float64) {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	s.Volume.Set(h.RepoSlot, volume)
}

func (s *AudioStore) SetPitch(h ecs.ComponentHandle, pitch float64) {
	if pitch > 0 {
		s.Pitch.Set(h.RepoSlot, pitch)
	}
}

func (s *AudioStore) Set3D(h ecs.ComponentHandle, enable bool, maxDistance, minDistance, rolloff float64) {
	slot := h.RepoSlot
	s.Is3D.Set(slot, enable)
	if enable {
		s.MaxDistance.Set(slot, maxDistance)
		s.MinDistance.Set(slot, minDistance)
		s.Rolloff.Set(slot, rolloff)
	}
}

func (s *AudioStore) IsActive(h ecs.ComponentHandle) bool {
	return s.IsPlaying.Get(h.RepoSlot) && !s.IsPaused.Get(h.RepoSlot)
}

// EffectiveVolume applies the fade-in ramp to the base volume.
func (s *AudioStore) EffectiveVolume(h ecs.ComponentHandle, currentTime float64) float64 {
	slot := h.RepoSlot
	volume := s.Volume.Get(slot)
	if fadeIn := s.FadeIn.Get(slot); fadeIn > 0 && currentTime < fadeIn {
		volume *= currentTime / fadeIn
	}
	return volume
}
