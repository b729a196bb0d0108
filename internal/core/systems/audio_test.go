package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/components"
)

// mockAudioEngine records calls instead of touching any real backend.
type mockAudioEngine struct {
	played    []string
	stopped   []string
	listener  ecs.Vector2
	playErr   error
}

func (m *mockAudioEngine) PlaySound(soundID string, volume, pitch float64, loop bool) error {
	m.played = append(m.played, soundID)
	return m.playErr
}

func (m *mockAudioEngine) StopSound(soundID string) error {
	m.stopped = append(m.stopped, soundID)
	return nil
}

func (m *mockAudioEngine) SetListenerPosition(position ecs.Vector2) error {
	m.listener = position
	return nil
}

func newAudioSystemRegistry(t *testing.T) (*ecs.Registry, *components.AudioStore) {
	t.Helper()
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())
	schema, store := components.NewAudioComponentType()
	require.NoError(t, reg.RegisterComponentType(schema))
	return reg, store
}

func Test_AudioSystem_UpdateCountsActiveSoundsOnly(t *testing.T) {
	// Arrange
	reg, audio := newAudioSystemRegistry(t)
	as := NewAudioSystem(audio)
	as.SetAudioEngine(&mockAudioEngine{})

	ePlaying := reg.AddEntity()
	hPlaying, err := reg.AddComponent(ecs.ComponentTypeAudio, ePlaying)
	require.NoError(t, err)
	audio.Play(hPlaying)

	eIdle := reg.AddEntity()
	_, err = reg.AddComponent(ecs.ComponentTypeAudio, eIdle)
	require.NoError(t, err)

	// Act
	require.NoError(t, as.Update(reg, 1.0/60.0))

	// Assert
	assert.EqualValues(t, 1, as.GetMetrics().EntitiesProcessed)
}

func Test_AudioSystem_NoEngineSkipsUpdate(t *testing.T) {
	// Arrange
	reg, audio := newAudioSystemRegistry(t)
	as := NewAudioSystem(audio)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAudio, e)
	require.NoError(t, err)
	audio.Play(h)

	// Act
	require.NoError(t, as.Update(reg, 1.0/60.0))

	// Assert
	assert.Zero(t, as.GetMetrics().ExecutionCount)
}

func Test_AudioSystem_SetListenerForwardsToEngine(t *testing.T) {
	// Arrange
	_, audio := newAudioSystemRegistry(t)
	as := NewAudioSystem(audio)
	engine := &mockAudioEngine{}
	as.SetAudioEngine(engine)

	// Act
	as.SetListener(ecs.Vector2{X: 3, Y: 4})

	// Assert
	assert.Equal(t, ecs.Vector2{X: 3, Y: 4}, engine.listener)
	assert.Equal(t, ecs.Vector2{X: 3, Y: 4}, as.GetListener())
}

func Test_AudioSystem_MasterVolumeClampedToUnitRange(t *testing.T) {
	// Arrange
	_, audio := newAudioSystemRegistry(t)
	as := NewAudioSystem(audio)

	// Act
	as.SetMasterVolume(5)

	// Assert
	assert.Equal(t, 1.0, as.GetMasterVolume())
}

func Test_AudioSystem_Volume3DAttenuatesWithDistance(t *testing.T) {
	// Arrange
	reg, audio := newAudioSystemRegistry(t)
	as := NewAudioSystem(audio)
	as.SetListener(ecs.Vector2{X: 0, Y: 0})
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAudio, e)
	require.NoError(t, err)
	audio.Set3D(h, true, 100, 1, 1)

	// Act
	near := as.Volume3D(h, ecs.Vector2{X: 10, Y: 0})
	far := as.Volume3D(h, ecs.Vector2{X: 200, Y: 0})

	// Assert
	assert.Greater(t, near, 0.0)
	assert.Equal(t, 0.0, far)
}

func Test_AudioSystem_Volume3DIgnoresDistanceWhenNot3D(t *testing.T) {
	// Arrange
	reg, audio := newAudioSystemRegistry(t)
	as := NewAudioSystem(audio)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAudio, e)
	require.NoError(t, err)
	audio.SetVolume(h, 0.5)

	// Act
	v := as.Volume3D(h, ecs.Vector2{X: 10000, Y: 10000})

	// Assert
	assert.Equal(t, 0.5, v)
}
