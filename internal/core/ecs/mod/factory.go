package mod

import "muscle-dreamer/internal/core/ecs"

// ModECSAPIFactoryImpl is the default ModECSAPIFactory implementation.
type ModECSAPIFactoryImpl struct {
	apis map[string]ModECSAPI
}

// NewModECSAPIFactory creates an empty factory.
func NewModECSAPIFactory() ModECSAPIFactory {
	return &ModECSAPIFactoryImpl{
		apis: make(map[string]ModECSAPI),
	}
}

func (f *ModECSAPIFactoryImpl) Create(modID string, reg *ecs.Registry, config ModConfig) (ModECSAPI, error) {
	if _, exists := f.apis[modID]; exists {
		return nil, ErrModAlreadyExists
	}

	api := NewModECSAPI(modID, reg, config)
	f.apis[modID] = api
	return api, nil
}

func (f *ModECSAPIFactoryImpl) Destroy(modID string) error {
	if _, exists := f.apis[modID]; !exists {
		return ErrModNotFound
	}

	delete(f.apis, modID)
	return nil
}
