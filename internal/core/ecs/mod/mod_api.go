package mod

import (
	"time"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/query"
)

// ModECSAPIImpl is the default ModECSAPI implementation. It wraps a live
// *ecs.Registry and mediates every call through its ModContext's limits.
type ModECSAPIImpl struct {
	modID        string
	registry     *ecs.Registry
	context      *ModContext
	entityAPI    ModEntityAPI
	componentAPI ModComponentAPI
	queryAPI     ModQueryAPI
	systemAPI    ModSystemAPI
}

// NewModECSAPI builds a ModECSAPI bound to reg, scoped by config.
func NewModECSAPI(modID string, reg *ecs.Registry, config ModConfig) ModECSAPI {
	ctx := &ModContext{
		ModID:              modID,
		MaxEntities:        config.MaxEntities,
		MaxMemory:          config.MaxMemory,
		MaxExecutionTime:   config.MaxExecutionTime,
		AllowedComponents:  config.AllowedComponents,
		CreatedEntities:    make([]ecs.Entity, 0),
		SystemEntityCutoff: config.SystemEntityCutoff,
		MemoryUsage:        0,
		QueryCount:         0,
		MaxQueryCount:      config.MaxQueryCount,
	}

	impl := &ModECSAPIImpl{
		modID:    modID,
		registry: reg,
		context:  ctx,
	}

	impl.entityAPI = &ModEntityAPIImpl{
		api:           impl,
		tags:          make(map[ecs.Entity][]string),
		ownedEntities: make(map[ecs.Entity]bool),
		monitor:       NewPerformanceMonitor(),
	}
	impl.componentAPI = &ModComponentAPIImpl{
		api:   impl,
		cache: NewComponentCache(),
	}
	impl.queryAPI = &ModQueryAPIImpl{api: impl}
	impl.systemAPI = &ModSystemAPIImpl{
		api:               impl,
		systems:           make(map[string]ModSystem),
		securityValidator: NewAdvancedSecurityValidator(modID, NewSecurityAuditLogger()),
	}

	return impl
}

func (m *ModECSAPIImpl) Entities() ModEntityAPI       { return m.entityAPI }
func (m *ModECSAPIImpl) Components() ModComponentAPI  { return m.componentAPI }
func (m *ModECSAPIImpl) Queries() ModQueryAPI         { return m.queryAPI }
func (m *ModECSAPIImpl) Systems() ModSystemAPI        { return m.systemAPI }
func (m *ModECSAPIImpl) GetContext() *ModContext      { return m.context }

// ModEntityAPIImpl is the default ModEntityAPI implementation.
type ModEntityAPIImpl struct {
	api           *ModECSAPIImpl
	tags          map[ecs.Entity][]string
	ownedEntities map[ecs.Entity]bool
	monitor       *PerformanceMonitor
}

// entityCostBytes is the memory charged per mod-owned entity, an
// intentionally coarse accounting unit since mods never see real component
// payload sizes.
const entityCostBytes = 64

func (m *ModEntityAPIImpl) Create(tags ...string) (ecs.Entity, error) {
	start := time.Now()
	defer func() { m.monitor.RecordAPICall("entity_create", time.Since(start)) }()

	if len(m.api.context.CreatedEntities) >= m.api.context.MaxEntities {
		return ecs.Entity{}, ErrEntityLimitExceeded
	}
	if m.api.context.MemoryUsage+entityCostBytes > m.api.context.MaxMemory {
		return ecs.Entity{}, ErrMemoryLimitExceeded
	}

	e := m.api.registry.AddEntity()

	allTags := append([]string{"mod:" + m.api.modID}, tags...)
	m.tags[e] = allTags
	m.ownedEntities[e] = true

	m.api.context.CreatedEntities = append(m.api.context.CreatedEntities, e)
	m.api.context.MemoryUsage += entityCostBytes
	m.monitor.RecordMemorySnapshot(m.api.context.MemoryUsage)

	return e, nil
}

func (m *ModEntityAPIImpl) Delete(e ecs.Entity) error {
	start := time.Now()
	defer func() { m.monitor.RecordAPICall("entity_delete", time.Since(start)) }()

	if !m.isOwnedEntity(e) {
		if e.Slot < m.api.context.SystemEntityCutoff {
			return ErrSystemEntityAccess
		}
		return ErrEntityPermissionDenied
	}

	m.api.registry.RemoveEntity(e)
	delete(m.tags, e)
	delete(m.ownedEntities, e)

	for i, owned := range m.api.context.CreatedEntities {
		if owned == e {
			m.api.context.CreatedEntities = append(
				m.api.context.CreatedEntities[:i],
				m.api.context.CreatedEntities[i+1:]...)
			break
		}
	}

	m.api.context.MemoryUsage -= entityCostBytes
	m.monitor.RecordMemorySnapshot(m.api.context.MemoryUsage)
	return nil
}

func (m *ModEntityAPIImpl) GetTags(e ecs.Entity) ([]string, error) {
	if tags, exists := m.tags[e]; exists {
		return tags, nil
	}
	return nil, ErrEntityPermissionDenied
}

func (m *ModEntityAPIImpl) GetOwned() ([]ecs.Entity, error) {
	return m.api.context.CreatedEntities, nil
}

func (m *ModEntityAPIImpl) isOwnedEntity(e ecs.Entity) bool {
	return m.ownedEntities[e]
}

// ModComponentAPIImpl is the default ModComponentAPI implementation,
// delegating storage to the registry's own repositories and caching
// handles per (entity, type) pair to avoid a repository lookup on a hot
// read path.
type ModComponentAPIImpl struct {
	api   *ModECSAPIImpl
	cache *ComponentCache
}

func (m *ModComponentAPIImpl) Add(e ecs.Entity, componentType ecs.ComponentType) (ecs.ComponentHandle, error) {
	entityAPI := m.api.entityAPI.(*ModEntityAPIImpl)
	if !entityAPI.isOwnedEntity(e) {
		return ecs.ComponentHandle{}, ErrComponentPermissionDenied
	}
	if !m.IsAllowed(componentType) {
		return ecs.ComponentHandle{}, ErrComponentNotAllowed
	}

	handle, err := m.api.registry.AddComponent(componentType, e)
	if err != nil {
		return ecs.ComponentHandle{}, err
	}
	m.cache.Set(e, componentType, handle)
	return handle, nil
}

func (m *ModComponentAPIImpl) Get(e ecs.Entity, componentType ecs.ComponentType) (ecs.ComponentHandle, error) {
	entityAPI := m.api.entityAPI.(*ModEntityAPIImpl)
	if !entityAPI.isOwnedEntity(e) {
		return ecs.ComponentHandle{}, ErrComponentPermissionDenied
	}

	if handle, ok := m.cache.Get(e, componentType); ok {
		return handle, nil
	}
	handle, ok := m.api.registry.GetComponent(componentType, e)
	if !ok {
		return ecs.ComponentHandle{}, nil
	}
	m.cache.Set(e, componentType, handle)
	return handle, nil
}

func (m *ModComponentAPIImpl) Remove(e ecs.Entity, componentType ecs.ComponentType) error {
	entityAPI := m.api.entityAPI.(*ModEntityAPIImpl)
	if !entityAPI.isOwnedEntity(e) {
		return ErrComponentPermissionDenied
	}
	m.api.registry.RemoveComponent(componentType, e.Slot)
	m.cache.Remove(e, componentType)
	return nil
}

func (m *ModComponentAPIImpl) IsAllowed(componentType ecs.ComponentType) bool {
	for _, allowed := range m.api.context.AllowedComponents {
		if componentType == allowed {
			return true
		}
	}
	return false
}

// ModQueryAPIImpl is the default ModQueryAPI implementation: every query is
// filtered down to entities the mod itself created, regardless of what the
// builder's constraints would otherwise match.
type ModQueryAPIImpl struct {
	api *ModECSAPIImpl
}

func (m *ModQueryAPIImpl) Find(b *query.Builder) ([]ecs.Entity, error) {
	if m.api.context.QueryCount >= m.api.context.MaxQueryCount {
		return nil, ErrQueryLimitExceeded
	}
	m.api.context.QueryCount++

	cursor, err := b.Build(m.api.registry)
	if err != nil {
		return nil, err
	}

	entityAPI := m.api.entityAPI.(*ModEntityAPIImpl)
	var matched []ecs.Entity
	for cursor.Next() {
		e := cursor.Entity()
		if entityAPI.isOwnedEntity(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (m *ModQueryAPIImpl) Count(b *query.Builder) (int, error) {
	entities, err := m.Find(b)
	if err != nil {
		return 0, err
	}
	return len(entities), nil
}

func (m *ModQueryAPIImpl) GetExecutionCount() int { return m.api.context.QueryCount }
func (m *ModQueryAPIImpl) ResetExecutionCount()    { m.api.context.QueryCount = 0 }

// ModSystemAPIImpl is the default ModSystemAPI implementation.
type ModSystemAPIImpl struct {
	api               *ModECSAPIImpl
	systems           map[string]ModSystem
	securityValidator *AdvancedSecurityValidator
}

func (m *ModSystemAPIImpl) Register(system ModSystem) error {
	if system.GetMaxExecutionTime() > m.api.context.MaxExecutionTime {
		return ErrSystemExecutionTimeExceeded
	}
	if err := m.securityValidator.ValidateSystemID(system.GetID()); err != nil {
		return err
	}
	m.systems[system.GetID()] = system
	return nil
}

func (m *ModSystemAPIImpl) Unregister(systemID string) error {
	delete(m.systems, systemID)
	return nil
}

func (m *ModSystemAPIImpl) GetRegistered() []string {
	result := make([]string, 0, len(m.systems))
	for id := range m.systems {
		result = append(result, id)
	}
	return result
}
