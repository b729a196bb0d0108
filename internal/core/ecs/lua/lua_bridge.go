package lua

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/yuin/gopher-lua"
)

// LuaBridgeImpl is the default LuaBridge implementation.
type LuaBridgeImpl struct{}

// NewLuaBridge creates a LuaBridge.
func NewLuaBridge() LuaBridge {
	return &LuaBridgeImpl{}
}

// CreateVM creates and configures a sandboxed Lua state.
func (lb *LuaBridgeImpl) CreateVM(config *LuaVMConfig) (*LuaVM, error) {
	if config == nil {
		config = &LuaVMConfig{
			SandboxEnabled: false,
			ResourceLimits: &ResourceLimits{
				MaxExecutionTime: 100 * time.Millisecond,
				MaxMemoryUsage:   10 * 1024 * 1024, // 10MB
			},
		}
	}

	state := lua.NewState()
	if state == nil {
		return nil, errors.New("failed to create Lua state")
	}

	var sandbox *Sandbox
	if config.SandboxEnabled {
		sandbox = &Sandbox{
			FileSystemRestricted: true,
			NetworkRestricted:    true,
			OSCommandsBlocked:    true,
		}

		err := applySandbox(state, sandbox)
		if err != nil {
			state.Close()
			return nil, fmt.Errorf("failed to apply sandbox: %w", err)
		}
	}

	vm := &LuaVM{
		state:       state,
		sandbox:     sandbox,
		permissions: config.Permissions,
		resources:   config.ResourceLimits,
	}

	return vm, nil
}

// DestroyVM closes vm's Lua state.
func (lb *LuaBridgeImpl) DestroyVM(vm *LuaVM) error {
	if vm == nil {
		return errors.New("vm is nil")
	}
	if vm.state == nil {
		return errors.New("vm state is nil")
	}

	vm.state.Close()
	return nil
}

// LoadScript records scriptPath's metadata without compiling it yet.
func (lb *LuaBridgeImpl) LoadScript(vm *LuaVM, scriptPath string) (*LuaScript, error) {
	script := &LuaScript{
		path:   scriptPath,
		loaded: false,
		metadata: &ScriptMetadata{
			Name:       scriptPath,
			Version:    "1.0.0",
			APIVersion: "1.0.0",
		},
	}

	return script, nil
}

// UnloadScript marks script as no longer loaded.
func (lb *LuaBridgeImpl) UnloadScript(vm *LuaVM, script *LuaScript) error {
	if script == nil {
		return errors.New("script is nil")
	}

	script.loaded = false
	return nil
}

// ExecuteScript runs script's source in vm.
func (lb *LuaBridgeImpl) ExecuteScript(vm *LuaVM, script *LuaScript) error {
	if vm == nil || vm.state == nil {
		return errors.New("vm or vm state is nil")
	}
	if script == nil {
		return errors.New("script is nil")
	}

	source := string(script.content)
	if source == "" {
		source = "-- empty script"
	}
	if err := vm.state.DoString(source); err != nil {
		return fmt.Errorf("script execution failed: %w", err)
	}

	script.loaded = true
	return nil
}

// GoToLua converts a Go value into its Lua representation.
func (lb *LuaBridgeImpl) GoToLua(vm *LuaVM, value interface{}) (lua.LValue, error) {
	if vm == nil || vm.state == nil {
		return nil, errors.New("vm or vm state is nil")
	}

	return convertGoToLua(vm.state, value)
}

// LuaToGo converts a Lua value into target, which must be a pointer.
func (lb *LuaBridgeImpl) LuaToGo(vm *LuaVM, value lua.LValue, target interface{}) error {
	if vm == nil || vm.state == nil {
		return errors.New("vm or vm state is nil")
	}

	return convertLuaToGo(value, target)
}

// RegisterECSAPI installs the global `ecs` table a sandboxed script sees,
// backing every function by ecsAPI so scripts only ever reach the ECS
// through the mod's own entity/component/query limits.
func (lb *LuaBridgeImpl) RegisterECSAPI(vm *LuaVM, ecsAPI *ModECSAPI) error {
	if vm == nil || vm.state == nil {
		return errors.New("vm or vm state is nil")
	}
	if ecsAPI == nil {
		return errors.New("ecsAPI is nil")
	}

	state := vm.state
	api := *ecsAPI
	registerQueryBuilderType(state)

	ecsTable := state.NewTable()

	state.SetField(ecsTable, "create_entity", state.NewFunction(func(L *lua.LState) int {
		id, err := api.CreateEntity()
		if err != nil {
			L.RaiseError("create_entity: %v", err)
			return 0
		}
		L.Push(lua.LNumber(float64(id)))
		return 1
	}))

	state.SetField(ecsTable, "destroy_entity", state.NewFunction(func(L *lua.LState) int {
		id := EntityID(L.CheckNumber(1))
		L.Push(lua.LBool(api.DestroyEntity(id) == nil))
		return 1
	}))

	state.SetField(ecsTable, "entity_exists", state.NewFunction(func(L *lua.LState) int {
		id := EntityID(L.CheckNumber(1))
		L.Push(lua.LBool(api.EntityExists(id)))
		return 1
	}))

	state.SetField(ecsTable, "add_component", state.NewFunction(func(L *lua.LState) int {
		id := EntityID(L.CheckNumber(1))
		componentType := L.CheckString(2)

		var data interface{}
		if L.GetTop() >= 3 {
			goVal, err := luaValueToGoValue(L.CheckAny(3))
			if err != nil {
				L.RaiseError("add_component: %v", err)
				return 0
			}
			data = goVal
		}

		L.Push(lua.LBool(api.AddComponent(id, componentType, data) == nil))
		return 1
	}))

	state.SetField(ecsTable, "remove_component", state.NewFunction(func(L *lua.LState) int {
		id := EntityID(L.CheckNumber(1))
		componentType := L.CheckString(2)
		L.Push(lua.LBool(api.RemoveComponent(id, componentType) == nil))
		return 1
	}))

	state.SetField(ecsTable, "has_component", state.NewFunction(func(L *lua.LState) int {
		id := EntityID(L.CheckNumber(1))
		componentType := L.CheckString(2)
		L.Push(lua.LBool(api.HasComponent(id, componentType)))
		return 1
	}))

	state.SetField(ecsTable, "get_component", state.NewFunction(func(L *lua.LState) int {
		id := EntityID(L.CheckNumber(1))
		componentType := L.CheckString(2)

		data, err := api.GetComponent(id, componentType)
		if err != nil || data == nil {
			L.Push(lua.LNil)
			return 1
		}

		luaVal, err := convertGoToLua(L, data)
		if err != nil {
			L.RaiseError("get_component: %v", err)
			return 0
		}
		L.Push(luaVal)
		return 1
	}))

	state.SetField(ecsTable, "query", state.NewFunction(func(L *lua.LState) int {
		L.Push(newQueryBuilderUserData(L, api.QueryEntities()))
		return 1
	}))

	state.SetGlobal("ecs", ecsTable)

	return nil
}

// SetPermissions replaces vm's API permission set.
func (lb *LuaBridgeImpl) SetPermissions(vm *LuaVM, permissions *APIPermissions) error {
	if vm == nil {
		return errors.New("vm is nil")
	}

	vm.permissions = permissions
	return nil
}

// applySandbox strips globals a script could use to escape the sandbox.
func applySandbox(state *lua.LState, sandbox *Sandbox) error {
	if sandbox == nil {
		return nil
	}

	if sandbox.FileSystemRestricted {
		state.SetGlobal("io", lua.LNil)
		state.SetGlobal("dofile", lua.LNil)
		state.SetGlobal("loadfile", lua.LNil)
	}

	if sandbox.OSCommandsBlocked {
		state.SetGlobal("os", lua.LNil)
	}

	state.SetGlobal("debug", lua.LNil)

	state.SetGlobal("package", lua.LNil)
	state.SetGlobal("require", lua.LNil)

	return nil
}

// convertGoToLua converts a Go value into its Lua representation.
func convertGoToLua(state *lua.LState, value interface{}) (lua.LValue, error) {
	if value == nil {
		return lua.LNil, nil
	}

	switch v := value.(type) {
	case string:
		return lua.LString(v), nil
	case int:
		return lua.LNumber(float64(v)), nil
	case int64:
		return lua.LNumber(float64(v)), nil
	case float32:
		return lua.LNumber(float64(v)), nil
	case float64:
		return lua.LNumber(v), nil
	case bool:
		return lua.LBool(v), nil
	case []string:
		table := state.NewTable()
		for i, item := range v {
			table.RawSetInt(i+1, lua.LString(item)) // 1-indexed
		}
		return table, nil
	case []int:
		table := state.NewTable()
		for i, item := range v {
			table.RawSetInt(i+1, lua.LNumber(float64(item)))
		}
		return table, nil
	case []interface{}:
		table := state.NewTable()
		for i, item := range v {
			luaVal, err := convertGoToLua(state, item)
			if err != nil {
				return nil, err
			}
			table.RawSetInt(i+1, luaVal)
		}
		return table, nil
	case map[string]interface{}:
		table := state.NewTable()
		for key, val := range v {
			luaVal, err := convertGoToLua(state, val)
			if err != nil {
				return nil, err
			}
			table.RawSetString(key, luaVal)
		}
		return table, nil
	default:
		// reflectionを使用してstructを変換
		return convertStructToLua(state, value)
	}
}

// convertStructToLua - 構造体をLuaテーブルに変換（reflection使用）
func convertStructToLua(state *lua.LState, value interface{}) (lua.LValue, error) {
	v := reflect.ValueOf(value)
	t := reflect.TypeOf(value)

	// ポインタの場合は実体を取得
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
		t = t.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported type: %T", value)
	}

	table := state.NewTable()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		// 非公開フィールドはスキップ
		if !field.CanInterface() {
			continue
		}

		// JSONタグからフィールド名を取得
		fieldName := fieldType.Name
		if tag := fieldType.Tag.Get("json"); tag != "" && tag != "-" {
			fieldName = tag
		}

		// フィールド値をLua値に変換
		luaVal, err := convertGoToLua(state, field.Interface())
		if err != nil {
			return nil, fmt.Errorf("failed to convert field %s: %w", fieldName, err)
		}

		table.RawSetString(fieldName, luaVal)
	}

	return table, nil
}

// convertLuaToGo - Lua値をGo値に変換
func convertLuaToGo(value lua.LValue, target interface{}) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr {
		return errors.New("target must be a pointer")
	}

	targetElem := targetValue.Elem()

	switch value.Type() {
	case lua.LTString:
		if targetElem.Kind() == reflect.String {
			targetElem.SetString(string(value.(lua.LString)))
			return nil
		}
	case lua.LTNumber:
		num := float64(value.(lua.LNumber))
		switch targetElem.Kind() {
		case reflect.Int:
			targetElem.SetInt(int64(num))
			return nil
		case reflect.Float64:
			targetElem.SetFloat(num)
			return nil
		}
	case lua.LTBool:
		if targetElem.Kind() == reflect.Bool {
			targetElem.SetBool(bool(value.(lua.LBool)))
			return nil
		}
	case lua.LTTable:
		// スライス変換をサポート
		if targetElem.Kind() == reflect.Slice {
			return convertLuaTableToSlice(value.(*lua.LTable), target)
		}
	case lua.LTNil:
		// nilの場合はゼロ値を設定
		targetElem.Set(reflect.Zero(targetElem.Type()))
		return nil
	}

	return fmt.Errorf("cannot convert Lua %s to Go %s", value.Type(), targetElem.Kind())
}

// convertLuaTableToSlice - LuaテーブルをGoスライスに変換
func convertLuaTableToSlice(table *lua.LTable, target interface{}) error {
	targetValue := reflect.ValueOf(target).Elem()
	elemType := targetValue.Type().Elem()

	var slice reflect.Value

	// テーブルを配列形式で処理（1-indexed）
	table.ForEach(func(key, value lua.LValue) {
		if !slice.IsValid() {
			slice = reflect.MakeSlice(targetValue.Type(), 0, 0)
		}

		elem := reflect.New(elemType).Elem()

		switch elemType.Kind() {
		case reflect.String:
			if value.Type() == lua.LTString {
				elem.SetString(string(value.(lua.LString)))
			}
		case reflect.Int:
			if value.Type() == lua.LTNumber {
				elem.SetInt(int64(float64(value.(lua.LNumber))))
			}
		case reflect.Float64:
			if value.Type() == lua.LTNumber {
				elem.SetFloat(float64(value.(lua.LNumber)))
			}
		}

		slice = reflect.Append(slice, elem)
	})

	if slice.IsValid() {
		targetValue.Set(slice)
	}

	return nil
}

// queryBuilderTypeName is the userdata metatable name backing ecs.query()'s
// fluent with/without/execute chain in script code.
const queryBuilderTypeName = "ecs_query_builder"

var queryBuilderMethods = map[string]lua.LGFunction{
	"with":    queryBuilderWith,
	"without": queryBuilderWithout,
	"execute": queryBuilderExecute,
}

// registerQueryBuilderType installs the query builder's metatable. Safe to
// call more than once: NewTypeMetatable returns the existing table on a
// repeat registration.
func registerQueryBuilderType(state *lua.LState) {
	mt := state.NewTypeMetatable(queryBuilderTypeName)
	state.SetField(mt, "__index", state.SetFuncs(state.NewTable(), queryBuilderMethods))
}

func newQueryBuilderUserData(state *lua.LState, qb QueryBuilder) *lua.LUserData {
	ud := state.NewUserData()
	ud.Value = qb
	state.SetMetatable(ud, state.GetTypeMetatable(queryBuilderTypeName))
	return ud
}

func checkQueryBuilder(L *lua.LState) QueryBuilder {
	ud := L.CheckUserData(1)
	qb, ok := ud.Value.(QueryBuilder)
	if !ok {
		L.ArgError(1, "expected a query builder")
		return nil
	}
	return qb
}

func queryBuilderWith(L *lua.LState) int {
	qb := checkQueryBuilder(L)
	componentType := L.CheckString(2)
	L.Push(newQueryBuilderUserData(L, qb.With(componentType)))
	return 1
}

func queryBuilderWithout(L *lua.LState) int {
	qb := checkQueryBuilder(L)
	componentType := L.CheckString(2)
	L.Push(newQueryBuilderUserData(L, qb.Without(componentType)))
	return 1
}

func queryBuilderExecute(L *lua.LState) int {
	qb := checkQueryBuilder(L)
	ids, err := qb.Execute()
	if err != nil {
		L.RaiseError("query execute: %v", err)
		return 0
	}

	table := L.NewTable()
	for i, id := range ids {
		table.RawSetInt(i+1, lua.LNumber(float64(id)))
	}
	L.Push(table)
	return 1
}

// luaValueToGoValue converts a Lua value reaching a host function argument
// (e.g. add_component's data table) into a plain Go value, recursing into
// nested tables. Lua tables with only positional integer keys become a Go
// slice; any string key makes the whole table a map.
func luaValueToGoValue(v lua.LValue) (interface{}, error) {
	switch v.Type() {
	case lua.LTNil:
		return nil, nil
	case lua.LTBool:
		return bool(v.(lua.LBool)), nil
	case lua.LTNumber:
		return float64(v.(lua.LNumber)), nil
	case lua.LTString:
		return string(v.(lua.LString)), nil
	case lua.LTTable:
		return luaTableToGoValue(v.(*lua.LTable))
	default:
		return nil, fmt.Errorf("unsupported lua value type: %s", v.Type())
	}
}

func luaTableToGoValue(t *lua.LTable) (interface{}, error) {
	isArray := true
	result := make(map[string]interface{})
	arr := make([]interface{}, 0, t.Len())
	var convErr error

	t.ForEach(func(key, value lua.LValue) {
		if convErr != nil {
			return
		}
		goVal, err := luaValueToGoValue(value)
		if err != nil {
			convErr = err
			return
		}
		if key.Type() != lua.LTNumber {
			isArray = false
		}
		result[key.String()] = goVal
		arr = append(arr, goVal)
	})
	if convErr != nil {
		return nil, convErr
	}

	if isArray && len(arr) > 0 {
		return arr, nil
	}
	return result, nil
}