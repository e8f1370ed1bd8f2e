package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 0 保留为无效 ID，可用来表示"没有父节点"等情况
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 控件的每个可视元素（滑轨、选中条、滑块、标题）都是一个实体，
// 几何信息、文字、补间动画等数据以组件形式挂在实体上。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 创建顺序，保证查询结果稳定（渲染、命中测试依赖它）
	order []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	em.order = append(em.order, id)
	return id
}

// Exists 检查实体是否存在（已标记删除但尚未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, ok := em.components[id]; ok {
			kept = append(kept, id)
		}
	}
	em.order = kept
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// EntityCount 返回当前实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

func (em *EntityManager) addComponent(id EntityID, t reflect.Type, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[t] = component
	}
}

func (em *EntityManager) getComponent(id EntityID, t reflect.Type) (any, bool) {
	if compMap, exists := em.components[id]; exists {
		comp, found := compMap[t]
		return comp, found
	}
	return nil, false
}

// AddComponent 为实体添加组件（同类型组件会被替换）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.addComponent(id, typeFor[T](), component)
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.getComponent(id, typeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.getComponent(id, typeFor[T]())
	return ok
}

// RemoveComponent 从实体移除指定类型的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, typeFor[T]())
	}
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体（按创建顺序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	t1 := typeFor[T1]()
	result := make([]EntityID, 0)
	for _, id := range em.order {
		if compMap, ok := em.components[id]; ok {
			if _, found := compMap[t1]; found {
				result = append(result, id)
			}
		}
	}
	return result
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体（按创建顺序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	t1, t2 := typeFor[T1](), typeFor[T2]()
	result := make([]EntityID, 0)
	for _, id := range em.order {
		compMap, ok := em.components[id]
		if !ok {
			continue
		}
		_, has1 := compMap[t1]
		_, has2 := compMap[t2]
		if has1 && has2 {
			result = append(result, id)
		}
	}
	return result
}

// typeFor 等价于 Go 1.22 的 reflect.TypeFor（兼容 Go 1.21 工具链）
func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
