package graph

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/models"
)

// Graph - направленный граф точек маршрута, построенный из снимка коллекции
// waypoints. Граф не кэшируется между запусками обогащения: каждый запуск
// строит его заново из последнего снимка хранилища.
type Graph struct {
	nodes map[uuid.UUID]*models.Waypoint
}

// Build строит граф из снимка точек маршрута
func Build(waypoints []*models.Waypoint) *Graph {
	nodes := make(map[uuid.UUID]*models.Waypoint, len(waypoints))
	for _, wp := range waypoints {
		nodes[wp.ID] = wp
	}
	return &Graph{nodes: nodes}
}

// Contains сообщает, есть ли точка с данным id в снимке
func (g *Graph) Contains(id uuid.UUID) bool {
	_, ok := g.nodes[id]
	return ok
}

// FindPaths возвращает все направленные маршруты длиной от 1 до maxDepth
// переходов, начинающиеся в startID. Обход в ширину по ребрам connectedTo;
// каждое пройденное ребро фиксируется как маршрут, то есть в результат
// попадают и частичные префиксы. Ограничение по maxDepth гарантирует
// завершение даже при циклах в графе. Висячие ребра (цель отсутствует в
// снимке) молча пропускаются. Пустой результат означает "нет контекста
// маршрутов", а не ошибку: так бывает, если стартовая точка не существует
// или не имеет исходящих связей.
func (g *Graph) FindPaths(startID uuid.UUID, maxDepth int) [][]uuid.UUID {
	paths := make([][]uuid.UUID, 0)
	if _, ok := g.nodes[startID]; !ok {
		return paths
	}

	type queueItem struct {
		id   uuid.UUID
		path []uuid.UUID
	}
	queue := []queueItem{{id: startID, path: []uuid.UUID{startID}}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		// Количество переходов в текущем маршруте
		hops := len(item.path) - 1
		if hops >= maxDepth {
			continue
		}

		wp := g.nodes[item.id]
		for _, next := range wp.ConnectedTo {
			if _, ok := g.nodes[next]; !ok {
				continue // висячее ребро
			}
			newPath := make([]uuid.UUID, len(item.path), len(item.path)+1)
			copy(newPath, item.path)
			newPath = append(newPath, next)

			paths = append(paths, newPath)
			queue = append(queue, queueItem{id: next, path: newPath})
		}
	}
	return paths
}

// PathName преобразует маршрут из id в читаемую строку имен для промпта
func (g *Graph) PathName(path []uuid.UUID) string {
	names := make([]string, 0, len(path))
	for _, id := range path {
		if wp, ok := g.nodes[id]; ok {
			names = append(names, wp.Name)
		}
	}
	return strings.Join(names, " → ")
}

// PathNames преобразует набор маршрутов в читаемые строки
func (g *Graph) PathNames(paths [][]uuid.UUID) []string {
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		result = append(result, g.PathName(p))
	}
	return result
}
