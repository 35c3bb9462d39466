package internal

// ReconstructPath walks cameFrom back from current to start and returns the
// nodes in start-to-current order. It stops early if a predecessor is
// missing, or after len(cameFrom)+1 nodes if cameFrom contains a cycle.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start && len(path) <= len(cameFrom) {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
