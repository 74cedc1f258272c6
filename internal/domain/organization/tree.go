package organization

import "sort"

// Node is an organization with its children, for hierarchy listings.
type Node struct {
	Organization *Organization
	Children     []*Node
}

// BuildForest arranges organizations into trees. Organizations whose parent
// is not in the input become roots. Siblings are ordered by type rank, then name.
func BuildForest(orgs []*Organization) []*Node {
	nodes := make(map[uint]*Node, len(orgs))
	for _, o := range orgs {
		nodes[o.ID()] = &Node{Organization: o}
	}

	var roots []*Node
	for _, o := range orgs {
		n := nodes[o.ID()]
		if pid := o.ParentID(); pid != nil {
			if parent, ok := nodes[*pid]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	sortNodes(roots)
	return roots
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Organization, nodes[j].Organization
		if a.Type().Rank() != b.Type().Rank() {
			return a.Type().Rank() < b.Type().Rank()
		}
		return a.Name() < b.Name()
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}
