package pairing

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// synthesizeMultiplets implements C9: every connected component of three
// or more base indices in the graph of kind=pair edges (a
// connected-component analysis over the pair graph, not merely a "shares
// a partner" check) is reported as a multiplet (§4.8). kind=stacked and kind=unknown edges never
// contribute to the graph.
func synthesizeMultiplets(records []PairRecord) []Multiplet {
	adj := map[BaseIndex]map[BaseIndex]bool{}
	for _, r := range records {
		if r.Kind != KindPair {
			continue
		}
		if adj[r.I] == nil {
			adj[r.I] = map[BaseIndex]bool{}
		}
		if adj[r.J] == nil {
			adj[r.J] = map[BaseIndex]bool{}
		}
		adj[r.I][r.J] = true
		adj[r.J][r.I] = true
	}

	visited := map[BaseIndex]bool{}
	var multiplets []Multiplet

	nodes := maps.Keys(adj)
	slices.Sort(nodes)

	for _, start := range nodes {
		if visited[start] {
			continue
		}
		component := []BaseIndex{}
		stack := []BaseIndex{start}
		visited[start] = true
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, n)
			neighbors := maps.Keys(adj[n])
			slices.Sort(neighbors)
			for _, nb := range neighbors {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		if len(component) < 3 {
			continue
		}
		slices.Sort(component)
		multiplets = append(multiplets, Multiplet{
			Indices: component,
			Text:    multipletText(component, records),
		})
	}

	slices.SortFunc(multiplets, func(a, b Multiplet) bool {
		return a.Indices[0] < b.Indices[0]
	})

	return multiplets
}

// multipletText builds the §4.8 canonical text form: one "i: base_i-base_j
// (edge_i/edge_j)" line per kind=pair edge inside the component, sorted
// ascending (i,j) and joined by "+". This is part of the regression
// contract, not a display convenience.
func multipletText(component []BaseIndex, records []PairRecord) string {
	member := map[BaseIndex]bool{}
	for _, idx := range component {
		member[idx] = true
	}

	var edges []PairRecord
	for _, r := range records {
		if r.Kind == KindPair && member[r.I] && member[r.J] {
			edges = append(edges, r)
		}
	}
	slices.SortFunc(edges, func(a, b PairRecord) bool {
		if a.I != b.I {
			return a.I < b.I
		}
		return a.J < b.J
	})

	parts := make([]string, len(edges))
	for i, r := range edges {
		parts[i] = fmt.Sprintf("%d: %s-%s (%s)", r.I, r.LetterI.String(), r.LetterJ.String(), r.LW)
	}
	return strings.Join(parts, "+")
}
