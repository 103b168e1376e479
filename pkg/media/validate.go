package media

import (
	"fmt"
	"sort"
)

// Problem describes one defect found while validating a hierarchy.
type Problem struct {
	// Class is the class the problem was found at.
	Class string

	// Message describes the problem.
	Message string
}

// String formats the problem for display.
func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Class, p.Message)
}

// Validate checks the whole hierarchy and returns all problems found:
// parents that were never registered, and cycles. A valid registry is
// singly rooted by construction, since every chain of known parents
// ends at the implicit root.
func (r *Registry) Validate() []Problem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var problems []Problem

	for _, name := range r.defOrder {
		def := r.defs[name]
		if def.Parent == "" {
			continue
		}
		if _, ok := r.defs[def.Parent]; !ok {
			problems = append(problems, Problem{
				Class:   name,
				Message: fmt.Sprintf("parent %q is not registered", def.Parent),
			})
		}
	}

	for _, name := range cycleMembers(r.defs) {
		problems = append(problems, Problem{
			Class:   name,
			Message: "class is part of a parent cycle",
		})
	}

	return problems
}

// cycleMembers returns, sorted, every class that sits on a parent
// cycle. Classes whose chain merely runs into a cycle are not listed;
// only the cycle itself is.
func cycleMembers(defs map[string]*Definition) []string {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(defs))
	onCycle := make(map[string]bool)

	for start := range defs {
		if state[start] != unvisited {
			continue
		}
		var stack []string
		name := start
		for {
			def, known := defs[name]
			if !known || state[name] == done {
				break
			}
			if state[name] == inStack {
				// Everything from the first occurrence of name on the
				// stack is the cycle.
				for i := len(stack) - 1; i >= 0; i-- {
					onCycle[stack[i]] = true
					if stack[i] == name {
						break
					}
				}
				break
			}
			state[name] = inStack
			stack = append(stack, name)
			name = def.Parent
		}
		for _, n := range stack {
			state[n] = done
		}
	}

	out := make([]string, 0, len(onCycle))
	for name := range onCycle {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
