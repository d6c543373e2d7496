package flowlib

import (
	"fmt"
	"strings"
)

// Scale replicates every flow and its nodes factor times.
//
// The output holds the nodes outside any flow once, then the original flows
// and their nodes, then copies 2..factor. In copy k every node id x becomes
// x_k wherever the string appears, and tab labels, tab names and non-empty node
// names get a "[rk] " prefix.
func Scale(nodes []map[string]any, factor int) ([]map[string]any, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale factor must be >= 1, got %d", factor)
	}

	var tabs []map[string]any
	tabIDs := make(map[string]struct{})
	for _, n := range nodes {
		if isTab(n) {
			tabs = append(tabs, n)
			tabIDs[str(n, "id")] = struct{}{}
		}
	}

	byTab := make(map[string][]map[string]any, len(tabs))
	var others []map[string]any
	for _, n := range nodes {
		if t, _ := n["type"].(string); t == TypeTab {
			continue
		}
		if _, ok := tabIDs[str(n, "z")]; ok {
			byTab[str(n, "z")] = append(byTab[str(n, "z")], n)
			continue
		}
		others = append(others, n)
	}

	var out []map[string]any
	for _, n := range others {
		out = append(out, rewrite(n, nil))
	}
	for _, tab := range tabs {
		out = append(out, rewrite(tab, nil))
	}
	for _, tab := range tabs {
		for _, n := range byTab[str(tab, "id")] {
			out = append(out, rewrite(n, nil))
		}
	}

	for k := 2; k <= factor; k++ {
		var replica []map[string]any
		for _, tab := range tabs {
			replica = append(replica, tab)
			replica = append(replica, byTab[str(tab, "id")]...)
		}

		idMap := make(map[string]string)
		for _, n := range replica {
			if id, ok := n["id"].(string); ok {
				idMap[id] = fmt.Sprintf("%s_%d", id, k)
			}
		}

		prefix := fmt.Sprintf("[r%d] ", k)
		for _, n := range replica {
			copied := rewrite(n, idMap)
			prefixNames(copied, prefix)
			out = append(out, copied)
		}
	}
	return out, nil
}

// rewrite deep-copies a node, replacing every string that is a key of idMap.
func rewrite(n map[string]any, idMap map[string]string) map[string]any {
	return replaceIDs(n, idMap).(map[string]any)
}

func replaceIDs(v any, idMap map[string]string) any {
	switch x := v.(type) {
	case string:
		if mapped, ok := idMap[x]; ok {
			return mapped
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = replaceIDs(item, idMap)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = replaceIDs(item, idMap)
		}
		return out
	default:
		return x
	}
}

func prefixNames(n map[string]any, prefix string) {
	if t, _ := n["type"].(string); t == TypeTab {
		for _, key := range []string{"label", "name"} {
			if s, ok := n[key].(string); ok && !strings.HasPrefix(s, prefix) {
				n[key] = prefix + s
			}
		}
		return
	}
	if s, ok := n["name"].(string); ok && s != "" && !strings.HasPrefix(s, prefix) {
		n["name"] = prefix + s
	}
}
