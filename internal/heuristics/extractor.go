package heuristics

import "fmt"

// Strategy names accepted in exporter profiles.
const (
	StrategyAnchored   = "anchored"
	StrategyUnanchored = "unanchored"
)

// Facts are the heuristics derived from one title.
type Facts struct {
	OS            Platform // empty when no rule matched
	NodeJS        string   // empty when no Node.js version was found
	NodeRED       []string
	Containerised bool
}

// Extractor applies every title heuristic with a fixed version strategy.
type Extractor struct {
	anchored  bool
	preceders Preceders
}

// NewExtractor returns an Extractor for the given strategy. Preceders are only
// used by the anchored strategy, which requires at least one.
func NewExtractor(strategy string, preceders []string) (*Extractor, error) {
	switch strategy {
	case StrategyAnchored:
		p := NewPreceders(preceders...)
		if len(p) == 0 {
			return nil, fmt.Errorf("anchored version strategy needs at least one preceder")
		}
		return &Extractor{anchored: true, preceders: p}, nil
	case StrategyUnanchored:
		return &Extractor{}, nil
	default:
		return nil, fmt.Errorf("unknown version strategy %q", strategy)
	}
}

// Extract runs all heuristics over title.
func (e *Extractor) Extract(title string) Facts {
	var f Facts

	if p, ok := DetectOS(title); ok {
		f.OS = p
	}

	nodeJS, span, hasNodeJS := NodeJSVersion(title)
	if hasNodeJS {
		f.NodeJS = nodeJS
	}

	if e.anchored {
		f.NodeRED = AnchoredVersions(title, e.preceders)
	} else if hasNodeJS {
		f.NodeRED = UnanchoredVersions(title, span)
	} else {
		f.NodeRED = UnanchoredVersions(title)
	}

	f.Containerised = IsContainerised(title)
	return f
}
