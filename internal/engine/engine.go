package engine

import (
	"fmt"

	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/heuristics"
	"github.com/specialistvlad/ldgraph/internal/nodeid"
	"github.com/specialistvlad/ldgraph/internal/ontology"
	"github.com/specialistvlad/ldgraph/internal/rating"
	"github.com/specialistvlad/ldgraph/internal/record"
	"github.com/specialistvlad/ldgraph/internal/vocab"
)

// Runtime kinds used in runtime node identifiers.
const (
	RuntimeNodeJS  = "nodejs"
	RuntimeNodeRED = "nodered"
)

// Config selects the per-integration behavior of the engine.
type Config struct {
	VersionStrategy string
	Preceders       []string
	RatingVariant   string
	Vocabulary      vocab.Config
}

// Batch is one input file worth of records.
type Batch struct {
	// Name is usually the input file name; it is slugified into identifiers.
	Name    string
	Records []record.Record
}

// Engine turns batches into graphs.
type Engine struct {
	cfg       Config
	extractor *heuristics.Extractor
}

// New validates cfg and returns an Engine.
func New(cfg Config) (*Engine, error) {
	extractor, err := heuristics.NewExtractor(cfg.VersionStrategy, cfg.Preceders)
	if err != nil {
		return nil, err
	}
	if _, ok := rating.ForVariant(cfg.RatingVariant, nil); !ok {
		return nil, fmt.Errorf("unknown rating variant %q", cfg.RatingVariant)
	}
	return &Engine{cfg: cfg, extractor: extractor}, nil
}

// Transform builds the graph for b. Records that share an identifier key
// share their nodes: later records add their types and values to the nodes
// of the first, and the graph's Merged count records each fold.
func (e *Engine) Transform(b Batch) *graph.Graph {
	ids := nodeid.NewBuilder(b.Name)

	labels := make([][]string, len(b.Records))
	engagement := make([]int, len(b.Records))
	for i, r := range b.Records {
		labels[i] = r.Categories
		engagement[i] = r.Engagement
	}
	voc := vocab.Build(ids, e.cfg.Vocabulary, labels)
	// Variant validity was checked in New.
	scale, _ := rating.ForVariant(e.cfg.RatingVariant, engagement)

	g := graph.New(ids.Graph())
	for _, n := range voc.Nodes() {
		g.Add(n)
	}
	for _, r := range b.Records {
		e.emitRecord(g, ids, voc, scale, r)
	}
	return g
}

func (e *Engine) emitRecord(g *graph.Graph, ids nodeid.Builder, voc *vocab.Vocabulary, scale rating.Scale, r record.Record) {
	key := r.Key()

	ratingID := ids.Rating(key)
	g.Merge(RatingNode(ratingID, scale.Rate(r.Engagement)))

	facts := e.extractor.Extract(r.Title)

	var about []string
	seen := make(map[string]struct{})
	emit := func(n *graph.Node) {
		if _, dup := seen[n.ID]; dup {
			return
		}
		seen[n.ID] = struct{}{}
		about = append(about, n.ID)
		g.Merge(n)
	}

	if facts.OS != "" {
		emit(graph.NewNode(ids.OS(key, string(facts.OS)), ontology.ClassOperatingSystem).
			Set(ontology.PropName, graph.Literal(string(facts.OS))))
	}
	if facts.NodeJS != "" {
		emit(versionNode(ids.Runtime(key, RuntimeNodeJS, facts.NodeJS), ontology.ClassNodeJS, facts.NodeJS))
	}
	for _, v := range facts.NodeRED {
		emit(versionNode(ids.Runtime(key, RuntimeNodeRED, v), ontology.ClassNodeRED, v))
	}

	docID := r.URL
	if docID == "" {
		docID = ids.Doc(key)
	}
	doc := graph.NewNode(docID, ontology.ClassDigitalDocument).
		Set(ontology.PropTitle, graph.Literal(r.Title)).
		SetIf(r.Date != "", ontology.PropDate, graph.Literal(r.Date)).
		SetIf(r.URL != "", ontology.PropURL, graph.Literal(r.URL)).
		Set(ontology.PropCategory, graph.Refs(voc.Resolve(r.Categories)...)...).
		Set(ontology.PropContentRating, graph.Ref(ratingID)).
		SetIf(facts.Containerised, ontology.PropIsContainerised, graph.Literal(true)).
		Set(ontology.PropAbout, graph.Refs(about...)...)
	g.Merge(doc)
}

// RatingNode builds a Rating node on the fixed [-10, 10] scale.
func RatingNode(id string, value int) *graph.Node {
	return graph.NewNode(id, ontology.ClassRating).
		Set(ontology.PropWorstRating, graph.Literal(rating.Worst)).
		Set(ontology.PropBestRating, graph.Literal(rating.Best)).
		Set(ontology.PropRatingValue, graph.Literal(value))
}

func versionNode(id, class, version string) *graph.Node {
	return graph.NewNode(id, class).Set(ontology.PropVersion, graph.Literal(version))
}
