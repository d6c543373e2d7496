package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/heuristics"
	"github.com/specialistvlad/ldgraph/internal/ontology"
	"github.com/specialistvlad/ldgraph/internal/rating"
	"github.com/specialistvlad/ldgraph/internal/record"
	"github.com/specialistvlad/ldgraph/internal/vocab"
)

func forumConfig() Config {
	return Config{
		VersionStrategy: heuristics.StrategyAnchored,
		Preceders:       []string{"nr", "nodered", "node-red"},
		RatingVariant:   rating.VariantLinearRescale,
		Vocabulary:      vocab.Config{Name: "Node-RED Forum Tags", SetKey: "tags", TermKind: "tag"},
	}
}

func issuesConfig() Config {
	return Config{
		VersionStrategy: heuristics.StrategyUnanchored,
		RatingVariant:   rating.VariantSignedClamp,
		Vocabulary: vocab.Config{
			Name: "Node-RED GitHub Labels", SetKey: "labels", TermKind: "label",
			Filtered: true, AllowList: []string{"bug", "docs"},
		},
	}
}

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func refs(t *testing.T, n *graph.Node, prop string) []string {
	t.Helper()
	values, ok := n.Get(prop)
	require.True(t, ok, "property %s missing on %s", prop, n.ID)
	out := make([]string, len(values))
	for i, v := range values {
		require.True(t, v.IsRef())
		out[i] = v.Ref
	}
	return out
}

func ratingValue(t *testing.T, g *graph.Graph, id string) any {
	t.Helper()
	n, ok := g.Node(id)
	require.True(t, ok)
	values, ok := n.Get(ontology.PropRatingValue)
	require.True(t, ok)
	require.Len(t, values, 1)
	return values[0].Literal
}

func TestNew_Errors(t *testing.T) {
	cfg := forumConfig()
	cfg.VersionStrategy = "fuzzy"
	_, err := New(cfg)
	require.Error(t, err)

	cfg = forumConfig()
	cfg.Preceders = nil
	_, err = New(cfg)
	require.Error(t, err)

	cfg = forumConfig()
	cfg.RatingVariant = "log"
	_, err = New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log")
}

func TestTransform_ForumBatch(t *testing.T) {
	e := newEngine(t, forumConfig())

	g := e.Transform(Batch{
		Name: "Latest Topics.json",
		Records: []record.Record{
			{
				ID: "1", Title: "Docker NR 3.1.0 on macOS", Engagement: 0,
				Categories: []string{"bug"}, Date: "2024-01-01T00:00:00Z",
				URL: "https://discourse.nodered.org/t/docker-nr/1",
			},
			{ID: "2", Title: "Dashboard question", Engagement: 10, Categories: []string{"bug", "dashboard"}},
		},
	})

	want := []*graph.Node{
		graph.NewNode("urn:termset:latest-topics:tags", ontology.ClassDefinedTermSet).
			Set(ontology.PropName, graph.Literal("Node-RED Forum Tags")),
		graph.NewNode("urn:term:latest-topics:tag:bug", ontology.ClassDefinedTerm).
			Set(ontology.PropName, graph.Literal("bug")).
			Set(ontology.PropInDefinedTermSet, graph.Ref("urn:termset:latest-topics:tags")),
		graph.NewNode("urn:term:latest-topics:tag:dashboard", ontology.ClassDefinedTerm).
			Set(ontology.PropName, graph.Literal("dashboard")).
			Set(ontology.PropInDefinedTermSet, graph.Ref("urn:termset:latest-topics:tags")),
		RatingNode("urn:rating:latest-topics:1", -10),
		graph.NewNode("urn:os:latest-topics:1:darwin", ontology.ClassOperatingSystem).
			Set(ontology.PropName, graph.Literal("darwin")),
		graph.NewNode("urn:runtime:latest-topics:1:nodered:3-1", ontology.ClassNodeRED).
			Set(ontology.PropVersion, graph.Literal("3.1.0")),
		graph.NewNode("https://discourse.nodered.org/t/docker-nr/1", ontology.ClassDigitalDocument).
			Set(ontology.PropTitle, graph.Literal("Docker NR 3.1.0 on macOS")).
			Set(ontology.PropDate, graph.Literal("2024-01-01T00:00:00Z")).
			Set(ontology.PropURL, graph.Literal("https://discourse.nodered.org/t/docker-nr/1")).
			Set(ontology.PropCategory, graph.Ref("urn:term:latest-topics:tag:bug")).
			Set(ontology.PropContentRating, graph.Ref("urn:rating:latest-topics:1")).
			Set(ontology.PropIsContainerised, graph.Literal(true)).
			Set(ontology.PropAbout, graph.Ref("urn:os:latest-topics:1:darwin"), graph.Ref("urn:runtime:latest-topics:1:nodered:3-1")),
		RatingNode("urn:rating:latest-topics:2", 10),
		graph.NewNode("urn:doc:latest-topics:2", ontology.ClassDigitalDocument).
			Set(ontology.PropTitle, graph.Literal("Dashboard question")).
			Set(ontology.PropCategory, graph.Ref("urn:term:latest-topics:tag:bug"), graph.Ref("urn:term:latest-topics:tag:dashboard")).
			Set(ontology.PropContentRating, graph.Ref("urn:rating:latest-topics:2")),
	}

	assert.Equal(t, "urn:graph:latest-topics", g.ID)
	if diff := cmp.Diff(want, g.Nodes); diff != "" {
		t.Errorf("graph nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_OptionalPropertiesOmitted(t *testing.T) {
	e := newEngine(t, forumConfig())
	g := e.Transform(Batch{Name: "x", Records: []record.Record{{ID: "9", Title: "Plain title"}}})

	doc, ok := g.Node("urn:doc:x:9")
	require.True(t, ok)
	for _, prop := range []string{
		ontology.PropDate, ontology.PropURL, ontology.PropCategory,
		ontology.PropIsContainerised, ontology.PropAbout,
	} {
		_, present := doc.Get(prop)
		assert.False(t, present, "%s must be absent", prop)
	}
	_, present := doc.Get(ontology.PropContentRating)
	assert.True(t, present)
}

func TestTransform_LinearBounds(t *testing.T) {
	e := newEngine(t, forumConfig())

	t.Run("min and max map to the ends", func(t *testing.T) {
		g := e.Transform(Batch{Name: "b", Records: []record.Record{
			{ID: "a", Engagement: 3}, {ID: "b", Engagement: 8}, {ID: "c", Engagement: 13}, {ID: "d", Engagement: 3},
		}})
		assert.Equal(t, -10, ratingValue(t, g, "urn:rating:b:a"))
		assert.Equal(t, 0, ratingValue(t, g, "urn:rating:b:b"))
		assert.Equal(t, 10, ratingValue(t, g, "urn:rating:b:c"))
		assert.Equal(t, -10, ratingValue(t, g, "urn:rating:b:d"))
	})

	t.Run("equal engagement rates zero", func(t *testing.T) {
		g := e.Transform(Batch{Name: "b", Records: []record.Record{
			{ID: "a", Engagement: 7}, {ID: "b", Engagement: 7},
		}})
		assert.Equal(t, 0, ratingValue(t, g, "urn:rating:b:a"))
		assert.Equal(t, 0, ratingValue(t, g, "urn:rating:b:b"))
	})
}

func TestTransform_IssuesBatch(t *testing.T) {
	e := newEngine(t, issuesConfig())

	g := e.Transform(Batch{Name: "issues.json", Records: []record.Record{
		{ID: "10", Title: "Crashes on node.js 18.19.0 only", Engagement: 15, Categories: []string{"bug", "triage"}},
		{ID: "11", Title: "Editor 4.0.2 hangs", Engagement: -3},
	}})

	assert.Equal(t, 10, ratingValue(t, g, "urn:rating:issues:10"))
	assert.Equal(t, -3, ratingValue(t, g, "urn:rating:issues:11"))

	_, ok := g.Node("urn:term:issues:label:docs")
	assert.True(t, ok, "allow-listed labels are emitted even when unused")

	doc, ok := g.Node("urn:doc:issues:10")
	require.True(t, ok)
	assert.Equal(t, []string{"urn:term:issues:label:bug"}, refs(t, doc, ontology.PropCategory))
	assert.Equal(t, []string{"urn:runtime:issues:10:nodejs:18-19"}, refs(t, doc, ontology.PropAbout))

	doc, ok = g.Node("urn:doc:issues:11")
	require.True(t, ok)
	assert.Equal(t, []string{"urn:runtime:issues:11:nodered:4-0"}, refs(t, doc, ontology.PropAbout))
}

func TestTransform_SharedTerm(t *testing.T) {
	e := newEngine(t, forumConfig())
	g := e.Transform(Batch{Name: "t", Records: []record.Record{
		{ID: "1", Categories: []string{"bug"}},
		{ID: "2", Categories: []string{"bug"}},
	}})

	counts := g.CountByType()
	assert.Equal(t, 1, counts[ontology.ClassDefinedTerm])

	for _, id := range []string{"urn:doc:t:1", "urn:doc:t:2"} {
		doc, ok := g.Node(id)
		require.True(t, ok)
		assert.Equal(t, []string{"urn:term:t:tag:bug"}, refs(t, doc, ontology.PropCategory))
	}
}

func TestTransform_CollidingVersionSlugs(t *testing.T) {
	e := newEngine(t, forumConfig())
	g := e.Transform(Batch{Name: "t", Records: []record.Record{
		{ID: "1", Title: "NR 3.1.0 vs NR 3.1.5"},
	}})

	assert.Equal(t, 1, g.CountByType()[ontology.ClassNodeRED])
	doc, ok := g.Node("urn:doc:t:1")
	require.True(t, ok)
	assert.Equal(t, []string{"urn:runtime:t:1:nodered:3-1"}, refs(t, doc, ontology.PropAbout))
}

func TestTransform_KeyFallbacks(t *testing.T) {
	e := newEngine(t, forumConfig())
	g := e.Transform(Batch{Name: "t", Records: []record.Record{
		{Title: "Flow won't deploy"},
		{},
	}})

	_, ok := g.Node("urn:doc:t:flow-won-t-deploy")
	assert.True(t, ok)
	_, ok = g.Node("urn:doc:t:unknown")
	assert.True(t, ok)
}

func TestTransform_SharedKeysMerge(t *testing.T) {
	e := newEngine(t, forumConfig())
	g := e.Transform(Batch{Name: "t", Records: []record.Record{
		{Title: "Help", Engagement: 0},
		{Title: "Help", Engagement: 10, Categories: []string{"bug"}},
		{Engagement: 1},
		{Engagement: 2},
	}})

	counts := g.CountByType()
	assert.Equal(t, 2, counts[ontology.ClassDigitalDocument])
	assert.Equal(t, 2, counts[ontology.ClassRating])
	assert.Equal(t, 4, g.Merged)

	doc, ok := g.Node("urn:doc:t:help")
	require.True(t, ok)
	assert.Equal(t, []string{"urn:term:t:tag:bug"}, refs(t, doc, ontology.PropCategory))
	assert.Equal(t, []string{"urn:rating:t:help"}, refs(t, doc, ontology.PropContentRating))
	titles, ok := doc.Get(ontology.PropTitle)
	require.True(t, ok)
	assert.Equal(t, []graph.Value{graph.Literal("Help")}, titles)

	n, ok := g.Node("urn:rating:t:help")
	require.True(t, ok)
	values, ok := n.Get(ontology.PropRatingValue)
	require.True(t, ok)
	assert.Equal(t, []graph.Value{graph.Literal(-10), graph.Literal(10)}, values)
}

func TestTransform_EmptyBatch(t *testing.T) {
	e := newEngine(t, forumConfig())
	g := e.Transform(Batch{Name: "empty.json"})
	require.Equal(t, 1, g.Len())
	assert.Equal(t, "urn:termset:empty:tags", g.Nodes[0].ID)
}

func TestTransform_Idempotent(t *testing.T) {
	e := newEngine(t, forumConfig())
	b := Batch{Name: "same.json", Records: []record.Record{
		{ID: "1", Title: "NR 3.1.0 on Linux in Docker", Engagement: 4, Categories: []string{"z", "a"}},
		{ID: "2", Title: "node.js 20.1 and nodered 4.0", Engagement: 1},
	}}

	first := e.Transform(b)
	second := e.Transform(b)
	if diff := cmp.Diff(first, second, cmpopts.IgnoreUnexported(graph.Graph{})); diff != "" {
		t.Errorf("transform is not deterministic (-first +second):\n%s", diff)
	}
}
