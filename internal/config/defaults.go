package config

// Names of the built-in profiles.
const (
	ProfileForum  = "forum"
	ProfileIssues = "issues"
	ProfileFlows  = "flows"
)

// DefaultForumURL is the Node-RED forum; topic URLs are built under /t/.
const DefaultForumURL = "https://discourse.nodered.org"

// DefaultFlowsGraphID names the flow-library graph.
const DefaultFlowsGraphID = "urn:graph:flowslib"

// GitHubLabels is the fixed vocabulary of the Node-RED issue tracker.
var GitHubLabels = []string{
	"backport-2.x", "bug", "build", "chore", "dependencies", "docs", "duplicate",
	"editor", "enhancement", "epic", "feature", "fixed", "good first issue",
	"hacktoberfest-accepted", "needs-info", "needs-test-case", "needs-triage",
	"node", "packaging", "project-modernization", "question", "ready-to-review",
	"runtime", "task", "testing", "upstream", "wontfix",
}

// NodeREDPreceders are the words that may introduce a Node-RED version.
var NodeREDPreceders = []string{"nr", "nodered", "node-red"}

// Builtins returns fresh copies of the built-in profiles.
func Builtins() []*Profile {
	forum := &Profile{
		Name:            ProfileForum,
		Source:          SourceDiscourse,
		VersionStrategy: "anchored",
		Preceders:       NodeREDPreceders,
		RatingVariant:   "linear_rescale",
		TermSetName:     "Node-RED Forum Tags",
		TermSetKey:      "tags",
		TermKind:        "tag",
		BaseURL:         DefaultForumURL,
		Compact:         true,
	}
	issues := &Profile{
		Name:            ProfileIssues,
		Source:          SourceGitHub,
		VersionStrategy: "unanchored",
		RatingVariant:   "signed_clamp",
		FilterLabels:    true,
		Labels:          GitHubLabels,
		TermSetName:     "Node-RED GitHub Labels",
		TermSetKey:      "labels",
		TermKind:        "label",
		Compact:         true,
	}
	flows := &Profile{
		Name:    ProfileFlows,
		Source:  SourceFlows,
		GraphID: DefaultFlowsGraphID,
		Compact: true,
	}
	return []*Profile{forum.Clone(), issues.Clone(), flows.Clone()}
}
