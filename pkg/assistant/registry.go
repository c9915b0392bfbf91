package assistant

import "github.com/dviresh/go-leetvoice/pkg/inference"

// ToolKind enumerates the tools the assistant can execute. The set is
// closed: adding a tool means adding a kind here, a declaration in
// NewRegistry, and a case in Dispatcher.invoke — the compiler flags a
// missing case.
type ToolKind int

const (
	// ToolUnknown is the zero value and never appears in the registry.
	ToolUnknown ToolKind = iota

	// ToolDailyChallenge fetches today's daily challenge.
	ToolDailyChallenge

	// ToolProblem looks up one problem by title slug.
	ToolProblem

	// ToolSearchProblems searches problems by keywords and difficulty.
	ToolSearchProblems

	// ToolUserProfile fetches a user's public profile.
	ToolUserProfile

	// ToolRecentSubmissions fetches a user's recent submissions.
	ToolRecentSubmissions
)

// ToolDeclaration describes one tool as advertised to the reasoning
// service: a unique name, a model-facing description, and a JSON-schema
// parameter object.
type ToolDeclaration struct {
	Kind        ToolKind
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Registry is the ordered, read-only catalog of tool declarations.
// It is constructed once at startup and never mutated.
type Registry struct {
	decls  []ToolDeclaration
	byName map[string]ToolDeclaration
}

// NewRegistry builds the fixed tool catalog.
func NewRegistry() *Registry {
	decls := []ToolDeclaration{
		{
			Kind:        ToolDailyChallenge,
			Name:        "get_daily_challenge",
			Description: "Get today's LeetCode daily challenge problem",
			Parameters: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
				"required":   []string{},
			},
		},
		{
			Kind:        ToolProblem,
			Name:        "get_problem",
			Description: "Get details about a specific LeetCode problem",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title_slug": map[string]interface{}{
						"type":        "string",
						"description": "The problem slug (e.g., 'two-sum', 'add-two-numbers')",
					},
				},
				"required": []string{"title_slug"},
			},
		},
		{
			Kind:        ToolSearchProblems,
			Name:        "search_problems",
			Description: "Search for LeetCode problems by keywords, tags, or difficulty",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"keywords": map[string]interface{}{
						"type":        "string",
						"description": "Search keywords",
					},
					"difficulty": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"EASY", "MEDIUM", "HARD"},
						"description": "Problem difficulty level",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Number of results to return",
						"default":     5,
					},
				},
				"required": []string{},
			},
		},
		{
			Kind:        ToolUserProfile,
			Name:        "get_user_profile",
			Description: "Get LeetCode user profile information",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"username": map[string]interface{}{
						"type":        "string",
						"description": "LeetCode username (optional if default user is set)",
					},
				},
				"required": []string{},
			},
		},
		{
			Kind:        ToolRecentSubmissions,
			Name:        "get_recent_submissions",
			Description: "Get user's recent LeetCode submissions",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"username": map[string]interface{}{
						"type":        "string",
						"description": "LeetCode username (optional if default user is set)",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Number of submissions to return",
						"default":     10,
					},
				},
				"required": []string{},
			},
		},
	}

	byName := make(map[string]ToolDeclaration, len(decls))
	for _, d := range decls {
		byName[d.Name] = d
	}
	return &Registry{decls: decls, byName: byName}
}

// Declarations returns the catalog in registration order, converted to
// the inference tool format.
func (r *Registry) Declarations() []inference.Tool {
	tools := make([]inference.Tool, len(r.decls))
	for i, d := range r.decls {
		tools[i] = inference.NewTool(d.Name, d.Description, d.Parameters)
	}
	return tools
}

// Lookup finds a declaration by tool name.
func (r *Registry) Lookup(name string) (ToolDeclaration, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.decls)
}
