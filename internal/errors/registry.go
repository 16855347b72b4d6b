package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Render Errors (N001-N009)
	// ============================================

	"N001": {
		Category:   CategoryRender,
		Message:    "Leaf node requires a value",
		Detail:     "A leaf was rendered without a value. Leaves render their value directly and have nothing to emit without one.",
		Suggestion: "Construct leaves with node.NewLeaf or node.Text",
	},
	"N002": {
		Category:   CategoryRender,
		Message:    "Parent node requires a tag",
		Detail:     "A parent wraps its children in an element and cannot render without a tag name.",
		Suggestion: "Pass a non-empty tag to node.NewParent",
	},
	"N003": {
		Category:   CategoryRender,
		Message:    "Parent node requires children",
		Detail:     "A parent was rendered with no children collection. Use an empty slice for an element with no content.",
		Suggestion: "Pass []node.Node{} instead of nil",
	},
	"N004": {
		Category: CategoryRender,
		Message:  "Node is nil",
		Detail:   "A nil node was rendered. Nil children are dropped when a parent is built, so this is a nil root.",
	},

	// ============================================
	// Decode Errors (N010-N019)
	// ============================================

	"N010": {
		Category: CategoryDecode,
		Message:  "Malformed tree document",
		Detail:   "The document is not a valid JSON node tree.",
	},
	"N011": {
		Category:   CategoryDecode,
		Message:    "Node has both value and children",
		Detail:     "A node is either a leaf (value) or a parent (children), never both.",
		Suggestion: "Move the value into a text child",
	},

	// ============================================
	// Config Errors (C120-C149)
	// ============================================

	"C120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "htmlnode.json could not be read or parsed.",
	},
	"C122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"C141": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create htmlnode.json or pass flags explicitly",
	},

	// ============================================
	// Sink Errors (S200-S209)
	// ============================================

	"S200": {
		Category: CategorySink,
		Message:  "Failed to write rendered output",
	},
	"S201": {
		Category: CategorySink,
		Message:  "Invalid output name",
		Detail:   "Output names must be relative and must not escape the output directory.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
