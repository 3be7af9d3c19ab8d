package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Resolution Errors (W001-W019)
	// ============================================

	"W001": {
		Category:   CategoryResolution,
		Message:    "Route resolution failed",
		Detail:     "The route files could not be resolved into a navigation tree.",
		Suggestion: "The underlying error names the conflicting or invalid files. Rename or remove them.",
		DocURL:     "https://wayfind.dev/docs/errors/W001",
	},
	"W002": {
		Category:   CategoryResolution,
		Message:    "No routes found",
		Detail:     "The routes directory holds no view files, so there is no tree to resolve.",
		Suggestion: "Add at least one route file, e.g. index.tsx, to the routes directory.",
		DocURL:     "https://wayfind.dev/docs/errors/W002",
	},

	// ============================================
	// Config Errors (W020-W039)
	// ============================================

	"W020": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No wayfind.json was found in the project directory or any parent directory.",
		Suggestion: "Run wayfind from a project directory, or create a wayfind.json.",
		DocURL:     "https://wayfind.dev/docs/errors/W020",
	},
	"W021": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "wayfind.json exists but could not be parsed.",
		Suggestion: "Check the file for JSON syntax errors.",
		DocURL:     "https://wayfind.dev/docs/errors/W021",
	},
	"W022": {
		Category:   CategoryConfig,
		Message:    "Invalid ignore pattern",
		Detail:     "An entry in the ignore list is not a valid regular expression.",
		DocURL:     "https://wayfind.dev/docs/errors/W022",
	},
	"W023": {
		Category:   CategoryConfig,
		Message:    "Routes directory not found",
		Detail:     "The configured routes directory does not exist.",
		Suggestion: "Create the directory or point paths.routes at the right place.",
		DocURL:     "https://wayfind.dev/docs/errors/W023",
	},

	// ============================================
	// CLI Errors (W040-W059)
	// ============================================

	"W040": {
		Category: CategoryCLI,
		Message:  "Dev server failed to start",
		Detail:   "The development server could not bind its address or begin watching.",
		DocURL:   "https://wayfind.dev/docs/errors/W040",
	},
}
