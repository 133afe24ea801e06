package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (H100-H199)
	"H100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "htmlify looks for htmlify.json in the working directory and its parents.",
	},
	"H101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "htmlify.json could not be parsed as JSON.",
	},
	"H102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// Documents (H200-H299)
	"H200": {
		Category: CategoryDocument,
		Message:  "Could not read document",
		Detail:   "Documents are YAML or JSON trees of tag, attributes, children, text and markdown fields.",
	},
	"H201": {
		Category: CategoryDocument,
		Message:  "Invalid document node",
	},

	// Rendering (H300-H399)
	"H300": {
		Category: CategoryRender,
		Message:  "Rendering failed",
	},
	"H301": {
		Category: CategoryRender,
		Message:  "DOM materialization failed",
		Detail:   "The document host rejected an element or attribute name. Empty tags cannot be materialized.",
	},

	// Publishing (H400-H499)
	"H400": {
		Category: CategoryPublish,
		Message:  "Publishing failed",
	},
	"H401": {
		Category: CategoryPublish,
		Message:  "Invalid publish key",
		Detail:   "Keys are relative slash separated paths and may not contain '..' segments.",
	},

	// Server (H500-H599)
	"H500": {
		Category: CategoryServer,
		Message:  "Preview server failed",
	},
	"H501": {
		Category: CategoryServer,
		Message:  "Invalid request parameter",
	},

	// CLI (H900-H999)
	"H900": {
		Category: CategoryCLI,
		Message:  "Invalid command line",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
