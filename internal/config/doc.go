// Package config loads htmlify.json.
//
// The file is looked up in the working directory and its parents. Missing
// fields get defaults, then HTMLIFY_* environment variables override them.
// Command line flags are applied on top by the CLI.
package config
