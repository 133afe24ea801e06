package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlify/internal/errors"
	"github.com/vango-dev/htmlify/pkg/dom"
	"github.com/vango-dev/htmlify/pkg/dom/htmldoc"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/tree"
)

func renderCmd() *cobra.Command {
	var (
		format   string
		sanitize bool
		useDOM   bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to stdout",
		Long: `Render a YAML or JSON document to HTML markup.

The document is read from file, or from stdin when no file is given.
With --dom the document is built in an in-memory DOM and the body is
serialized instead.

Examples:
  htmlify render page.yaml
  htmlify render --format=compact page.yaml
  cat page.json | htmlify render --sanitize`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Render.Format
			}
			if !cmd.Flags().Changed("sanitize") {
				sanitize = cfg.Render.Sanitize
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			node, err := readDocument(cmd.InOrStdin(), path, sanitize)
			if err != nil {
				return err
			}

			out, err := renderNode(node, format, useDOM)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "compat", "Markup layout: compat or compact")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "Sanitize text with the UGC policy")
	cmd.Flags().BoolVar(&useDOM, "dom", false, "Materialize through the in-memory DOM")

	return cmd
}

// readDocument decodes the document at path, or stdin when path is empty.
func readDocument(stdin io.Reader, path string, sanitize bool) (markup.Node, error) {
	r := stdin
	name := "stdin"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.New("H200").WithDetail("Could not open " + path).Wrap(err)
		}
		defer f.Close()
		r = f
		name = path
	}

	var opts []tree.Option
	if sanitize {
		opts = append(opts, tree.WithUGCSanitizer())
	}

	node, err := tree.Decode(r, opts...)
	if err != nil {
		code := "H200"
		if stderrors.Is(err, tree.ErrInvalidNode) || stderrors.Is(err, tree.ErrMarkdown) {
			code = "H201"
		}
		return nil, errors.New(code).WithDetail("While reading " + name).Wrap(err)
	}

	stats := tree.Measure(node)
	slog.Debug("decoded document",
		"source", name,
		"nodes", stats.Nodes,
		"elements", stats.Elements,
		"depth", stats.Depth,
	)
	return node, nil
}

func renderNode(node markup.Node, format string, useDOM bool) (string, error) {
	if useDOM {
		doc := htmldoc.New()
		if err := dom.AppendToBody(doc, node); err != nil {
			return "", errors.New("H301").Wrap(err)
		}
		slog.Debug("materialized document", "elements", doc.Created())
		return doc.BodyHTML(), nil
	}

	f, err := markup.ParseFormat(format)
	if err != nil {
		return "", errors.New("H900").Wrap(err).WithSuggestion("Use --format=compat or --format=compact")
	}
	out, err := markup.NewRenderer(markup.RendererConfig{Format: f}).RenderToString(node)
	if err != nil {
		return "", errors.New("H300").Wrap(err)
	}
	return out, nil
}
