package main

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlify/internal/errors"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		dir      string
		bucket   string
		prefix   string
		region   string
		endpoint string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "publish <file> <key>",
		Short: "Render a document and store it",
		Long: `Render a document and store the markup under key.

Markup goes to a local directory, or to an S3 bucket when --bucket
(or publish.s3.bucket in htmlify.json) is set. S3 credentials are read
from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  htmlify publish page.yaml index.html
  htmlify publish --dir=public page.yaml docs/intro.html
  htmlify publish --bucket=site --prefix=v1/ page.yaml index.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Publish.Dir = dir
			}
			s3cfg := cfg.PublishS3Config()
			if bucket != "" {
				s3cfg.Bucket = bucket
			}
			if prefix != "" {
				s3cfg.Prefix = prefix
			}
			if region != "" {
				s3cfg.Region = region
			}
			if endpoint != "" {
				s3cfg.Endpoint = endpoint
				s3cfg.PathStyle = true
			}
			if cmd.Flags().Changed("format") {
				cfg.Render.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			node, err := readDocument(nil, args[0], cfg.Render.Sanitize)
			if err != nil {
				return err
			}

			var store publish.Store
			if s3cfg.Bucket != "" && !cmd.Flags().Changed("dir") {
				if store, err = publish.NewS3Store(s3cfg); err != nil {
					return errors.New("H400").Wrap(err)
				}
			} else {
				if store, err = publish.NewDiskStore(cfg.Publish.Dir); err != nil {
					return errors.New("H400").Wrap(err)
				}
			}

			renderer := markup.NewRenderer(cfg.RendererConfig())
			location, err := publish.Publish(cmd.Context(), store, args[1], node, renderer)
			if err != nil {
				if stderrors.Is(err, publish.ErrInvalidKey) {
					return errors.New("H401").Wrap(err)
				}
				return errors.New("H400").Wrap(err)
			}

			success(cmd.OutOrStdout(), "Published %s", location)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from htmlify.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "S3 region")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVarP(&format, "format", "f", "compat", "Markup layout: compat or compact")

	return cmd
}
