package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/openapi"
	"github.com/goliatone/go-resourcegen/pkg/render"
	"github.com/goliatone/go-resourcegen/pkg/validation"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			name := color.New(color.FgCyan, color.Bold)
			warn := color.New(color.FgYellow)
			req := a.request()

			for _, res := range a.ws.Resources() {
				name.Fprint(out, res.Name())
				fmt.Fprintf(out, "  model=%s label=%q searchable=%s\n",
					res.Model().Type, res.Label(req), strings.Join(res.SearchableColumns(), ","))
			}

			for _, m := range a.ws.Store().Models() {
				if matches := a.ws.Registry().Matches(m.Type); len(matches) > 1 {
					warn.Fprintf(out, "warning: %s is mapped by %s; %s wins\n",
						m.Type, strings.Join(matches, ", "), matches[0])
				}
			}
			return nil
		},
	}
}

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields [resource]",
		Short: "Print the fields derived for a resource as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolveResource(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res.Fields(a.request()))
		},
	}
}

func newOpenAPICmd(a *app) *cobra.Command {
	var title, version string
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Export every resource as an OpenAPI component schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := openapi.Document(cmd.Context(), a.ws.Resources(), a.request(), openapi.Info{
				Title:   title,
				Version: version,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&title, "title", "Resources", "document title")
	cmd.Flags().StringVar(&version, "version", "1.0.0", "document version")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [resource]",
		Short: "Render a preview of a resource",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolveResource(cmd.Context(), args)
			if err != nil {
				return err
			}
			registry, err := render.NewDefaultRegistry(render.WithTheme(a.cfg.RendererTheme()))
			if err != nil {
				return err
			}
			renderer, err := registry.Get(a.cfg.Renderer)
			if err != nil {
				return err
			}

			output, err := renderer.Render(cmd.Context(), render.NewView(res, a.request(), nil))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}
	cmd.Flags().String("renderer", "", "renderer name (html, json)")
	_ = a.v.BindPFlag("renderer", cmd.Flags().Lookup("renderer"))
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate [resource] --file record.json",
		Short: "Validate a JSON record against a resource's fields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolveResource(cmd.Context(), args)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("validate: read record: %w", err)
			}
			var record model.Record
			if err := json.Unmarshal(raw, &record); err != nil {
				return fmt.Errorf("validate: decode record %s: %w", file, err)
			}

			result, err := validation.Record(res, a.request(), record)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("validate: record has %d issue(s)", len(result.Issues))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding a single record")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(value)
}
