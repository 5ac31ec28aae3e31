package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

var renderCmd = &cobra.Command{
	Use:   "render <schema-file>",
	Short: "Render a schema file as an HTML preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		out, _ := cmd.Flags().GetString("out")
		valuesPath, _ := cmd.Flags().GetString("values")
		validate, _ := cmd.Flags().GetBool("validate")
		templatesDir, _ := cmd.Flags().GetString("templates")
		rendererName, _ := cmd.Flags().GetString("renderer")

		form, err := loadSchemaFile(args[0])
		if err != nil {
			return err
		}

		values := formdata.Initialize(form.Fields)
		if valuesPath != "" {
			loaded, err := loadValuesFile(valuesPath)
			if err != nil {
				return err
			}
			values = formdata.Merge(loaded, form)
		}

		var errs map[string]string
		if validate {
			errs = formdata.Validate(values, form.Fields)
		}

		var vanillaOpts []vanilla.Option
		if templatesDir != "" {
			vanillaOpts = append(vanillaOpts, vanilla.WithTemplatesDir(templatesDir))
		}
		htmlRenderer, err := vanilla.New(vanillaOpts...)
		if err != nil {
			return err
		}

		registry := render.NewRegistry()
		if err := registry.Register(htmlRenderer); err != nil {
			return err
		}
		renderer, err := registry.Get(rendererName)
		if err != nil {
			return fmt.Errorf("renderer %q not available (have %v)", rendererName, registry.List())
		}

		output, err := renderer.Render(cmd.Context(), form, render.RenderOptions{
			Title:  title,
			Values: values,
			Errors: errs,
		})
		if err != nil {
			return err
		}
		return writeOutput(out, output)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("title", "", "form title shown above the preview")
	renderCmd.Flags().StringP("out", "o", "", "output file (stdout if empty)")
	renderCmd.Flags().String("values", "", "JSON file with field values keyed by id")
	renderCmd.Flags().Bool("validate", false, "run validation and render inline errors")
	renderCmd.Flags().String("templates", "", "directory overriding the embedded templates")
	renderCmd.Flags().String("renderer", "vanilla", "renderer to use")
}
