package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

var convertCmd = &cobra.Command{
	Use:   "convert <openapi-document>",
	Short: "Seed a form schema from an OpenAPI operation",
	Long: `Reads an OpenAPI 3 document and converts the request body of the named
operation into a form schema: object properties become fields, nested
objects become groups, numeric bounds carry over as min/max.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		operationID, _ := cmd.Flags().GetString("operation")
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		mediaType, _ := cmd.Flags().GetString("media-type")

		doc, err := openapi.LoadFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var opts []openapi.Option
		if mediaType != "" {
			opts = append(opts, openapi.WithMediaType(mediaType))
		}
		form, err := openapi.Convert(doc, operationID, opts...)
		if err != nil {
			return err
		}

		payload, err := encodeSchema(form, format)
		if err != nil {
			return err
		}
		return writeOutput(out, payload)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("operation", "", "operation ID whose request body seeds the schema")
	convertCmd.Flags().String("format", "json", "output format: json or yaml")
	convertCmd.Flags().StringP("out", "o", "", "output file (stdout if empty)")
	convertCmd.Flags().String("media-type", "", "request body media type (defaults to application/json)")
	_ = convertCmd.MarkFlagRequired("operation")
}
