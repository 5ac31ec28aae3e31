package main

import (
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <schema-file>",
	Short: "Rewrite a schema file in canonical form",
	Long: `Decodes a schema file and re-encodes it with canonical key order and
indentation. The input is validated on the way in, so fmt doubles as a
schema lint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")
		format, _ := cmd.Flags().GetString("format")

		path := args[0]
		form, err := loadSchemaFile(path)
		if err != nil {
			return err
		}

		if format == "" {
			format = schemaFormat(path)
		}
		payload, err := encodeSchema(form, format)
		if err != nil {
			return err
		}

		if write {
			return writeOutput(path, payload)
		}
		return writeOutput("", payload)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolP("write", "w", false, "rewrite the file in place instead of printing")
	fmtCmd.Flags().String("format", "", "output format: json or yaml (defaults to the input extension)")
}
