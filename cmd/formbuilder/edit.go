package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

var errEditAborted = errors.New("edit aborted")

var editCmd = &cobra.Command{
	Use:   "edit [schema-file]",
	Short: "Edit a schema interactively",
	Long: `Opens an interactive editing session. Starting from an empty schema, or
from the given file, fields can be added, updated, moved and deleted; values
can be set and validated. Saving writes the schema back to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		options := []builder.Option{}
		if path != "" {
			form, err := loadSchemaFile(path)
			if err != nil {
				return err
			}
			options = append(options, builder.WithSchema(form))
		}

		b, err := builder.New(options...)
		if err != nil {
			return err
		}

		session := &editSession{builder: b, path: path}
		if err := session.run(); err != nil {
			if errors.Is(err, errEditAborted) {
				fmt.Println("aborted, changes discarded")
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

type editSession struct {
	builder *builder.Builder
	path    string
}

func (s *editSession) run() error {
	for {
		s.printOutline()

		action, err := askSelect("What next?", []string{
			"add field",
			"update field",
			"move field",
			"delete field",
			"set value",
			"validate",
			"save",
			"quit",
		})
		if err != nil {
			return err
		}

		switch action {
		case "add field":
			err = s.addField()
		case "update field":
			err = s.updateField()
		case "move field":
			err = s.moveField()
		case "delete field":
			err = s.deleteField()
		case "set value":
			err = s.setValue()
		case "validate":
			err = s.validate()
		case "save":
			if err = s.save(); err == nil {
				return nil
			}
		case "quit":
			ok, confirmErr := askConfirm("Discard unsaved changes?", false)
			if confirmErr != nil {
				return confirmErr
			}
			if ok {
				return errEditAborted
			}
		}
		if err != nil {
			return err
		}
	}
}

func (s *editSession) printOutline() {
	form := s.builder.Schema()
	if len(form.Fields) == 0 {
		fmt.Println("\n(schema is empty)")
		return
	}
	fmt.Println()
	printFields(form.Fields, 0)
}

func printFields(fields []*schema.Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, field := range fields {
		label := field.Label
		if label == "" {
			label = "(no label)"
		}
		marker := ""
		if field.Required {
			marker = " *"
		}
		fmt.Printf("%s- %s [%s] %s%s\n", indent, field.ID, field.Type, label, marker)
		if field.IsGroup() {
			printFields(field.Children, depth+1)
		}
	}
}

func (s *editSession) addField() error {
	kind, err := askSelect("Field type:", []string{
		string(schema.FieldTypeText),
		string(schema.FieldTypeNumber),
		string(schema.FieldTypeGroup),
	})
	if err != nil {
		return err
	}
	parentID, err := askInput("Parent group id (empty for top level):", "")
	if err != nil {
		return err
	}

	id, err := s.builder.AddField(schema.FieldType(kind), parentID)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Printf("no group with id %q, nothing added\n", parentID)
		return nil
	}
	fmt.Printf("added %s\n", id)
	return nil
}

func (s *editSession) updateField() error {
	id, err := s.pickField("Field to update:")
	if err != nil || id == "" {
		return err
	}

	patch := schema.Patch{}

	label, err := askInput("Label (empty to keep):", "")
	if err != nil {
		return err
	}
	if label != "" {
		patch.Label = schema.String(label)
	}

	placeholder, err := askInput("Placeholder (empty to keep):", "")
	if err != nil {
		return err
	}
	if placeholder != "" {
		patch.Placeholder = schema.String(placeholder)
	}

	required, err := askConfirm("Required?", false)
	if err != nil {
		return err
	}
	patch.Required = schema.Bool(required)

	field := tree.FindByID(s.builder.Schema().Fields, id)
	if field != nil && field.Type == schema.FieldTypeNumber {
		if patch.Min, patch.ClearMin, err = askBound("Min"); err != nil {
			return err
		}
		if patch.Max, patch.ClearMax, err = askBound("Max"); err != nil {
			return err
		}
	}

	s.builder.UpdateField(id, patch)
	fmt.Printf("updated %s\n", id)
	return nil
}

func (s *editSession) moveField() error {
	id, err := s.pickField("Field to move:")
	if err != nil || id == "" {
		return err
	}
	direction, err := askSelect("Direction:", []string{
		string(tree.DirectionUp),
		string(tree.DirectionDown),
	})
	if err != nil {
		return err
	}
	s.builder.MoveField(id, tree.Direction(direction))
	return nil
}

func (s *editSession) deleteField() error {
	id, err := s.pickField("Field to delete:")
	if err != nil || id == "" {
		return err
	}
	ok, err := askConfirm(fmt.Sprintf("Delete %s and everything under it?", id), false)
	if err != nil {
		return err
	}
	if ok {
		s.builder.DeleteField(id)
		fmt.Printf("deleted %s\n", id)
	}
	return nil
}

func (s *editSession) setValue() error {
	id, err := s.pickField("Field to set:")
	if err != nil || id == "" {
		return err
	}
	raw, err := askInput("Value:", "")
	if err != nil {
		return err
	}
	s.builder.SetValue(id, raw)
	return nil
}

func (s *editSession) validate() error {
	errs := s.builder.Validate()
	if len(errs) == 0 {
		fmt.Println("all fields valid")
		return nil
	}
	ids := make([]string, 0, len(errs))
	for id := range errs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%s: %s\n", id, errs[id])
	}
	return nil
}

func (s *editSession) save() error {
	path := s.path
	if path == "" {
		entered, err := askInput("Save to:", "schema.json")
		if err != nil {
			return err
		}
		if entered == "" {
			return errors.New("no output path")
		}
		path = entered
	}

	var payload []byte
	var err error
	if schemaFormat(path) == "yaml" {
		payload, err = s.builder.ExportYAML()
	} else {
		payload, err = s.builder.ExportJSON()
	}
	if err != nil {
		return err
	}
	if err := writeOutput(path, payload); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", path)
	return nil
}

// pickField lists every node id so the user selects instead of typing.
// Returns empty without error when the schema has no fields.
func (s *editSession) pickField(message string) (string, error) {
	var ids []string
	tree.Walk(s.builder.Schema().Fields, func(field *schema.Field) bool {
		ids = append(ids, field.ID)
		return true
	})
	if len(ids) == 0 {
		fmt.Println("schema is empty")
		return "", nil
	}
	return askSelect(message, ids)
}

func askBound(name string) (*float64, bool, error) {
	raw, err := askInput(name+" (number, \"none\" to clear, empty to keep):", "")
	if err != nil {
		return nil, false, err
	}
	switch raw {
	case "":
		return nil, false, nil
	case "none":
		return nil, true, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("not a number: %q, keeping current %s\n", raw, strings.ToLower(name))
		return nil, false, nil
	}
	return schema.Float(value), false, nil
}

func askInput(message, defaultValue string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

func askSelect(message string, options []string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func askConfirm(message string, defaultValue bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errEditAborted
	}
	return err
}
