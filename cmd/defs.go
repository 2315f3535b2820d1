package cmd

import (
	"fmt"
	"strings"

	"asset-editor/core/definition"
	"asset-editor/core/fieldpath"
	"asset-editor/feature/catalog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listType string
	showRaw  bool
)

// pathsCmd lists the editable field paths of a kind.
var pathsCmd = &cobra.Command{
	Use:   "paths <kind>",
	Short: "List the field paths of item or aura records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		e, err := a.editor(args[0])
		if err != nil {
			return err
		}

		for _, f := range e.Fields() {
			if len(f.Variants) > 0 {
				fmt.Printf("%-24s %-5s %s\n", f.Path, f.Kind, strings.Join(f.Variants, "|"))
				continue
			}
			fmt.Printf("%-24s %s\n", f.Path, f.Kind)
		}
		return nil
	},
}

// listCmd lists definitions of every kind.
var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List auras and items, optionally by name prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		var entries []catalog.Entry
		if listType != "" {
			var t catalog.AssetType
			if err := t.UnmarshalText([]byte(listType)); err != nil {
				return err
			}
			entries = a.catalog().Filter(t, prefix)
		} else {
			entries = a.catalog().Entries(prefix)
		}

		for _, e := range entries {
			fmt.Printf("%-5s %6d  %-32s %s\n", e.AssetType, e.ID, e.Name, e.Icon)
		}
		return nil
	},
}

// showCmd prints every field of one definition.
var showCmd = &cobra.Command{
	Use:   "show <kind> <id|name>",
	Short: "Print every field path of a definition with its value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		e, err := a.editor(args[0])
		if err != nil {
			return err
		}
		rec, err := resolve(e, args[1])
		if err != nil {
			return err
		}

		if showRaw {
			def, err := a.raw(e.Kind(), rec.ID)
			if err != nil {
				return err
			}
			spew.Dump(def)
			return nil
		}

		for _, f := range rec.Fields {
			fmt.Printf("%-24s = %s\n", f.Path, f.Value)
		}
		return nil
	},
}

// getCmd prints one field.
var getCmd = &cobra.Command{
	Use:   "get <kind> <id|name> <path>",
	Short: "Print one field of a definition",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		e, err := a.editor(args[0])
		if err != nil {
			return err
		}
		rec, err := resolve(e, args[1])
		if err != nil {
			return err
		}

		value, err := fieldValue(rec, args[2])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

// setCmd decodes a value into one field and saves the document.
var setCmd = &cobra.Command{
	Use:   "set <kind> <id|name> <path> <value>",
	Short: "Set one field of a definition and save the document",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		e, err := a.editor(args[0])
		if err != nil {
			return err
		}
		rec, err := resolve(e, args[1])
		if err != nil {
			return err
		}

		updated, err := e.Set(rec.ID, args[2], args[3])
		if err != nil {
			return err
		}
		if err := e.Save(ctx); err != nil {
			return err
		}

		value, err := fieldValue(updated, args[2])
		if err != nil {
			return err
		}
		a.logger.Info("Definition updated",
			zap.String("kind", e.Kind()),
			zap.Uint32("id", updated.ID),
			zap.String("path", args[2]),
			zap.String("value", value))
		return nil
	},
}

func fieldValue(rec *definition.Record, path string) (string, error) {
	for _, f := range rec.Fields {
		if f.Path == path {
			return f.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", fieldpath.ErrPathNotFound, path)
}

// raw returns the typed definition for dumping.
func (a *app) raw(kind string, id uint32) (any, error) {
	if kind == a.items.Kind() {
		h, err := a.items.Registry().ByID(id)
		if err != nil {
			return nil, err
		}
		return h.Def(), nil
	}
	h, err := a.auras.Registry().ByID(id)
	if err != nil {
		return nil, err
	}
	return h.Def(), nil
}

func init() {
	RootCmd.AddCommand(pathsCmd, listCmd, showCmd, getCmd, setCmd)

	listCmd.Flags().StringVar(&listType, "type", "", "Only list one asset type (Aura, Item)")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Dump the decoded record instead of its field paths")
}
