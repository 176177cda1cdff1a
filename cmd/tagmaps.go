package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/citekit/ris/tagmap"
)

var tagmapsCmd = &cobra.Command{
	Use:   "tagmaps",
	Short: "Manage tag maps",
	Long:  `List and inspect the tag maps that translate format tags to field names.`,
}

var tagmapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin tag maps",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Builtin tag maps:")
		for _, name := range tagmap.BuiltinNames() {
			tm, _ := tagmap.Builtin(name)
			desc := ""
			if tm.Description != "" {
				desc = " - " + tm.Description
			}
			fmt.Printf("  %s%s\n", name, desc)
		}
		return nil
	},
}

var tagmapsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a tag map as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		tm, ok := tagmap.Builtin(name)
		if !ok {
			return fmt.Errorf("unknown tag map: %s", name)
		}

		// Print as YAML
		out, err := yaml.Marshal(tm)
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

var tagmapsFieldsCmd = &cobra.Command{
	Use:   "fields [name]",
	Short: "List tag to field mappings in a tag map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		tm, ok := tagmap.Builtin(name)
		if !ok {
			return fmt.Errorf("unknown tag map: %s", name)
		}

		tags := make([]string, 0, len(tm.Fields))
		for tag := range tm.Fields {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		fmt.Printf("Tags in %s tag map:\n\n", name)
		fmt.Printf("%-6s -> %-25s %s\n", "Tag", "Field", "Notes")
		fmt.Printf("%-6s    %-25s %s\n", "---", "-----", "-----")

		for _, tag := range tags {
			notes := ""
			if tm.IsListTag(tag) {
				notes = "list"
			}
			if sep, ok := tm.Delimiter(tag); ok {
				if notes != "" {
					notes += ", "
				}
				notes += fmt.Sprintf("split on %q", sep)
			}
			fmt.Printf("%-6s -> %-25s %s\n", tag, tm.Fields[tag], notes)
		}

		return nil
	},
}

func init() {
	tagmapsCmd.AddCommand(tagmapsListCmd)
	tagmapsCmd.AddCommand(tagmapsShowCmd)
	tagmapsCmd.AddCommand(tagmapsFieldsCmd)
}
