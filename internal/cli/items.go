package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const categoryHelp = "Valid categories: electronics, groceries, items"

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <json>",
		Short: "Add an entity to a category",
		Long: `Add decodes the JSON entity and stores it in the category.
The ID must not already exist and the quantity must not be negative.

` + categoryHelp + `

Example:
  stockroom add electronics '{"id":101,"name":"Laptop","quantity":15,"brand":"TechBrand","warranty_months":24}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := openShelf(s, args[0])
			if err != nil {
				return err
			}
			e, err := sh.add([]byte(args[1]))
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), s.flags.jsonMode, e)
		},
	}
}

func newGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <category> <id>",
		Short: "Get an entity by ID",
		Long:  "Get retrieves an entity from the category by its ID.\n\n" + categoryHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, id, err := openShelfWithID(s, args[0], args[1])
			if err != nil {
				return err
			}
			e, err := sh.get(id)
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), s.flags.jsonMode, e)
		},
	}
}

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List all entities in a category",
		Long:  "List prints every entity of the category in insertion order.\n\n" + categoryHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := openShelf(s, args[0])
			if err != nil {
				return err
			}
			items := sh.list()
			if len(items) == 0 && !s.flags.jsonMode {
				fmt.Fprintln(cmd.OutOrStdout(), "No items in this category.")
				return nil
			}
			return printList(cmd.OutOrStdout(), s.flags.jsonMode, items)
		},
	}
}

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <id>",
		Short: "Remove an entity by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, id, err := openShelfWithID(s, args[0], args[1])
			if err != nil {
				return err
			}
			if err := sh.remove(id); err != nil {
				return err
			}
			if s.flags.jsonMode {
				return printValue(cmd.OutOrStdout(), true, map[string]int{"removed": id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d\n", id)
			return nil
		},
	}
}

func newSetQuantityCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set-quantity <category> <id> <quantity>",
		Short: "Set the quantity of an entity",
		Long:  "Set-quantity replaces the stock level of an entity. Negative quantities are rejected.\n\n" + categoryHelp,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := types.ParseQuantity(args[2])
			if err != nil {
				return err
			}
			sh, id, err := openShelfWithID(s, args[0], args[1])
			if err != nil {
				return err
			}
			e, err := sh.setQuantity(id, quantity)
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), s.flags.jsonMode, e)
		},
	}
}

func newFindCmd(s *session) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "find <category> --name <name>",
		Short: "Find the first entity with a name",
		Long:  "Find prints the first entity, in insertion order, whose name matches (case-insensitive).\n\n" + categoryHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := openShelf(s, args[0])
			if err != nil {
				return err
			}
			e, ok := sh.findByName(name)
			if !ok {
				return types.InvalidValue(fmt.Sprintf("No item named %q.", name))
			}
			return printValue(cmd.OutOrStdout(), s.flags.jsonMode, e)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "entity name to match")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newHistoryCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "history <category>",
		Short: "List stored snapshot generations (sqlite format)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := openShelf(s, args[0])
			if err != nil {
				return err
			}
			gens, err := sh.generations()
			if err != nil {
				return err
			}
			if s.flags.jsonMode {
				return printValue(cmd.OutOrStdout(), true, gens)
			}
			for _, g := range gens {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d items\n",
					g.Seq, g.SnapshotID, g.SavedAt.Format("2006-01-02 15:04:05"), g.Count)
			}
			return nil
		},
	}
}

// openShelfWithID parses id before touching storage, then opens the shelf.
func openShelfWithID(s *session, category, rawID string) (shelf, int, error) {
	id, err := types.ParseID(rawID)
	if err != nil {
		return nil, 0, err
	}
	sh, err := openShelf(s, category)
	if err != nil {
		return nil, 0, err
	}
	return sh, id, nil
}
