package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/validation"
	"github.com/osse101/RecipeBook_Go/internal/view"
)

// NewIngredientsCommand creates the ingredients command group.
func NewIngredientsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ingredients",
		Aliases: []string{"ing"},
		Short:   "Browse and edit the shared ingredient pool",
	}
	cmd.AddCommand(newIngredientsListCommand(rootOpts))
	cmd.AddCommand(newIngredientsAddCommand(rootOpts))
	cmd.AddCommand(newIngredientsRemoveCommand(rootOpts))
	return cmd
}

func newIngredientsListCommand(rootOpts *RootOptions) *cobra.Command {
	var query, column, direction string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			c, _, err := e.container(cmd.Context())
			if err != nil {
				return err
			}
			if res := c.Ingredients.Load(cmd.Context()); !res.Success {
				return resultErr(res)
			}

			items, _ := c.Ingredients.Items()
			table := view.IngredientsTable(items, query, view.ParseSort(column, direction))
			return e.out.Emit(table, func() error {
				switch {
				case !table.HasAny:
					e.out.Linef(MsgNoIngredients)
					return nil
				case len(table.Rows) == 0:
					e.out.Linef(MsgNoMatches)
					return nil
				}
				rows := make([][]string, 0, len(table.Rows))
				for _, ing := range table.Rows {
					rows = append(rows, []string{
						ing.ID, ing.Name, ing.Category.Label(), ing.Unit.Abbreviation(), domain.FormatPrice(ing.PricePerUnit),
					})
				}
				return e.out.Table([]string{"ID", "NAME", "CATEGORY", "UNIT", "PRICE"}, rows)
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search by name, category or description")
	cmd.Flags().StringVar(&column, "sort", string(view.ColumnName), "sort column (name|category|unit|pricePerUnit)")
	cmd.Flags().StringVar(&direction, "dir", string(view.Ascending), "sort direction (ascending|descending)")
	return cmd
}

func newIngredientsAddCommand(rootOpts *RootOptions) *cobra.Command {
	var form validation.IngredientForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an ingredient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			c, _, err := e.container(cmd.Context())
			if err != nil {
				return err
			}

			form.Category = strings.ToUpper(strings.TrimSpace(form.Category))
			form.Unit = strings.ToUpper(strings.TrimSpace(form.Unit))
			res := c.Ingredients.Add(cmd.Context(), form)
			if !res.Success {
				return resultErr(res)
			}
			return e.out.Emit(res.Item, func() error {
				e.out.Linef("Added %s (%s)", res.Item.Name, res.Item.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "ingredient name")
	cmd.Flags().StringVar(&form.Category, "category", string(domain.CategoryOther), "category (vegetables|fruits|meat|dairy|spices|other)")
	cmd.Flags().StringVar(&form.Unit, "unit", string(domain.UnitPieces), "unit (grams|kilograms|liters|milliliters|pieces)")
	cmd.Flags().StringVar(&form.PricePerUnit, "price", "", "price per unit")
	cmd.Flags().StringVar(&form.Description, "description", "", "free text description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newIngredientsRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an ingredient you own",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			c, _, err := e.container(cmd.Context())
			if err != nil {
				return err
			}
			if res := c.Ingredients.Remove(cmd.Context(), args[0]); !res.Success {
				return resultErr(res)
			}
			e.out.Linef(MsgDeleted, args[0])
			return nil
		},
	}
}
