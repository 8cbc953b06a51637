package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/policy"
	"github.com/osse101/RecipeBook_Go/internal/validation"
	"github.com/osse101/RecipeBook_Go/internal/view"
)

// NewRecipesCommand creates the recipes command group.
func NewRecipesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and edit recipes",
	}
	cmd.AddCommand(newRecipesListCommand(rootOpts))
	cmd.AddCommand(newRecipesShowCommand(rootOpts))
	cmd.AddCommand(newRecipesAddCommand(rootOpts))
	cmd.AddCommand(newRecipesEditCommand(rootOpts))
	cmd.AddCommand(newRecipesRemoveCommand(rootOpts))
	return cmd
}

func newRecipesListCommand(rootOpts *RootOptions) *cobra.Command {
	var query, filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the recipes you can see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			c, session, err := e.container(cmd.Context())
			if err != nil {
				return err
			}
			if res := c.Recipes.Load(cmd.Context()); !res.Success {
				return resultErr(res)
			}

			items, _ := c.Recipes.Items()
			list := view.RecipesList(items, session.Authenticated(), session.UserID, policy.ParsePartition(filter), query)
			return e.out.Emit(list, func() error {
				if !list.HasRecipes {
					e.out.Linef(MsgNoRecipes)
					return nil
				}
				if len(list.Recipes) == 0 {
					e.out.Linef(MsgNoMatches)
					return nil
				}
				rows := make([][]string, 0, len(list.Recipes))
				for _, r := range list.Recipes {
					rows = append(rows, []string{r.ID, r.Name, visibility(r), strconv.Itoa(len(r.Ingredients))})
				}
				if err := e.out.Table([]string{"ID", "NAME", "VISIBILITY", "INGREDIENTS"}, rows); err != nil {
					return err
				}
				e.out.Linef("%d of %d shown; %d public, %d private of yours",
					len(list.Recipes), list.TotalInCurrentFilter, list.PublicCount, list.MyPrivateCount)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search by name")
	cmd.Flags().StringVar(&filter, "filter", string(policy.PartitionAll), "which recipes (all|public|mine)")
	return cmd
}

func newRecipesShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			r, err := e.client.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if r == nil {
				return domain.NotFoundOrForbidden()
			}
			return e.out.Emit(r, func() error {
				e.out.Linef("%s  [%s]", r.Name, visibility(*r))
				if r.Description != "" {
					e.out.Linef("%s", r.Description)
				}
				if r.ImageURL != nil {
					e.out.Linef("Image: %s", *r.ImageURL)
				}
				e.out.Linef("")
				e.out.Linef("Ingredients:")
				for _, line := range r.Ingredients {
					e.out.Linef("  - %s", describeLine(line))
				}
				if steps := r.StepLines(); len(steps) > 0 {
					e.out.Linef("")
					e.out.Linef("Steps:")
					for i, step := range steps {
						e.out.Linef("  %d. %s", i+1, step)
					}
				}
				return nil
			})
		},
	}
}

// recipeFlags are the editable recipe fields
type recipeFlags struct {
	name        string
	description string
	steps       string
	image       string
	public      bool
	lines       []string
}

func (f *recipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "recipe name")
	cmd.Flags().StringVar(&f.description, "description", "", "short description")
	cmd.Flags().StringVar(&f.steps, "steps", "", "steps, one per line")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
	cmd.Flags().BoolVar(&f.public, "public", true, "visible to everyone")
	cmd.Flags().StringArrayVar(&f.lines, "ingredient", nil, "ingredient line <ingredient-id>=<quantity>, repeatable")
}

// overlay writes every flag the user set onto form
func (f *recipeFlags) overlay(cmd *cobra.Command, form url.Values) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		form.Set(validation.FieldName, f.name)
	}
	if changed("description") {
		form.Set(validation.FieldDescription, f.description)
	}
	if changed("steps") {
		form.Set(validation.FieldSteps, f.steps)
	}
	if changed("image") {
		form.Set(validation.FieldImageURL, f.image)
	}
	if changed("public") {
		form.Set(validation.FieldIsPublic, strconv.FormatBool(f.public))
	}
	if !changed("ingredient") {
		return nil
	}

	for key := range form {
		if strings.HasPrefix(key, validation.FieldIngredientPrefix) || strings.HasPrefix(key, validation.FieldQuantityPrefix) {
			form.Del(key)
		}
	}
	for i, raw := range f.lines {
		id, qty, ok := strings.Cut(raw, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("%s: %q", ErrMsgBadLine, raw)}
		}
		form.Set(validation.IngredientField(i), strings.TrimSpace(id))
		form.Set(validation.QuantityField(i), strings.TrimSpace(qty))
	}
	return nil
}

func newRecipesAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &recipeFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a recipe",
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

			form := url.Values{}
			form.Set(validation.FieldIsPublic, strconv.FormatBool(flags.public))
			if err := flags.overlay(cmd, form); err != nil {
				return err
			}
			res := c.Recipes.Add(cmd.Context(), form)
			if !res.Success {
				return resultErr(res)
			}
			return e.out.Emit(res.Item, func() error {
				e.out.Linef("Created %s (%s)", res.Item.Name, res.Item.ID)
				return nil
			})
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("ingredient")
	return cmd
}

func newRecipesEditCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &recipeFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recipe you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			c, _, err := e.container(cmd.Context())
			if err != nil {
				return err
			}

			existing, err := e.client.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.NotFoundOrForbidden()
			}

			form := validation.EncodeRecipeForm(inputOf(*existing))
			if err := flags.overlay(cmd, form); err != nil {
				return err
			}
			res := c.Recipes.Update(cmd.Context(), args[0], form)
			if !res.Success {
				return resultErr(res)
			}
			return e.out.Emit(res.Item, func() error {
				e.out.Linef("Updated %s (%s)", res.Item.Name, res.Item.ID)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newRecipesRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a recipe you own",
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
			if res := c.Recipes.Remove(cmd.Context(), args[0]); !res.Success {
				return resultErr(res)
			}
			e.out.Linef(MsgDeleted, args[0])
			return nil
		},
	}
}

// inputOf turns a stored recipe back into form input
func inputOf(r domain.Recipe) domain.RecipeInput {
	in := domain.RecipeInput{
		Name:        r.Name,
		Description: r.Description,
		Steps:       r.Steps,
		ImageURL:    r.ImageURL,
		IsPublic:    r.IsPublic,
		Lines:       make([]domain.IngredientLine, 0, len(r.Ingredients)),
	}
	for _, line := range r.Ingredients {
		in.Lines = append(in.Lines, domain.IngredientLine{IngredientID: line.IngredientID, Quantity: line.Quantity})
	}
	return in
}

func visibility(r domain.Recipe) string {
	if r.IsPublic {
		return "public"
	}
	return "private"
}

func describeLine(line domain.RecipeIngredient) string {
	qty := strconv.FormatFloat(line.Quantity, 'f', -1, 64)
	if line.Ingredient == nil {
		return fmt.Sprintf("%s x %s", qty, line.IngredientID)
	}
	return fmt.Sprintf("%s %s %s", qty, line.Ingredient.Unit.Abbreviation(), line.Ingredient.Name)
}
