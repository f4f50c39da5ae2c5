// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/cookbook/internal/form"
	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/recipe"
)

// # Browsing

func (app *App) listCommand() *cobra.Command {
	var filter viewFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recipes, optionally filtered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.view(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return writeTable(app.out, view)
		},
	}

	filter.register(cmd)
	return cmd
}

func (app *App) showCommand() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := app.sync.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !asYAML {
				return writeDetail(app.out, found)
			}

			encoder := yaml.NewEncoder(app.out)
			encoder.SetIndent(2)
			if err := encoder.Encode(found); err != nil {
				return err
			}
			return encoder.Close()
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the recipe as YAML")
	return cmd
}

// viewFlags are the list view criteria shared by list and export.
type viewFlags struct {
	search     string
	favourites bool
}

func (v *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&v.search, "search", "s", "", "match title or any ingredient")
	cmd.Flags().BoolVarP(&v.favourites, "favourites", "f", false, "only favourite recipes")
}

// view fetches the collection and returns the derived view for v.
func (app *App) view(context context.Context, v viewFlags) ([]recipe.Recipe, error) {
	store := app.sync.Store()
	store.SetCriteria(recipe.Criteria{
		SearchText:     recipe.NormalizeSearch(v.search),
		FavouritesOnly: v.favourites,
	})

	if err := app.sync.FetchAll(context); err != nil {
		return nil, err
	}
	return store.Derived(), nil
}

// # Editing

// draftFlags carry field values typed on the command line.
type draftFlags struct {
	title        string
	description  string
	instructions string
	imageURL     string
	ingredients  []string
}

func (d *draftFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&d.title, "title", "", "recipe title (3-20 characters)")
	flags.StringVar(&d.description, "description", "", "short description (3-200 characters)")
	flags.StringVar(&d.instructions, "instructions", "", "preparation steps (3-200 characters)")
	flags.StringVar(&d.imageURL, "image-url", "", "https address of the picture")
	flags.StringArrayVarP(&d.ingredients, "ingredient", "i", nil, "ingredient (repeatable, 3-20 characters)")
}

// apply types every flag the user set into the form. Unset flags are left alone.
func (d *draftFlags) apply(cmd *cobra.Command, f *form.RecipeForm) {
	changed := cmd.Flags().Changed

	fields := []struct {
		flag    string
		value   string
		control *form.Control
	}{
		{"title", d.title, f.Title},
		{"description", d.description, f.Description},
		{"instructions", d.instructions, f.Instructions},
		{"image-url", d.imageURL, f.ImageURL},
	}
	for _, field := range fields {
		if changed(field.flag) {
			field.control.Set(field.value)
		}
	}

	if changed("ingredient") {
		setIngredients(f, d.ingredients)
	}
}

// setIngredients replaces every ingredient row with values.
func setIngredients(f *form.RecipeForm, values []string) {
	for len(f.Ingredients()) > 1 {
		f.RemoveIngredient(len(f.Ingredients()) - 1)
	}

	first := ""
	if len(values) > 0 {
		first = values[0]
	}
	f.Ingredient(0).Set(first)

	for _, value := range values[min(1, len(values)):] {
		f.AddIngredient().Set(value)
	}
}

func (app *App) addCommand() *cobra.Command {
	var draft draftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a recipe",
		Long: `Creates a recipe from the given flags.

Fields that are missing or invalid are asked for on the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := app.editor()
			if err := editor.Open(cmd.Context(), ""); err != nil {
				return err
			}

			draft.apply(cmd, editor.Form())
			return app.submit(cmd.Context(), editor)
		},
	}

	draft.register(cmd)
	return cmd
}

func (app *App) editCommand() *cobra.Command {
	var draft draftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recipe",
		Long: `Changes the fields given as flags. --ingredient replaces the whole list.

An edit that leaves the recipe as it was is not sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := app.editor()
			if err := editor.Open(cmd.Context(), args[0]); err != nil {
				return err
			}

			draft.apply(cmd, editor.Form())
			return app.submit(cmd.Context(), editor)
		},
	}

	draft.register(cmd)
	return cmd
}

func (app *App) editor() *form.Editor {
	return form.NewEditor(app.sync, &lineConfirmer{in: app.in, out: app.errOut}, app.logger)
}

// submit saves the form, asking again for invalid fields until it is valid,
// the user discards the changes, or input runs out.
func (app *App) submit(context context.Context, editor *form.Editor) error {
	for {
		outcome, err := editor.Submit(context)
		switch outcome {
		case form.OutcomeSaved:
			saved := editor.Form().Value()
			fmt.Fprintf(app.out, "Saved %s (%s)\n", saved.Title, saved.ID)
			return nil
		case form.OutcomeUnchanged:
			fmt.Fprintln(app.out, "nothing to save")
			return nil
		case form.OutcomeFailed:
			return err
		}

		fmt.Fprintln(app.errOut, "The recipe is not valid:")
		if appError := apperr.As(err); appError != nil {
			writeFieldErrors(app.errOut, appError.Details)
		}

		if !editor.CanLeave() {
			discard, err := editor.Leave(context)
			if err != nil {
				return err
			}
			if discard {
				return errAborted
			}
		}

		if err := app.reprompt(context, editor.Form()); err != nil {
			if errors.Is(err, io.EOF) {
				return errAborted
			}
			return err
		}
	}
}

// reprompt asks for a new value for every invalid control, in display order.
// An empty answer keeps the current value.
func (app *App) reprompt(context context.Context, f *form.RecipeForm) error {
	controls := []*form.Control{f.Title, f.Description}
	controls = append(controls, f.Ingredients()...)
	controls = append(controls, f.Instructions, f.ImageURL)

	for _, control := range controls {
		if control.Valid() {
			continue
		}

		answer, err := ask(context, app.in, app.errOut, fmt.Sprintf("%s [%s]: ", control.Name(), control.Value()))
		if err != nil {
			return err
		}
		if answer != "" {
			control.Set(answer)
		}
	}
	return nil
}

func (app *App) deleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a recipe after confirmation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm form.Confirmer = &lineConfirmer{in: app.in, out: app.errOut}
			if yes {
				confirm = form.Always(true)
			}

			editor := form.NewEditor(app.sync, confirm, app.logger)
			if err := editor.Open(cmd.Context(), args[0]); err != nil {
				return err
			}

			deleted, err := editor.Delete(cmd.Context())
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(app.out, "Kept", editor.Form().Title.Value())
				return nil
			}

			fmt.Fprintln(app.out, "Deleted", editor.Form().Title.Value())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (app *App) favCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id> <true|false>",
		Short: "Mark or unmark a recipe as favourite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			favourite, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("favourite must be true or false, got %q", args[1])
			}

			if err := app.sync.ToggleFavourite(cmd.Context(), args[0], favourite); err != nil {
				return err
			}

			updated, ok := app.sync.Store().Find(args[0])
			if !ok {
				return apperr.NotFound("Recipe")
			}
			fmt.Fprintf(app.out, "%s %s\n", star(updated), updated.Title)
			return nil
		},
	}
}
