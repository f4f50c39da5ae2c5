// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/recipe"
)

// plural renders a count with its noun: "No recipes", "1 recipe", "3 recipes".
func plural(n int, noun string) string {
	switch n {
	case 0:
		return "No " + noun + "s"
	case 1:
		return "1 " + noun
	default:
		return fmt.Sprintf("%d %ss", n, noun)
	}
}

func star(r recipe.Recipe) string {
	if r.IsFavourite() {
		return "★"
	}
	return " "
}

// writeTable prints one line per recipe followed by the count.
func writeTable(out io.Writer, recipes []recipe.Recipe) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", star(r), r.Title, plural(len(r.Ingredients), "ingredient"), r.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, plural(len(recipes), "recipe"))
	return err
}

// writeDetail prints a recipe the way the detail view lays it out.
func writeDetail(out io.Writer, r recipe.Recipe) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", star(r), r.Title)
	fmt.Fprintf(&b, "  id:           %s\n", r.ID)
	fmt.Fprintf(&b, "  description:  %s\n", r.Description)
	fmt.Fprintf(&b, "  image:        %s\n", r.ImageURL)
	fmt.Fprintf(&b, "  %s:\n", plural(len(r.Ingredients), "ingredient"))
	for _, ingredient := range r.Ingredients {
		fmt.Fprintf(&b, "    - %s\n", ingredient)
	}
	fmt.Fprintf(&b, "  instructions: %s\n", r.Instructions)

	_, err := io.WriteString(out, b.String())
	return err
}

// writeFieldErrors lists validation failures one per line.
func writeFieldErrors(out io.Writer, details []apperr.FieldError) {
	for _, detail := range details {
		fmt.Fprintf(out, "  %s: %s\n", detail.Field, detail.Message)
	}
}
