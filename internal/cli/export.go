// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/taibuivan/cookbook/internal/recipe"
)

// sheetRecipes is the only worksheet of an exported workbook.
const sheetRecipes = "Recipes"

var exportHeader = []any{"ID", "Title", "Description", "Ingredients", "Instructions", "Image URL", "Favourite"}

func (app *App) exportCommand() *cobra.Command {
	var (
		filter viewFlags
		path   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list view to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.view(cmd.Context(), filter)
			if err != nil {
				return err
			}

			file, err := os.Create(path)
			if err != nil {
				return err
			}

			err = writeWorkbook(file, view)
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(app.out, "Exported %s to %s\n", plural(len(view), "recipe"), path)
			return nil
		},
	}

	filter.register(cmd)
	cmd.Flags().StringVarP(&path, "out", "o", "recipes.xlsx", "workbook path")
	return cmd
}

// writeWorkbook renders recipes as one header row plus one row per recipe.
func writeWorkbook(w io.Writer, recipes []recipe.Recipe) (err error) {
	workbook := excelize.NewFile()
	defer func() {
		err = errors.Join(err, workbook.Close())
	}()

	if err := workbook.SetSheetName("Sheet1", sheetRecipes); err != nil {
		return err
	}

	if err := workbook.SetSheetRow(sheetRecipes, "A1", &exportHeader); err != nil {
		return err
	}

	bold, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err != nil {
		return err
	}
	if err := workbook.SetCellStyle(sheetRecipes, "A1", lastHeader, bold); err != nil {
		return err
	}

	for i, r := range recipes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{
			r.ID,
			r.Title,
			r.Description,
			strings.Join(r.Ingredients, ", "),
			r.Instructions,
			r.ImageURL,
			r.IsFavourite(),
		}
		if err := workbook.SetSheetRow(sheetRecipes, cell, &row); err != nil {
			return err
		}
	}

	if err := workbook.SetColWidth(sheetRecipes, "A", "A", 38); err != nil {
		return err
	}
	if err := workbook.SetColWidth(sheetRecipes, "B", "G", 24); err != nil {
		return err
	}

	return workbook.Write(w)
}
