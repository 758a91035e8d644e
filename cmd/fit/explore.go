package fit

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/autosized/pkg/width"
	"github.com/Manu343726/autosized/pkg/width/emit"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore the width ladders",
	Long: `Opens an interactive view of both width ladders. Type an integer literal and
the rung selected for it (auto policy: signedness inferred from the sign) is
highlighted live. Press escape to quit.`,
	Args: cobra.NoArgs,
	Run:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) {
	app := tview.NewApplication()
	table := tview.NewTable()
	status := tview.NewTextView().SetDynamicColors(true)
	input := tview.NewInputField().SetLabel(" literal: ")

	refresh := func(literal string) {
		table.Clear()

		var selected width.Descriptor
		haveSelection := false

		if strings.TrimSpace(literal) == "" {
			status.SetText(" type an integer literal (esc to quit)")
		} else if descriptor, value, err := fitLiteral(policyAuto, literal); err != nil {
			status.SetText(" [red]" + tview.Escape(err.Error()))
		} else {
			selected = descriptor
			haveSelection = true
			status.SetText(fmt.Sprintf(" [green]%v", tview.Escape(emit.Render(descriptor, value, emit.Mode_Value))))
		}

		for column, header := range []string{"type", "min", "max"} {
			table.SetCell(0, column, tview.NewTableCell(header).
				SetTextColor(tcell.ColorWhite).
				SetAttributes(tcell.AttrBold).
				SetSelectable(false))
		}

		row := 1

		for _, signedness := range []width.Signedness{width.Signedness_Unsigned, width.Signedness_Signed} {
			for _, rung := range width.Rungs(signedness) {
				descriptor := width.Descriptor{Signedness: signedness, Width: rung.Width}
				textColor := tcell.ColorDefault

				if haveSelection && descriptor == selected {
					textColor = tcell.ColorGreen
				}

				table.SetCell(row, 0, tview.NewTableCell(descriptor.String()).SetTextColor(textColor))
				table.SetCell(row, 1, tview.NewTableCell(rung.Min).SetTextColor(textColor).SetAlign(tview.AlignRight))
				table.SetCell(row, 2, tview.NewTableCell(rung.Max).SetTextColor(textColor).SetAlign(tview.AlignRight))

				row++
			}
		}
	}

	input.SetChangedFunc(refresh)
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
		}
	})

	refresh("")

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(input, 1, 0, true).
		AddItem(status, 1, 0, false).
		AddItem(table, 0, 1, false)

	if err := app.SetRoot(flex, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "fit explore: %v\n", err)
		os.Exit(1)
	}
}
