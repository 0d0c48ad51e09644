package outfmt

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

type STDWriter struct {
	w io.Writer
}

func NewSTDWriter(w io.Writer) *STDWriter {
	return &STDWriter{
		w: w,
	}
}

// Write implements io.Writer.
func (w *STDWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		panic(fmt.Errorf("STDWriter.Write: %w", err))
	}
	return n, err
}

// PrintRenderTable implements TableWriter.
func (w *STDWriter) PrintRenderTable(outType OutputType, name string, tableModel *RenderTable) error {
	for _, err := range tableModel.Errors {
		fmt.Fprintf(w, "[!] %v\n", err)
	}
	var title string
	switch outType {
	case Holidays:
		title = fmt.Sprintf("Holidays for %s", name)
	case HolidayChecks:
		title = "Holiday checks"
	case Result:
		title = name
	default:
		panic(fmt.Sprint("OutputType ", outType, " is not implemented"))
	}
	fmt.Fprintf(w, "%s\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader(tableModel.Header)
	table.SetBorder(false)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)

	for _, row := range tableModel.Rows {
		table.Append(row)
	}

	if len(tableModel.Footer) > 0 {
		table.SetFooter(tableModel.Footer)
	}

	table.Render()

	for _, note := range tableModel.Notes {
		fmt.Fprintln(w, note)
	}

	fmt.Fprintln(w, "")
	return nil
}
