package outfmt

type OutputType int

const (
	Holidays OutputType = iota
	HolidayChecks
	Result
)

type RenderTable struct {
	Header []string
	Rows   [][]string
	Footer []string
	Notes  []string
	Errors []error
}

type TableWriter interface {
	PrintRenderTable(outType OutputType, name string, tableModel *RenderTable) error
}
