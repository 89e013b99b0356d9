package ui

// Screen rows above the table body: status line, command bar, box top border.
const (
	headerLines = 2

	// tableHeaderY is the screen row of the column titles.
	tableHeaderY = headerLines + 1
)

// LayoutCompactWidth is the threshold below which the status line drops
// secondary segments.
const LayoutCompactWidth = 100

// resizeStep is how many layout units one < or > press moves a column edge.
const resizeStep = 10

// detailMaxWidth caps the user detail dialog.
const detailMaxWidth = 72
