// Package format renders collection pages as text tables for the CLI surface.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/colors"
)

// Column describes one table column for records of type T.
type Column[T collection.Record] struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extract extracts the display value from a record.
	Extract func(T) string
}

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
	}
}

// Table renders records of type T with a fixed column set.
type Table[T collection.Record] struct {
	config  *TableConfig
	columns []Column[T]
}

// NewTable creates a table renderer with the given columns.
func NewTable[T collection.Record](columns []Column[T], config *TableConfig) *Table[T] {
	if config == nil {
		config = DefaultTableConfig()
	}
	return &Table[T]{config: config, columns: columns}
}

// WithColumns appends extra columns to the renderer.
func (t *Table[T]) WithColumns(columns ...Column[T]) *Table[T] {
	t.columns = append(t.columns, columns...)
	return t
}

// Render writes the items as a table. Nothing is written for an empty slice.
func (t *Table[T]) Render(items []T, writer io.Writer) error {
	if len(items) == 0 {
		return nil
	}
	if t.config.ShowHeaders {
		if err := t.writeHeader(writer); err != nil {
			return err
		}
		if err := t.writeSeparator(writer); err != nil {
			return err
		}
	}
	for _, item := range items {
		if err := t.writeRow(item, writer); err != nil {
			return err
		}
	}
	return nil
}

// RenderPage writes a page of items followed by the navigation footer.
func (t *Table[T]) RenderPage(page collection.Page[T], totalFiltered int, writer io.Writer) error {
	if err := t.Render(page.VisibleItems, writer); err != nil {
		return err
	}
	return writeFooter(page, totalFiltered, writer)
}

func writeFooter[T collection.Record](page collection.Page[T], totalFiltered int, writer io.Writer) error {
	if totalFiltered == 0 {
		_, err := fmt.Fprintln(writer, "No records match.")
		return err
	}
	_, err := fmt.Fprintf(writer, "Page %d of %d (%d records)\n",
		page.CurrentPage, page.TotalPages, totalFiltered)
	return err
}

func (t *Table[T]) writeHeader(writer io.Writer) error {
	for i, col := range t.columns {
		header := Pad(col.Name, col.Width, "left")
		if i == 0 {
			if _, err := fmt.Fprintf(writer, "%s%s%s", t.config.HeaderColor, header, colors.Reset); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(writer, "  %s", header); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

func (t *Table[T]) writeSeparator(writer io.Writer) error {
	for i, col := range t.columns {
		separator := strings.Repeat("-", col.Width)
		if i == 0 {
			if _, err := fmt.Fprintf(writer, "%s%s%s", t.config.HeaderColor, separator, colors.Reset); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(writer, "  %s", separator); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

func (t *Table[T]) writeRow(item T, writer io.Writer) error {
	for i, col := range t.columns {
		value := Truncate(col.Extract(item), col.Width)
		if col.Alignment != "" && col.Alignment != "left" {
			value = Pad(strings.TrimRight(value, " "), col.Width, col.Alignment)
		}
		if i == 0 {
			if _, err := fmt.Fprint(writer, value); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(writer, "  %s", value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// Pad fits a string into width with the given alignment, truncating when too long.
func Pad(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}
	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}

// Truncate fits a string into width, appending "..." when it was cut.
func Truncate(s string, width int) string {
	if len(s) <= width {
		return s + strings.Repeat(" ", width-len(s))
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
