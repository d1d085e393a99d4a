package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

// Writer emits UTF-8 CSV with a BOM and ';' separators so spreadsheet tools
// in pt-BR locales open it without an import wizard.
type Writer struct {
	w   io.Writer
	csv *csv.Writer
	bom bool
}

func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	return &Writer{w: w, csv: cw, bom: true}
}

func (w *Writer) write(record []string) error {
	if w.bom {
		if _, err := w.w.Write(bomUTF8); err != nil {
			return fmt.Errorf("write bom: %w", err)
		}

		w.bom = false
	}

	return w.csv.Write(record)
}

func (w *Writer) flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func header(cols ...column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.aliases[0]
	}

	return out
}

func (w *Writer) Categories(cats []*catalog.Category) error {
	if err := w.write(header(colCode, colName, colDescription)); err != nil {
		return err
	}

	for _, c := range cats {
		if err := w.write([]string{string(c.Code), c.Name, c.Description}); err != nil {
			return err
		}
	}

	return w.flush()
}

func (w *Writer) Destinations(dests []*catalog.Destination) error {
	if err := w.write(header(colName, colDescription)); err != nil {
		return err
	}

	for _, d := range dests {
		if err := w.write([]string{d.Name, d.Description}); err != nil {
			return err
		}
	}

	return w.flush()
}

func (w *Writer) Wishlist(items []*wishlist.Item) error {
	if err := w.write(header(colName, colKind, colPrice, colLink, colPurchased)); err != nil {
		return err
	}

	for _, it := range items {
		purchased := "não"
		if it.Purchased {
			purchased = "sim"
		}

		if err := w.write([]string{it.Name, string(it.Kind), it.Price.StringFixed(2), it.Link, purchased}); err != nil {
			return err
		}
	}

	return w.flush()
}
