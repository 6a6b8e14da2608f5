package opsctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type printer struct {
	json bool
	w    io.Writer
}

// table prints rows under header as aligned text, or v as indented JSON.
func (p printer) table(v any, header []string, rows [][]string) error {
	if p.json {
		return p.object(v)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func (p printer) object(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// line prints msg in text mode and v in JSON mode.
func (p printer) line(v any, format string, args ...any) error {
	if p.json {
		return p.object(v)
	}
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}
