package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/nihei9/stringprep/rfc3454"
)

const rfcURL = "https://www.rfc-editor.org/rfc/rfc3454.txt"

func main() {
	err := gen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func gen() error {
	resp, err := http.Get(rfcURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	app, err := rfc3454.ParseAppendix(resp.Body)
	if err != nil {
		return err
	}

	rangeTables := []string{
		"A.1", "C.1.1", "C.1.2", "C.2.1", "C.2.2", "C.3", "C.4", "C.5",
		"C.6", "C.7", "C.8", "C.9", "D.1", "D.2",
	}
	for _, name := range rangeTables {
		if len(app.RangeTables[name]) == 0 {
			return fmt.Errorf("table %v is missing from %v", name, rfcURL)
		}
	}
	b1 := app.MapTables["B.1"]
	b2 := app.MapTables["B.2"]
	if len(b1) == 0 || len(b2) == 0 {
		return fmt.Errorf("mapping tables are missing from %v", rfcURL)
	}

	folds, entries := compactFolds(b2)

	tmpl, err := template.New("tables").Funcs(template.FuncMap{
		"varName": varName,
		"quote":   quoteValue,
	}).Parse(tablesTmpl)
	if err != nil {
		return err
	}
	var b strings.Builder
	err = tmpl.Execute(&b, struct {
		RangeNames []string
		Ranges     map[string]rfc3454.Table
		B1         rfc3454.MapTable
		Folds      []fold
		Entries    rfc3454.MapTable
	}{
		RangeNames: rangeTables,
		Ranges:     app.RangeTables,
		B1:         b1,
		Folds:      folds,
		Entries:    entries,
	})
	if err != nil {
		return err
	}
	f, err := os.OpenFile("../rfc3454/tables.go", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, b.String())
	return nil
}

type fold struct {
	From   rune
	To     rune
	Delta  rune
	Stride rune
}

// compactFolds splits the B.2 entries into uniform-offset spans and the
// explicit remainder. A span must cover at least three entries with a
// single-code-point replacement, the same offset, and a constant stride;
// everything else stays an explicit entry.
func compactFolds(t rfc3454.MapTable) ([]fold, rfc3454.MapTable) {
	sort.Slice(t, func(i, j int) bool {
		return t[i].From < t[j].From
	})

	var folds []fold
	var entries rfc3454.MapTable
	for i := 0; i < len(t); {
		f, n := foldAt(t, i)
		if n < 3 {
			entries = append(entries, t[i])
			i++
			continue
		}
		folds = append(folds, f)
		i += n
	}
	return folds, entries
}

func foldAt(t rfc3454.MapTable, i int) (fold, int) {
	c, ok := singleValue(t[i])
	if !ok {
		return fold{}, 0
	}
	f := fold{From: t[i].From, To: t[i].From, Delta: c - t[i].From, Stride: 1}
	n := 1
	for i+n < len(t) {
		e := t[i+n]
		c, ok := singleValue(e)
		if !ok || c-e.From != f.Delta {
			break
		}
		stride := e.From - f.To
		if n == 1 {
			f.Stride = stride
		} else if stride != f.Stride {
			break
		}
		f.To = e.From
		n++
	}
	if n < 3 {
		return fold{}, 0
	}
	return f, n
}

func singleValue(e rfc3454.MapEntry) (rune, bool) {
	if utf8.RuneCountInString(e.To) != 1 {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(e.To)
	return c, true
}

func varName(table string) string {
	return "Table" + strings.ReplaceAll(table, ".", "")
}

func quoteValue(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		if c < 0x80 {
			b.WriteRune(c)
			continue
		}
		fmt.Fprintf(&b, "\\u%04X", c)
	}
	b.WriteByte('"')
	return b.String()
}

const tablesTmpl = `// Code generated by cmd/preptabgen/main.go. DO NOT EDIT.
// Source: RFC 3454 appendices (https://www.rfc-editor.org/rfc/rfc3454.txt).
// The character repertoire is Unicode 3.2, frozen by the RFC.

package rfc3454

{{range $name := .RangeNames -}}
var {{varName $name}} = Table{
{{- range index $.Ranges $name}}
	{{"{"}}{{printf "0x%04X" .From}}, {{printf "0x%04X" .To}}{{"}"}},
{{- end}}
}

{{end -}}
var TableB1 = MapTable{
{{- range .B1}}
	{{"{"}}{{printf "0x%04X" .From}}, {{quote .To}}{{"}"}},
{{- end}}
}

var TableB2 = buildMapTable(b2Entries, b2Folds)

var b2Folds = []foldRange{
{{- range .Folds}}
	{{"{"}}{{printf "0x%04X" .From}}, {{printf "0x%04X" .To}}, {{.Delta}}, {{.Stride}}{{"}"}},
{{- end}}
}

var b2Entries = []MapEntry{
{{- range .Entries}}
	{{"{"}}{{printf "0x%04X" .From}}, {{quote .To}}{{"}"}},
{{- end}}
}
`
