// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Columns of the results table.
var Columns = []string{"Pilot", "Flight No.", "Dept.", "Dest", "Arrival"}

// TimeLayout formats the current time shown above the results.
const TimeLayout = "2006-01-02 15:04:05"

// View is what a board displays: the filtered flights plus the context they
// were filtered in.
type View struct {
	Total   int
	Term    string
	Now     time.Time
	Flights []Flight
}

// NewView filters all for term at now.
func NewView(all []Flight, term string, now time.Time) View {
	return View{
		Total:   len(all),
		Term:    term,
		Now:     now,
		Flights: Filter(all, term, now),
	}
}

// Row returns the table cells of f in Columns order.
func Row(f Flight) []string {
	return []string{f.Pilot(), string(f.ID), f.Dept, f.Dest, f.Arrival}
}

// Rows ...
func (v View) Rows() [][]string {
	rows := make([][]string, 0, len(v.Flights))
	for _, f := range v.Flights {
		rows = append(rows, Row(f))
	}
	return rows
}

// Summary lines shown above the table.
func (v View) Summary() []string {
	return []string{
		"Number of flights returned: " + strconv.Itoa(v.Total),
		"Current Time is : " + v.Now.Format(TimeLayout),
		"You are currently Searching: " + v.Term,
	}
}

// RenderText writes the view as a bordered text table.
func RenderText(w io.Writer, v View) error {
	for _, line := range v.Summary() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Columns...).
		Rows(v.Rows()...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// RenderJSON writes the filtered flights in the source document shape.
func RenderJSON(w io.Writer, v View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "   ")
	return enc.Encode(Board{FlightTimes: v.Flights})
}

// RenderHTML writes the view as an HTML fragment: two headings and a
// bordered table.
func RenderHTML(w io.Writer, v View) error {
	summary := v.Summary()
	nodes := []*html.Node{
		withText(element(atom.H1), summary[0]),
		withText(element(atom.H3), summary[1]),
		withText(element(atom.H4), summary[2]),
		htmlTable(v),
	}
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func htmlTable(v View) *html.Node {
	tbl := element(atom.Table, html.Attribute{Key: "border", Val: "1"})

	thead := element(atom.Thead)
	hr := element(atom.Tr)
	for _, c := range Columns {
		hr.AppendChild(withText(element(atom.Th), c))
	}
	thead.AppendChild(hr)
	tbl.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, f := range v.Flights {
		tr := element(atom.Tr)
		tr.AppendChild(cell(withText(element(atom.I), f.Pilot())))
		tr.AppendChild(cell(withText(element(atom.B), string(f.ID))))
		tr.AppendChild(cell(withText(element(atom.B), f.Dept)))
		tr.AppendChild(cell(withText(element(atom.B), f.Dest)))
		tr.AppendChild(withText(element(atom.Td), f.Arrival))
		tbody.AppendChild(tr)
	}
	tbl.AppendChild(tbody)
	return tbl
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return n
}

func cell(child *html.Node) *html.Node {
	td := element(atom.Td)
	td.AppendChild(child)
	return td
}
