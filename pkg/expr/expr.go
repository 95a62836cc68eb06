// Package expr provides the SQL expression tree that dialect drivers build
// and hand to the generic-SQL execution layer. Fragments are values, not
// raw strings: drivers compose nodes, and the consumer decides when (and
// whether) to render them.
package expr

import (
	"strconv"
	"strings"
)

// Expr is a SQL expression fragment. Nodes are immutable values; composing
// them never mutates their children.
type Expr interface {
	// WriteSQL renders the fragment into b.
	WriteSQL(b *strings.Builder)

	exprNode()
}

// SQL renders an expression to a string.
func SQL(e Expr) string {
	var b strings.Builder
	e.WriteSQL(&b)
	return b.String()
}

// Column is a column reference, optionally table-qualified. Identifiers are
// quoted with double quotes; embedded quotes are escaped by doubling.
type Column struct {
	Table string
	Name  string
}

func (Column) exprNode() {}

// Col returns an unqualified column reference.
func Col(name string) Column {
	return Column{Name: name}
}

// WriteSQL renders the quoted, possibly qualified, column reference.
func (c Column) WriteSQL(b *strings.Builder) {
	if c.Table != "" {
		writeQuoted(b, c.Table)
		b.WriteByte('.')
	}
	writeQuoted(b, c.Name)
}

func writeQuoted(b *strings.Builder, name string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(name, `"`, `""`))
	b.WriteByte('"')
}

// Literal is a typed literal value.
type Literal struct {
	Kind  LiteralKind
	Value string
}

// LiteralKind distinguishes how a literal is rendered.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
)

func (Literal) exprNode() {}

// Int returns an integer literal.
func Int(n int64) Literal {
	return Literal{Kind: LiteralNumber, Value: strconv.FormatInt(n, 10)}
}

// String returns a single-quoted string literal. Embedded single quotes are
// escaped by doubling.
func String(s string) Literal {
	return Literal{Kind: LiteralString, Value: s}
}

// WriteSQL renders the literal.
func (l Literal) WriteSQL(b *strings.Builder) {
	if l.Kind == LiteralString {
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(l.Value, "'", "''"))
		b.WriteByte('\'')
		return
	}
	b.WriteString(l.Value)
}

// Raw is a verbatim SQL fragment for keyword expressions the tree has no
// structured node for, e.g. "CURRENT TIMESTAMP". Use sparingly: anything
// with operands should be a structured node.
type Raw string

func (Raw) exprNode() {}

// WriteSQL writes the fragment verbatim.
func (r Raw) WriteSQL(b *strings.Builder) {
	b.WriteString(string(r))
}

// Func is a function call.
type Func struct {
	Name string
	Args []Expr
}

func (Func) exprNode() {}

// Fn returns a function call expression.
func Fn(name string, args ...Expr) Func {
	return Func{Name: name, Args: args}
}

// WriteSQL renders NAME(arg, arg, ...).
func (f Func) WriteSQL(b *strings.Builder) {
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.WriteSQL(b)
	}
	b.WriteByte(')')
}

// Binary is an infix operation. It always renders parenthesized so that
// composed fragments never change meaning through precedence.
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
}

func (Binary) exprNode() {}

// Op returns a parenthesized infix expression.
func Op(left Expr, op string, right Expr) Binary {
	return Binary{Left: left, Op: op, Right: right}
}

// WriteSQL renders (left op right).
func (o Binary) WriteSQL(b *strings.Builder) {
	b.WriteByte('(')
	o.Left.WriteSQL(b)
	b.WriteByte(' ')
	b.WriteString(o.Op)
	b.WriteByte(' ')
	o.Right.WriteSQL(b)
	b.WriteByte(')')
}

// Interval is a labeled duration, e.g. "3 MONTHS" or "(x / 60) MINUTES".
// The amount may be any expression; backends that use labeled durations
// (Db2) accept both literals and computed amounts.
type Interval struct {
	Amount Expr
	Label  string
}

func (Interval) exprNode() {}

// Duration returns a labeled duration with the given amount and unit label.
func Duration(amount Expr, label string) Interval {
	return Interval{Amount: amount, Label: label}
}

// WriteSQL renders "amount LABEL".
func (i Interval) WriteSQL(b *strings.Builder) {
	i.Amount.WriteSQL(b)
	b.WriteByte(' ')
	b.WriteString(i.Label)
}

// Extract is the ANSI EXTRACT(part FROM e) form. Backends with native
// part-extraction scalar functions (Db2's DAYOFWEEK, QUARTER, ...) use Func
// instead.
type Extract struct {
	Part string
	From Expr
}

func (Extract) exprNode() {}

// ExtractPart returns an EXTRACT expression.
func ExtractPart(part string, from Expr) Extract {
	return Extract{Part: part, From: from}
}

// WriteSQL renders EXTRACT(PART FROM e).
func (e Extract) WriteSQL(b *strings.Builder) {
	b.WriteString("EXTRACT(")
	b.WriteString(e.Part)
	b.WriteString(" FROM ")
	e.From.WriteSQL(b)
	b.WriteByte(')')
}

// Cast is an explicit CAST(e AS type).
type Cast struct {
	E    Expr
	Type string
}

func (Cast) exprNode() {}

// CastAs returns a CAST expression.
func CastAs(e Expr, typ string) Cast {
	return Cast{E: e, Type: typ}
}

// WriteSQL renders CAST(e AS TYPE).
func (c Cast) WriteSQL(b *strings.Builder) {
	b.WriteString("CAST(")
	c.E.WriteSQL(b)
	b.WriteString(" AS ")
	b.WriteString(c.Type)
	b.WriteByte(')')
}
