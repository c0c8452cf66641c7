package diag

import (
	"fmt"
	"strings"
)

// Context is a range of text in a piece of source code. It is typically
// used for errors that can be associated with a part of the source code,
// like parse errors and traceback entries.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritLineBegin   = "\033[1;4m"
	culpritLineEnd     = "\033[m"
	culpritPlaceHolder = "^"
)

// Show shows the context: the name of the source, the line range of the
// culprit, and the lines containing the culprit with the culprit itself
// highlighted.
func (c *Context) Show(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.lineRange() + " " + c.relevantSource(sourceIndent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	begin := strings.Count(c.Source[:c.From], "\n") + 1
	end := begin + strings.Count(strings.TrimSuffix(c.Source[c.From:c.To], "\n"), "\n")
	if begin == end {
		return fmt.Sprintf("line %d:", begin)
	}
	return fmt.Sprintf("line %d-%d:", begin, end)
}

func (c *Context) relevantSource(sourceIndent string) string {
	head := lastLine(c.Source[:c.From])
	culprit := c.Source[c.From:c.To]
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(c.Source[c.To:])
	}
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	var sb strings.Builder
	sb.WriteString(head)
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(sourceIndent)
		}
		sb.WriteString(culpritLineBegin)
		sb.WriteString(line)
		sb.WriteString(culpritLineEnd)
	}
	sb.WriteString(tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which
	// happens to be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
