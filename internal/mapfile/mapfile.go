// Package mapfile reads and writes the colony map text format using
// Participle v2. One colony per line: the name first, then
// direction=target tunnel tokens. Directions are case-insensitive, `#`
// comments run to end of line.
package mapfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/talgya/ant-mania/internal/colony"
)

// AST node types - parsed from source, resolved to colony values afterwards.

type mapAST struct {
	Colonies []*colonyLine `@@*`
}

type colonyLine struct {
	Name    string       `@Ident`
	Tunnels []*tunnelDef `@@*`
}

type tunnelDef struct {
	Direction string `@Ident "="`
	Target    string `@Ident`
}

var mapLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Eq", Pattern: `=`},

	// Names are any run of characters that cannot open a tunnel token or a
	// comment, so "Ash-hill.7" is as valid as "A".
	{Name: "Ident", Pattern: `[^\s=#]+`},
})

var parser = participle.MustBuild[mapAST](
	participle.Lexer(mapLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse builds the colony graph from map source text.
func Parse(src string) ([]colony.Colony, error) {
	ast, err := parser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return resolve(ast)
}

// ParseFile reads and parses a map file. Parse errors carry the file name
// and position.
func ParseFile(path string) ([]colony.Colony, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	ast, err := parser.ParseString(path, string(data))
	if err != nil {
		return nil, err
	}
	return resolve(ast)
}

// resolve turns parsed names into colony indexes. Every target must name a
// colony defined in the file, names must be unique, and no tunnel may point
// at its own colony.
func resolve(ast *mapAST) ([]colony.Colony, error) {
	index := make(map[string]int, len(ast.Colonies))
	colonies := make([]colony.Colony, 0, len(ast.Colonies))
	for _, line := range ast.Colonies {
		if _, dup := index[line.Name]; dup {
			return nil, fmt.Errorf("duplicate colony %q", line.Name)
		}
		index[line.Name] = len(colonies)
		colonies = append(colonies, colony.New(line.Name))
	}

	for i, line := range ast.Colonies {
		for _, t := range line.Tunnels {
			d, err := colony.ParseDirection(t.Direction)
			if err != nil {
				return nil, fmt.Errorf("colony %q: %w", line.Name, err)
			}
			j, ok := index[t.Target]
			if !ok {
				return nil, fmt.Errorf("colony %q: %s tunnel points to unknown colony %q", line.Name, d, t.Target)
			}
			if j == i {
				return nil, fmt.Errorf("colony %q: %s tunnel points back to itself", line.Name, d)
			}
			colonies[i].AddTunnel(d, j)
		}
	}

	return colonies, nil
}

// Encode writes the graph in map format, one line per non-destroyed colony,
// tunnels in north/south/east/west order. Encoded output parses back to an
// equivalent graph.
func Encode(w io.Writer, colonies []colony.Colony) error {
	var b strings.Builder
	for i := range colonies {
		c := &colonies[i]
		if c.Destroyed() {
			continue
		}
		b.Reset()
		b.WriteString(c.Name)
		for d := colony.North; d <= colony.West; d++ {
			if t := c.Tunnel(d); t != colony.None {
				b.WriteByte(' ')
				b.WriteString(d.String())
				b.WriteByte('=')
				b.WriteString(colonies[t].Name)
			}
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
