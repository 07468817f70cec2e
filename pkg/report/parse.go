package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabesullice/go-bintree/pkg/tree"
)

var (
	ErrInvalidValue = errors.New("invalid node value")
	ErrOrphanValue  = errors.New("value has no parent")
)

func isAbsent(tok string) bool {
	switch tok {
	case "-", "null", "nil":
		return true
	}
	return false
}

func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']'
	})
}

func parseValue(tok string) (*tree.Node, error) {
	if isAbsent(tok) {
		return nil, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, tok)
	}
	return &tree.Node{Value: v}, nil
}

// Parse reads a tree written in compact level order: the root, then the
// left and right child of every present node in turn. Children of absent
// nodes are not written. Trailing absent markers may be omitted.
func Parse(line string) (*tree.Node, error) {
	toks := splitTokens(line)
	if len(toks) == 0 {
		return nil, nil
	}
	root, err := parseValue(toks[0])
	if err != nil {
		return nil, err
	}
	if root == nil {
		if len(toks) > 1 {
			return nil, fmt.Errorf("%w: %q", ErrOrphanValue, toks[1])
		}
		return nil, nil
	}
	queue := []*tree.Node{root}
	i := 1
	for ; i < len(toks) && len(queue) > 0; i += 2 {
		parent := queue[0]
		queue = queue[1:]
		if parent.Left, err = parseValue(toks[i]); err != nil {
			return nil, err
		}
		if parent.Left != nil {
			queue = append(queue, parent.Left)
		}
		if i+1 == len(toks) {
			i++
			break
		}
		if parent.Right, err = parseValue(toks[i+1]); err != nil {
			return nil, err
		}
		if parent.Right != nil {
			queue = append(queue, parent.Right)
		}
	}
	if i < len(toks) {
		return nil, fmt.Errorf("%w: %q", ErrOrphanValue, toks[i])
	}
	return root, nil
}
