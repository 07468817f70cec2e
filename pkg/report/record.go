package report

import (
	"fmt"

	"github.com/gabesullice/go-bintree/pkg/tree"
)

// Record holds the structural facts computed for one tree.
type Record struct {
	Name    string
	Size    int
	Height  int
	Balance int
	Perfect bool
	MaxHeap bool
}

func Analyze(name string, root *tree.Node) Record {
	return Record{
		Name:    name,
		Size:    root.Size(),
		Height:  root.Height(),
		Balance: root.BalanceFactor(),
		Perfect: root.IsPerfect(),
		MaxHeap: root.IsMaxHeap(),
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%s=%d/%d/%d/%t/%t", r.Name, r.Size, r.Height, r.Balance, r.Perfect, r.MaxHeap)
}
