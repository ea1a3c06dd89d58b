// Command patterndb reports pattern-database table sizes at a given
// depth, useful for confirming ground-truth counts without running
// the full test suite.
package main

import (
	"flag"
	"fmt"

	"github.com/ehrlich-b/locky/internal/heuristic"
	"github.com/ehrlich-b/locky/internal/projection"
)

func main() {
	depth := flag.Int("depth", 5, "BFS depth to build each table to")
	flag.Parse()

	tables := []struct {
		name  string
		build func() int
	}{
		{"LockProj", func() int { return len(heuristic.Build(uint8(*depth), projection.Lock).Table) }},
		{"ArrowAxisProj", func() int { return len(heuristic.Build(uint8(*depth), projection.ArrowAxis).Table) }},
		{"CornerProj", func() int { return len(heuristic.Build(uint8(*depth), projection.Corner).Table) }},
		{"CoUdProj", func() int { return len(heuristic.Build(uint8(*depth), projection.CoUd).Table) }},
		{"CoFbProj", func() int { return len(heuristic.Build(uint8(*depth), projection.CoFb).Table) }},
		{"CoRlProj", func() int { return len(heuristic.Build(uint8(*depth), projection.CoRl).Table) }},
		{"CornerUdProj", func() int { return len(heuristic.Build(uint8(*depth), projection.CornerUd).Table) }},
		{"CornerFbProj", func() int { return len(heuristic.Build(uint8(*depth), projection.CornerFb).Table) }},
		{"CornerRlProj", func() int { return len(heuristic.Build(uint8(*depth), projection.CornerRl).Table) }},
	}

	fmt.Printf("Depth: %d\n", *depth)
	for _, tbl := range tables {
		fmt.Printf("%-16s %d\n", tbl.name, tbl.build())
	}
}
