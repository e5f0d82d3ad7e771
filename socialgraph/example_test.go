package socialgraph_test

import (
	"fmt"

	"github.com/katalvlaran/algolab/socialgraph"
)

// ExampleDegreesOfSeparation finds the hop count along a chain of friends.
//
//	ann ── ben ── cai ── dee
func ExampleDegreesOfSeparation() {
	n := socialgraph.NewNetwork()
	_ = n.Befriend("ann", "ben")
	_ = n.Befriend("ben", "cai")
	_ = n.Befriend("cai", "dee")

	d, err := socialgraph.DegreesOfSeparation(n, "ann", "dee")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := socialgraph.BFS(n, "ann")
	path, _ := res.PathTo("dee")
	fmt.Println(d, path)
	// Output: 3 [ann ben cai dee]
}
