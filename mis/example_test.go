package mis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/peelmis/builder"
	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/mis"
	"github.com/katalvlaran/peelmis/priority"
)

// ExampleRun peels the path 0-1-2-3 with ranks 1,0,3,2: vertices 1 and 3
// are local minima and enter the set in the first round.
func ExampleRun() {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := priority.FromRanks([]uint32{1, 0, 3, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := mis.Run(context.Background(), g, p, mis.WithCounter(counter.KindSharded), mis.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Members(), res.Rounds, mis.Verify(g, res.InSet))

	// Output:
	// [1 3] 1 <nil>
}
