// Package sixhops provides a small toolkit of classic search exercises:
// shortest connection chains over a people/movies graph, grid maze
// pathfinding, and minimax tic-tac-toe.
//
// The root package is the facade for the connection finder. It wraps an
// in-memory entity/grouping store and a breadth-first search engine behind
// a single Client.
//
// # Basic Usage
//
// Load a dataset and create a client:
//
//	store, err := dataset.NewLoader(logger).Load("data/small")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := sixhops.NewClient(store, nil, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Resolving Names
//
// Display names need not be unique, so name resolution returns every
// candidate and leaves the choice to the caller:
//
//	candidates, err := client.ResolveName("Kevin Bacon")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Finding Chains
//
// Find the shortest chain of shared movies between two people:
//
//	chain, err := client.ShortestChain(ctx, sourceID, targetID)
//	if errors.Is(err, sixhops.ErrNoConnection) {
//		fmt.Println("Not connected.")
//		return
//	}
//
//	lines, err := client.Describe(sourceID, chain)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d degrees of separation\n", chain.Degrees())
//	for _, line := range lines {
//		fmt.Println(line)
//	}
//
// The maze and tic-tac-toe exercises live in pkg/maze and pkg/tictactoe
// and are independent of the connection finder; all three share the
// frontier containers in pkg/frontier.
package sixhops
