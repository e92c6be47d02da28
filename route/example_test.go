package route_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/route"
)

func ExampleEngine_ComputeRoute() {
	g, _ := builder.Corridor()
	e, _ := route.NewEngine(g)

	res := e.ComputeRoute(context.Background(), "r132", "R134")
	fmt.Println(res.Path, res.HopCount)
	fmt.Println(res.Description)
	// Output:
	// [R132 R133 R134] 2
	// Your route:
	//
	// Start: Room 132 (classroom)
	// Go to: Room 133 (classroom)
	// Destination: Room 134 (classroom)
	//
	// Route in 2 steps
}

func ExampleEngine_ComputeRoute_unreachable() {
	g, _ := builder.Hub()
	e, _ := route.NewEngine(g)

	res := e.ComputeRoute(context.Background(), "HALL1", "BOILER")
	fmt.Println(res.Success, errors.Is(res.Err, route.ErrNoRoute))
	fmt.Println(res.Description)
	// Output:
	// false true
	// No route from First Floor Hall to Boiler Room. The two locations are not connected.
}
