package main

import (
	"fmt"
	"log"
	"log/slog"

	polykeymap "github.com/KeXu001/polykey-map"
	"github.com/KeXu001/polykey-map/model"
)

// Order is a toy trading order reachable both by the desk's internal id
// and by the exchange-assigned external id.
type Order struct {
	Ticker string
	SVol   int
}

func (o Order) String() string {
	return fmt.Sprintf("%s:%d", o.Ticker, o.SVol)
}

const (
	byInternalID = iota // uint64 keys
	byExternalID        // string keys
)

func main() {
	tracker, err := polykeymap.New[Order](2,
		polykeymap.WithPathKinds(model.KindUint64, model.KindString),
		polykeymap.WithLogger(polykeymap.NewTextLogger(slog.LevelDebug)),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Insert.
	must(tracker.Insert(byInternalID, model.Uint64Key(13), Order{Ticker: "AAPL", SVol: 100}))
	must(tracker.Insert(byInternalID, model.Uint64Key(14), Order{Ticker: "MSFT", SVol: -100}))
	must(tracker.Insert(byInternalID, model.Uint64Key(15), Order{Ticker: "TSLA", SVol: 20}))
	must(tracker.Insert(byInternalID, model.Uint64Key(19), Order{Ticker: "FB", SVol: 50}))

	v, err := tracker.Value(byInternalID, model.Uint64Key(13))
	must(err)
	fmt.Println(v)

	// Link the exchange acknowledgements.
	must(tracker.Link(byInternalID, model.Uint64Key(13), byExternalID, model.StringKey("1337")))
	must(tracker.Link(byInternalID, model.Uint64Key(19), byExternalID, model.StringKey("9865")))

	fmt.Printf("%d != %d\n", tracker.PathLen(byInternalID), tracker.PathLen(byExternalID))

	// Modify through the external path.
	ref, err := tracker.At(byExternalID, model.StringKey("1337"))
	must(err)
	ref.SVol = 50

	v, err = tracker.Value(byInternalID, model.Uint64Key(13))
	must(err)
	fmt.Println(v)

	// Erase by external key; the internal key goes with it.
	must(tracker.Erase(byExternalID, model.StringKey("1337")))

	// Walk the remainder, dropping TSLA at the cursor and showing key
	// introspection.
	it := tracker.Iter()
	for it.Next() {
		if it.Value().Ticker == "TSLA" {
			it.Delete()
			continue
		}

		fmt.Println("not erased =", *it.Value())

		if key, ok := it.Key(byInternalID); ok {
			fmt.Println("  internal id =", key)
		} else {
			fmt.Println("  internal id = N/A")
		}
		if key, ok := it.Key(byExternalID); ok {
			fmt.Println("  external id =", key)
		} else {
			fmt.Println("  external id = N/A")
		}
	}

	for v := range tracker.Values() {
		fmt.Println(v)
	}
	fmt.Println("size =", tracker.Len())

	// Copy vs. move.
	clone := tracker.Clone()
	moved := tracker.Move()

	fmt.Println("tracker.Len() =", tracker.Len())
	fmt.Println("clone.Len() =", clone.Len())
	fmt.Println("moved.Len() =", moved.Len())

	linked, err := clone.IsLinked(byInternalID, model.Uint64Key(19), byExternalID)
	must(err)
	fmt.Println("19 linked:", linked)

	external, err := clone.ConvertKey(byInternalID, model.Uint64Key(19), byExternalID)
	must(err)
	fmt.Println("converted key =", external)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
