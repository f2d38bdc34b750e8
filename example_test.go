package palm_test

import (
	"errors"
	"fmt"

	"github.com/lvillar/palm"
)

func ExampleCreateLayout() {
	d, err := palm.Parse([]byte(`{
		"pages": [{
			"elems": [
				{"type": "pic", "pos": [10, 20], "size": [100, 150], "pic": "ann.jpg", "fileset": "originals"},
				{"type": "text", "pos": [10, 175], "size": [100, 12], "txt": "Ann", "align": "left"}
			]
		}]
	}`))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, err := palm.NewParams(
		palm.WithLayer("Photos"),
		palm.WithPics("/photos"),
		palm.WithStyle("caption"),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	doc := newRecorder(1)
	if err := palm.CreateLayout(doc, d, p); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, c := range doc.calls {
		fmt.Println(c)
	}
	// Output:
	// page 0
	// rect "Photos" [20 10 170 110]
	// load /photos/ann.jpg
	// fit
	// text "Photos" [175 10 187 110] "Ann"
	// style caption
	// justify left
}

func ExampleCreateLayout_continueOnError() {
	d, _ := palm.Parse([]byte(`{"pages": [{"elems": [
		{"type": "pic", "pos": [0, 0], "size": [10, 10], "pic": "gone.png"},
		{"type": "text", "pos": [0, 10], "size": [10, 5], "txt": "still here"}
	]}]}`))
	p, _ := palm.NewParams(palm.WithOnError(palm.ContinueOnError))

	doc := newRecorder(1)
	doc.missing["gone.png"] = true

	err := palm.CreateLayout(doc, d, p)
	var summary *palm.FailureSummary
	if errors.As(err, &summary) {
		for _, f := range summary.Failures {
			fmt.Println(f)
		}
	}
	// Output:
	// palm: page 1, element 1 (pic): file not found: gone.png
}

func ExampleBoundsOf() {
	b := palm.BoundsOf([2]float64{5, 40}, [2]float64{30, 60})
	fmt.Println(b, b.Width(), b.Height())
	// Output: [40 5 100 35] 30 60
}
