// SPDX-License-Identifier: MIT

package season_test

import (
	"fmt"

	"github.com/katalvlaran/coachtree/season"
)

// ExampleParse shows that both boundary encodings collapse to the same set.
func ExampleParse() {
	literal, _ := season.Parse("[2012, 2010, 2011]")
	csv, _ := season.Parse("2010,2011,2012")
	fmt.Println(literal, literal.Equal(csv))

	// Output:
	// [2010 2011 2012] true
}

// ExampleYears_Intersect computes the shared seasons that justify a relation.
func ExampleYears_Intersect() {
	a := season.Span(2008, 2012)
	b := season.Span(2011, 2014)
	fmt.Println(a.Intersect(b))

	// Output:
	// [2011 2012]
}
