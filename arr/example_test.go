package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-collect/arr"
)

func ExampleDataGet() {
	order := map[string]any{
		"customer": map[string]any{"name": "Ada"},
		"lines":    []any{map[string]any{"sku": "X-1"}},
	}
	fmt.Println(arr.DataGet(order, "customer.name"))
	fmt.Println(arr.DataGet(order, "lines.0.sku"))
	fmt.Println(arr.DataGet(order, "customer.email", "none"))
	// Output:
	// Ada
	// X-1
	// none
}

func ExampleWrap() {
	fmt.Println(len(arr.Wrap(nil)), arr.Wrap("a"), arr.Wrap([]int{1, 2}))
	// Output: 0 [a] [1 2]
}
