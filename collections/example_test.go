package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-collect/collections"
)

func ExampleMake() {
	users := collections.Make([]any{
		map[string]any{"name": "John", "age": 30, "gender": "male"},
		map[string]any{"name": "Jane", "age": 25, "gender": "female"},
		map[string]any{"name": "Bob", "age": 35, "gender": "male"},
	})
	names := users.
		Where("age", ">", 26).
		SortByDesc("age").
		Pluck("name").
		Join(", ", " and ")
	fmt.Println(names)
	// Output: Bob and John
}

func ExampleCollection_Chunk() {
	fmt.Println(collections.Of("a", "b", "c", "d", "e").Chunk(2))
	// Output: [["a","b"],["c","d"],["e"]]
}

func ExampleCollection_GroupBy() {
	counts, _ := people().GroupBy("gender").HigherOrder("map").Call("count")
	fmt.Println(counts)
	// Output: {"male":2,"female":1}
}

func ExampleCollection_Median() {
	median, _ := collections.Of(1, 2, 3, 4, 5, 6).Median()
	fmt.Println(median)
	// Output: 3.5
}

func ExampleCollection_Sliding() {
	fmt.Println(collections.Range(1, 6).Sliding(2, 1))
	// Output: [[1,2],[2,3],[3,4],[4,5],[5,6]]
}

func ExampleCollection_Duplicates() {
	fmt.Println(collections.Of("a", "b", "a", "c", "b").Duplicates(nil))
	// Output: {"2":"a","4":"b"}
}

func ExampleCollection_Zip() {
	fmt.Println(collections.Of(1, 2, 3).Zip([]any{"a", "b", "c"}))
	// Output: [[1,"a"],[2,"b"],[3,"c"]]
}

func ExampleCollection_SortByMany() {
	sorted := people().SortByMany(
		collections.Ordering{By: "gender"},
		collections.Ordering{By: "age", Direction: "desc"},
	)
	fmt.Println(sorted.Pluck("name"))
	// Output: ["Jane","Bob","John"]
}

func ExampleCollection_HigherOrder() {
	total, _ := people().HigherOrder("sum").Get("age")
	fmt.Println(total)
	// Output: 90
}

func ExampleRegistry() {
	reg := collections.NewRegistry()
	reg.Register("evens", func(c *collections.Collection, _ ...any) any {
		return c.Filter(func(v any, _ collections.Key) bool { return v.(int)%2 == 0 }).Values()
	})

	res, _ := reg.Make([]any{1, 2, 3, 4}).Map(func(v any, _ collections.Key) any { return v }).Macro("evens")
	fmt.Println(res)
	// Output: [2,4]
}

func ExampleFromJSON() {
	c, _ := collections.FromJSON([]byte(`{"b": 1, "a": {"c": [1.5, null]}}`))
	fmt.Println(c.Keys())
	fmt.Println(c)
	// Output:
	// ["b","a"]
	// {"b":1,"a":{"c":[1.5,null]}}
}

func ExampleCollection_ToJSON() {
	data, _ := collections.Of(1, 2).ToJSON(collections.JSONForceObject)
	fmt.Println(string(data))
	// Output: {"0":1,"1":2}
}

func ExampleCollection_Invoke() {
	res, _ := people().Invoke("pluck", "name")
	fmt.Println(res)
	// Output: ["John","Jane","Bob"]
}
