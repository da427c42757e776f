package main

import (
	"fmt"
	"log"
	"os"

	"github.com/theflywheel/primehash"
)

func main() {
	logger := log.New(os.Stdout, "", 0)

	// Integer keys, resize tracing on stdout
	ht := primehash.NewInt[int, int](primehash.WithLogger(logger))

	fmt.Println("Hash table created with capacity", ht.Capacity())

	for i := 0; i < 10; i++ {
		if !ht.Insert(i, i*100) {
			log.Fatalf("Failed to insert key %d", i)
		}
	}

	fmt.Printf("Inserted 10 key-value pairs (capacity %d)\n", ht.Capacity())

	for i := 0; i < 15; i += 2 {
		if e, found := ht.Retrieve(i); found {
			fmt.Printf("Key %d => Value %d\n", e.Key, e.Value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	if ht.Insert(2, 999) {
		log.Fatal("Duplicate insert accepted")
	}
	ht.Update(2, 999)
	if e, found := ht.Retrieve(2); found {
		fmt.Printf("Updated key 2 => Value %d\n", e.Value)
	}

	for i := 0; i < 10; i++ {
		ht.Remove(i)
	}
	fmt.Printf("Removed all keys (size %d, capacity %d)\n", ht.Size(), ht.Capacity())

	fruit := primehash.NewString[int]()
	fruit.Insert("apple", 1)
	fruit.Insert("banana", 2)
	fmt.Println(fruit)

	fmt.Println("Example completed successfully")
}
