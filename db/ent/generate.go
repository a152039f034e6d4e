package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Generates the ent client for the invoice schemas into gen/ent.
func main() {
	cfg := &gen.Config{
		Target:  "gen/ent",
		Package: "github.com/amani-mollel/invoice-tracker/gen/ent",
		Schema:  "ent/schema",
	}
	if err := entc.Generate("./db/ent/schema", cfg); err != nil {
		log.Fatalf("ent codegen: %v", err)
	}
}
