// Package main is the entry point for astgen, a build-time tool that extracts
// inheritance-aware type schemas from annotated definition files for a
// downstream code generator.
package main

func main() {
	Execute()
}
