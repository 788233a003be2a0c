// Command rnaview-core is a thin runnable harness around the pairing
// engine: analyze a structure file, emit its canonical record, or diff
// two previously emitted text records. The engine itself
// (structure/pdbio/pairing/emit) has no CLI dependency; this binary
// exists only so the module is runnable end to end.
package main

func main() {
	Execute()
}
