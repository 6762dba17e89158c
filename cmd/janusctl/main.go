// janusctl builds a four-level byte-offset index from a YAML layout
// description and answers reverse lookups against it.
package main

func main() {
	execute()
}
