// Command widesearch finds and counts substrings in files encoded as UTF-8,
// Latin-1, UTF-16 or UTF-32.
package main

func main() {
	execute()
}
