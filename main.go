package main

// main always exits 0: the assembler treats every failure, including a
// missing input file or an unwritable output path, as an advisory
// diagnostic rather than a fatal condition.
func main() {
	NewRootCommand().Execute()
}
