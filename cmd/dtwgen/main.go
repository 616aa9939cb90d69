// dtwgen converts filled entry workbooks into DTW import bundles from the
// command line, without running the web service.
package main

func main() {
	Execute()
}
