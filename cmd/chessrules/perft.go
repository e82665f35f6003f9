package main

import (
	"log"

	"github.com/daystram/chessrules/bench"
)

func perft(depth int, f string, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()

	_, err := bench.Perft(depth, f, parallel, true, out)
	close(out)
	<-done
	return err
}
