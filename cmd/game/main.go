package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/wellfall/internal/config"
	"github.com/tomz197/wellfall/internal/game"
	"github.com/tomz197/wellfall/internal/loop"
	"github.com/tomz197/wellfall/internal/store"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	st := store.Open(config.GetEnv("WELLFALL_STATE", store.DefaultPath()))
	difficulty := game.ParseDifficulty(config.GetEnv("WELLFALL_DIFFICULTY", "normal"))

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		Store:      st,
		Difficulty: difficulty,
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
