package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"janggi/internal/janggi"
	"janggi/internal/session"
)

const help = `commands:
  <from> <to>   move, e.g. "c7 c6"; same square twice passes
  moves <sq>    list destinations of the piece on <sq>
  board         print the board
  quit`

// run 读一行执行一条命令，直到 quit 或输入结束
func run(r io.Reader, w io.Writer, m *session.Manager, id string) error {
	st, err := m.State(id)
	if err != nil {
		return err
	}
	printState(w, st)

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s> ", st.Turn)
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "quit":
			return nil
		case fields[0] == "help":
			fmt.Fprintln(w, help)
		case fields[0] == "board":
			printState(w, st)
		case fields[0] == "moves" && len(fields) == 2:
			dests, err := m.Destinations(id, fields[1])
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			fmt.Fprintln(w, strings.Join(dests, " "))
		case len(fields) == 2:
			res, err := m.Move(id, fields[0], fields[1])
			if errors.Is(err, janggi.ErrInvalidNotation) {
				fmt.Fprintln(w, err)
				continue
			}
			if err != nil {
				return err
			}
			if !res.Accepted {
				fmt.Fprintf(w, "rejected: %s\n", res.Reason)
				continue
			}
			st = res.State
			printState(w, st)
		default:
			fmt.Fprintln(w, help)
		}
	}
}

func printState(w io.Writer, st session.State) {
	fmt.Fprint(w, st.Board)
	switch {
	case st.Status != janggi.Unfinished.String():
		fmt.Fprintf(w, "game over: %s\n", st.Status)
	case st.InCheck:
		fmt.Fprintf(w, "%s to move, in check\n", st.Turn)
	default:
		fmt.Fprintf(w, "%s to move\n", st.Turn)
	}
}
