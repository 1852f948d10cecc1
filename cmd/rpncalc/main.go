package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/hyleus/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo         bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print token and postfix sequences")
	flag.Parse()

	verb += "\n"
	for _, arg := range flag.Args() {
		eval(arg, verb, echo)
	}

	in, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in == nil {
		return
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		eval(sc.Text(), verb, echo)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// eval runs one expression through the pipeline and prints the result or
// the error. Errors don't stop the program; each line stands alone.
func eval(expr, verb string, echo bool) {
	toks, err := rpn.Tokenize(expr)
	if err != nil {
		fmt.Println(err)
		return
	}
	postfix, err := rpn.ToPostfix(toks)
	if err != nil {
		fmt.Println(err)
		return
	}
	if echo {
		repr.Println(toks)
		repr.Println(postfix)
	}
	r, err := rpn.EvalPostfix(postfix)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf(verb, r)
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
