package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/qnrq/mathex"
)

const historyFile = ".mathex_history"

func main() {
	log.SetFlags(0)
	var echo bool
	flag.BoolVar(&echo, "echo", false, "print parse trees before evaluating")
	flag.Parse()

	vm := &mathex.VM{}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if err := run(arg, vm, echo); err != nil {
				log.Fatal(err)
			}
		}
		return
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl(vm, echo)
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := run(line, vm, echo); err != nil {
			log.Fatal(err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// run evaluates one input line against the VM. A "name = expr" line binds a
// symbol instead of printing a result.
func run(src string, vm *mathex.VM, echo bool) error {
	if name, expr, ok := splitAssign(src); ok {
		n, err := mathex.ParseString(expr)
		if err != nil {
			return err
		}
		vm.Insert(name, n)
		return nil
	}
	n, err := mathex.ParseString(src)
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintln(os.Stderr, n)
	}
	v, err := mathex.Simplify(n, vm)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func repl(vm *mathex.VM, echo bool) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
			}
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return
		}
		ln.AppendHistory(line)
		if err := run(line, vm, echo); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// splitAssign reports whether a line has the form "name = expr". The engine
// grammar has no '=', so the first one decides.
func splitAssign(line string) (name, expr string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	expr = strings.TrimSpace(line[i+1:])
	if name == "" || expr == "" || !isName(name) {
		return "", "", false
	}
	return name, expr, true
}

func isName(s string) bool {
	for i, r := range s {
		if unicode.IsDigit(r) {
			if i == 0 {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && r != '_' {
			return false
		}
	}
	return true
}
