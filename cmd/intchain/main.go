package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ib-77/intchain/pkg/chain"
	"github.com/ib-77/intchain/pkg/chain/script"
	"github.com/ib-77/intchain/pkg/rop"
)

func main() {
	scriptPath := flag.String("script", "", "read commands from `file` (\"-\" for stdin) instead of running the walkthrough")
	stopOnError := flag.Bool("stop-on-error", false, "stop the script at the first failed line")
	echo := flag.Bool("echo", false, "echo each script command before its output")
	wait := flag.Bool("wait", false, "wait for Enter before exiting")
	flag.Parse()

	ctx := script.WithOptions(context.Background(), script.Options{
		StopOnError: *stopOnError,
		Echo:        *echo,
	})

	code := 0
	if *scriptPath == "" {
		walkthrough(os.Stdout)
	} else if err := runScript(ctx, *scriptPath, os.Stdin, os.Stdout); err != nil {
		for _, e := range rop.GetErrors(err) {
			log.Println(e)
		}
		code = 1
	}

	if *wait {
		waitForEnter(os.Stdin, os.Stdout)
	}
	os.Exit(code)
}

// walkthrough builds [10 20 35 30 40], lists it, deletes index 1 and lists
// it again.
func walkthrough(w io.Writer) {
	c := chain.New()

	c.Insert(10, chain.Tail)
	c.Insert(20, chain.At(1))
	c.Insert(30, chain.At(2))
	c.Insert(40, chain.Tail)
	c.Insert(35, chain.At(2))
	_ = script.WriteListing(w, "Linked List:", c)

	c.Delete(1)
	_ = script.WriteListing(w, "Linked List after deletion:", c)
}

// runScript reads commands from path, or from stdin when path is "-".
func runScript(ctx context.Context, path string, stdin io.Reader, out io.Writer) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return script.NewRunner(chain.New(), out).Run(ctx, in)
}

func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Press Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
