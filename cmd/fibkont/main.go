// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fibkont evaluates Fibonacci terms on the trampoline evaluator.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"code.hybscloud.com/fibkont"
	"code.hybscloud.com/fibkont/internal/fixture"
	"code.hybscloud.com/fibkont/internal/logger"
)

func main() {
	var (
		help       bool
		verbose    bool
		noColor    bool
		zeroIndex  bool
		trace      bool
		verifyPath string
	)

	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "nc", false, "No color")
	flag.BoolVar(&zeroIndex, "z", false, "Use the zero-indexed convention F(0)=0, F(1)=1")
	flag.BoolVar(&trace, "t", false, "Trace every evaluator transition")
	flag.StringVar(&verifyPath, "verify", "", "Verify expected vectors from a YAML file")

	flag.Parse()
	args := flag.Args()

	logger.Init(verbose, noColor)
	if help {
		fmt.Printf("Usage: %s [options] <n>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if verifyPath != "" {
		verify(verifyPath)
		return
	}

	if len(args) == 0 {
		log.Fatal("No index provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatal("Index is not an integer", "arg", args[0])
	}

	if trace {
		if zeroIndex {
			log.Fatal("Tracing supports only the one-indexed convention")
		}
		runTrace(n)
		return
	}

	evaluate := fibkont.Evaluate
	if zeroIndex {
		evaluate = fibkont.EvaluateZeroIndexed
	}
	v, err := evaluate(n)
	if err != nil {
		log.Fatal("Evaluation failed", "error", err)
	}
	fmt.Println(v)
}

// runTrace drives the stepping evaluator and prints every transition.
func runTrace(n int) {
	e, err := fibkont.NewEvaluator(n)
	if err != nil {
		log.Fatal("Evaluation failed", "error", err)
	}
	for {
		halted := e.Step()
		fmt.Printf("step=%d index=%d depth=%d acc=%d\n",
			e.Steps(), e.Index(), e.Depth(), e.Accumulator())
		if halted {
			break
		}
	}
	log.Debug("Trace complete",
		"steps", e.Steps(), "pushes", e.Pushes(), "pops", e.Pops(), "maxDepth", e.MaxDepth())
	fmt.Println(e.Accumulator())
}

// verify runs every case from a YAML vector file and fails on any mismatch.
func verify(path string) {
	suites, err := fixture.Load(path)
	if err != nil {
		log.Fatal("Loading fixtures failed", "error", err)
	}
	failures := 0
	for _, s := range suites {
		for _, c := range s.Cases {
			got, err := s.Eval(c.N)
			if err != nil {
				log.Error("Case errored", "convention", s.Convention, "n", c.N, "error", err)
				failures++
				continue
			}
			if got != c.Want {
				log.Error("Case mismatch", "convention", s.Convention, "n", c.N, "got", got, "want", c.Want)
				failures++
				continue
			}
			log.Debug("Case passed", "convention", s.Convention, "n", c.N, "value", got)
		}
	}
	if failures > 0 {
		log.Fatal("Verification failed", "failures", failures)
	}
	fmt.Println("ok")
}
