// Command benchguard runs the module benchmarks and fails when any
// configured benchmark regresses past its guardrail. The per-sample
// transforms are hot-path code for telephony streams, so throughput and
// the zero-allocation guarantee are enforced in CI rather than eyeballed.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type guardrail struct {
	MaxNsOp     float64 `json:"max_ns_op"`
	MaxAllocsOp float64 `json:"max_allocs_op"`
}

type config struct {
	BenchRegex string               `json:"bench_regex"`
	Count      int                  `json:"count"`
	Benchtime  string               `json:"benchtime"`
	Benchmarks map[string]guardrail `json:"benchmarks"`
}

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "tools/bench_guardrails.json", "path to guardrails config")
	flag.Parse()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fatalf("load config: %v", err)
	}

	out, err := runBench(cfg)
	if err != nil {
		fatalf("run benchmarks: %v", err)
	}

	results, err := parseBenchOutput(out)
	if err != nil {
		fatalf("parse benchmark output: %v", err)
	}

	violations := evaluate(cfg, results)
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, "benchguard:", v)
		}
		os.Exit(1)
	}
	fmt.Println("benchguard: all benchmarks within guardrails")
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.BenchRegex == "" {
		return nil, errors.New("bench_regex must be set")
	}
	if cfg.Count <= 0 {
		return nil, errors.New("count must be > 0")
	}
	if cfg.Benchtime == "" {
		return nil, errors.New("benchtime must be set")
	}
	if len(cfg.Benchmarks) == 0 {
		return nil, errors.New("benchmarks must be non-empty")
	}
	return &cfg, nil
}

func runBench(cfg *config) ([]byte, error) {
	cmd := exec.Command("go", "test",
		"-run", "^$",
		"-bench", cfg.BenchRegex,
		"-benchmem",
		"-count", strconv.Itoa(cfg.Count),
		"-benchtime", cfg.Benchtime,
		".")
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	fmt.Print(buf.String())
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type measurement struct {
	nsOp     float64
	allocsOp float64
}

var benchLineRe = regexp.MustCompile(`^(Benchmark\S+?)(?:-\d+)?\s+\d+\s+([0-9.eE+\-]+)\s+ns/op\s+[0-9.eE+\-]+\s+B/op\s+([0-9.eE+\-]+)\s+allocs/op$`)

func parseBenchOutput(out []byte) (map[string][]measurement, error) {
	results := make(map[string][]measurement)
	for _, line := range strings.Split(string(out), "\n") {
		m := benchLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		nsOp, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parse ns/op for %s: %w", m[1], err)
		}
		allocsOp, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parse allocs/op for %s: %w", m[1], err)
		}
		results[m[1]] = append(results[m[1]], measurement{nsOp: nsOp, allocsOp: allocsOp})
	}
	if len(results) == 0 {
		return nil, errors.New("no benchmark rows parsed")
	}
	return results, nil
}

func evaluate(cfg *config, results map[string][]measurement) []string {
	names := make([]string, 0, len(cfg.Benchmarks))
	for name := range cfg.Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	var violations []string
	for _, name := range names {
		guard := cfg.Benchmarks[name]
		rows := results[name]
		if len(rows) == 0 {
			violations = append(violations, fmt.Sprintf("missing benchmark in output: %s", name))
			continue
		}
		nsOp := medianNsOp(rows)
		allocsOp := maxAllocsOp(rows)
		fmt.Printf("benchguard: %-24s ns/op=%.1f (max %.1f), allocs/op=%.1f (max %.1f)\n",
			name, nsOp, guard.MaxNsOp, allocsOp, guard.MaxAllocsOp)
		if nsOp > guard.MaxNsOp {
			violations = append(violations, fmt.Sprintf("%s ns/op regression: %.1f > %.1f", name, nsOp, guard.MaxNsOp))
		}
		if allocsOp > guard.MaxAllocsOp {
			violations = append(violations, fmt.Sprintf("%s allocs/op regression: %.1f > %.1f", name, allocsOp, guard.MaxAllocsOp))
		}
	}
	return violations
}

func medianNsOp(rows []measurement) float64 {
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r.nsOp
	}
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

func maxAllocsOp(rows []measurement) float64 {
	max := 0.0
	for _, r := range rows {
		if r.allocsOp > max {
			max = r.allocsOp
		}
	}
	return max
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "benchguard: "+format+"\n", args...)
	os.Exit(2)
}
